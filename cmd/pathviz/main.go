// Command pathviz is a terminal visualizer for the incremental grid
// search engine: paint obstacles with the mouse, place the start and
// goal cells, then watch A* or Dijkstra explore the grid one cell per
// tick before the shortest path is traced.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

const (
	defaultRows  = 20
	defaultCols  = 30
	defaultDelay = 40 * time.Millisecond

	cellWidth = 2 // two terminal columns per grid cell
	gridTop   = 2 // rows reserved for the status line
)

type mode int

const (
	modePaint mode = iota // mouse toggles obstacles
	modePlaceStart
	modePlaceGoal
	modeSearching
	modeTracing // search done, path revealed cell by cell
	modeDone
)

// App owns the screen, the editable grid, and at most one running engine.
type App struct {
	screen tcell.Screen
	delay  time.Duration

	rows, cols int
	cells      [][]grid.State
	start      *grid.Coord
	goal       *grid.Coord

	algo    search.Algorithm
	mode    mode
	engine  *search.Engine
	visited map[grid.Coord]bool
	path    []grid.Coord
	traced  int

	status      string
	statusStyle tcell.Style

	audioInit bool
}

func NewApp(rows, cols int, algo search.Algorithm, delay time.Duration) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &App{
		screen: screen,
		delay:  delay,
		rows:   rows,
		cols:   cols,
		algo:   algo,
	}
	a.reset()

	if err := a.initAudio(); err != nil {
		// Non-fatal, the visualizer can run without sound.
		log.Printf("audio initialization failed: %v", err)
	}

	return a, nil
}

// reset clears the grid and returns to obstacle painting.
func (a *App) reset() {
	a.cells = make([][]grid.State, a.rows)
	for r := range a.cells {
		a.cells[r] = make([]grid.State, a.cols)
	}
	a.start, a.goal = nil, nil
	a.engine = nil
	a.visited = make(map[grid.Coord]bool)
	a.path = nil
	a.traced = 0
	a.mode = modePaint
	a.setStatus("Click to mark obstacle cells, click again to unmark. s: place start, g: place goal, Tab: algorithm, Enter: run.", tcell.ColorBlue)
}

func (a *App) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}

	return err
}

// playFoundTone beeps once when a path is found.
func (a *App) playFoundTone() {
	if !a.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(120*time.Millisecond), sine))
}

func (a *App) setStatus(text string, color tcell.Color) {
	a.status = text
	a.statusStyle = tcell.StyleDefault.Foreground(color)
}

// cellAt maps a screen position to a grid coordinate.
func (a *App) cellAt(x, y int) (grid.Coord, bool) {
	c := grid.Coord{Row: y - gridTop, Col: x / cellWidth}
	if c.Row < 0 || c.Row >= a.rows || c.Col < 0 || c.Col >= a.cols {
		return grid.Coord{}, false
	}

	return c, true
}

func (a *App) handleClick(x, y int) {
	c, ok := a.cellAt(x, y)
	if !ok {
		return
	}

	switch a.mode {
	case modePaint:
		if a.cells[c.Row][c.Col] == grid.Obstacle {
			a.cells[c.Row][c.Col] = grid.Empty
		} else if a.cells[c.Row][c.Col] == grid.Empty {
			a.cells[c.Row][c.Col] = grid.Obstacle
		}
	case modePlaceStart:
		if a.cells[c.Row][c.Col] != grid.Empty {
			return
		}
		if a.start != nil {
			a.cells[a.start.Row][a.start.Col] = grid.Empty
		}
		a.cells[c.Row][c.Col] = grid.Start
		a.start = &c
		a.mode = modePaint
		a.setStatus("Start placed. g: place goal, Enter: run.", tcell.ColorPurple)
	case modePlaceGoal:
		if a.cells[c.Row][c.Col] != grid.Empty {
			return
		}
		if a.goal != nil {
			a.cells[a.goal.Row][a.goal.Col] = grid.Empty
		}
		a.cells[c.Row][c.Col] = grid.Goal
		a.goal = &c
		a.mode = modePaint
		a.setStatus("Goal placed. Enter: run.", tcell.ColorPurple)
	}
}

// launch validates the painted grid and binds a fresh engine to it.
func (a *App) launch() {
	g, err := grid.New(a.cells)
	if err != nil {
		a.setStatus(fmt.Sprintf("Grid not ready: %v", err), tcell.ColorRed)

		return
	}
	eng, err := search.New(g, search.WithAlgorithm(a.algo))
	if err != nil {
		a.setStatus(fmt.Sprintf("Engine error: %v", err), tcell.ColorRed)

		return
	}
	a.engine = eng
	a.visited = make(map[grid.Coord]bool)
	a.path = nil
	a.traced = 0
	a.mode = modeSearching
	a.setStatus(fmt.Sprintf("Running %s...", a.algo), tcell.ColorGreen)
}

// tick advances the animation by one frame: one engine step while
// searching, one revealed path cell while tracing.
func (a *App) tick() {
	switch a.mode {
	case modeSearching:
		step, err := a.engine.Advance()
		if err != nil {
			a.mode = modeDone
			a.setStatus(fmt.Sprintf("Engine error: %v", err), tcell.ColorRed)

			return
		}
		switch step.Kind {
		case search.StepVisited:
			a.visited[step.Cell] = true
		case search.StepFound:
			path, err := a.engine.Path()
			if err != nil {
				a.mode = modeDone
				a.setStatus(fmt.Sprintf("Path reconstruction failed: %v", err), tcell.ColorRed)

				return
			}
			a.path = path
			a.mode = modeTracing
			a.setStatus(fmt.Sprintf("Path found with cost: %d!", step.Cost), tcell.ColorGreen)
			a.playFoundTone()
		case search.StepNoPath:
			a.mode = modeDone
			a.setStatus("No path found! c: clear, q: quit.", tcell.ColorRed)
		}
	case modeTracing:
		if a.traced < len(a.path) {
			a.traced++
		} else {
			a.mode = modeDone
		}
	}
}

func (a *App) draw() {
	a.screen.Clear()

	// Status line.
	for i, r := range a.status {
		a.screen.SetContent(i, 0, r, nil, a.statusStyle)
	}
	algoLine := fmt.Sprintf("algorithm: %s  visited: %d", a.algo, len(a.visited))
	for i, r := range algoLine {
		a.screen.SetContent(i, 1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	// Grid cells.
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			coord := grid.Coord{Row: r, Col: c}
			ch, style := a.cellFace(coord)
			x, y := c*cellWidth, r+gridTop
			a.screen.SetContent(x, y, ch, nil, style)
			a.screen.SetContent(x+1, y, ' ', nil, style)
		}
	}

	a.screen.Show()
}

// cellFace picks the rune and style for one grid cell, path and visited
// shading layered over the painted state.
func (a *App) cellFace(c grid.Coord) (rune, tcell.Style) {
	state := a.cells[c.Row][c.Col]

	for i := 0; i < a.traced; i++ {
		if a.path[i] == c && state == grid.Empty {
			return '█', tcell.StyleDefault.Foreground(tcell.ColorPurple)
		}
	}

	switch state {
	case grid.Obstacle:
		return '█', tcell.StyleDefault.Foreground(tcell.ColorGray)
	case grid.Start:
		return 'S', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case grid.Goal:
		return 'G', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}

	if a.visited[c] {
		return '·', tcell.StyleDefault.Foreground(tcell.ColorBlue)
	}

	return '.', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
}

// handleInput returns false when the app should exit.
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyEnter:
			if a.mode == modePaint {
				a.launch()
			}
		case ev.Key() == tcell.KeyTab:
			if a.mode == modePaint {
				if a.algo == search.AlgorithmAStar {
					a.algo = search.AlgorithmDijkstra
				} else {
					a.algo = search.AlgorithmAStar
				}
			}
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'c':
				a.reset()
			case 's':
				if a.mode == modePaint {
					a.mode = modePlaceStart
					a.setStatus("Click on the start cell.", tcell.ColorPurple)
				}
			case 'g':
				if a.mode == modePaint {
					a.mode = modePlaceGoal
					a.setStatus("Click on the goal cell.", tcell.ColorPurple)
				}
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			a.handleClick(x, y)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

func (a *App) run() {
	ticker := time.NewTicker(a.delay)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
}

func (a *App) cleanup() {
	if a.audioInit {
		speaker.Close()
	}
	a.screen.Fini()
}

func main() {
	var (
		algoFlag  = flag.String("algo", "astar", "search variant: astar or dijkstra")
		rowsFlag  = flag.Int("rows", defaultRows, "grid rows")
		colsFlag  = flag.Int("cols", defaultCols, "grid columns")
		delayFlag = flag.Duration("delay", defaultDelay, "animation tick interval")
	)
	flag.Parse()

	algo, err := search.ParseAlgorithm(*algoFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathviz: %v\n", err)
		os.Exit(2)
	}
	if *rowsFlag < 1 || *colsFlag < 1 {
		fmt.Fprintln(os.Stderr, "pathviz: rows and cols must be positive")
		os.Exit(2)
	}

	app, err := NewApp(*rowsFlag, *colsFlag, algo, *delayFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathviz: failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
