// Command tui paints region fractals in a terminal with the mouse.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/inamate/fractal/internal/config"
	"github.com/inamate/fractal/internal/engine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal is the UI, so logs only go to LOG_FILE.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	engine.SetLogger(logger.With("component", "engine"))

	app, err := NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}

// App binds one terminal screen to one engine.
type App struct {
	screen tcell.Screen
	eng    *engine.Engine
	cfg    *config.Config

	width, height int
	dragging      bool
	status        string
}

func NewApp(cfg *config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	eng := engine.NewEngine()
	if err := eng.SetOptions(cfg.EngineOptions()); err != nil {
		slog.Warn("invalid engine options", "error", err)
	}

	a := &App{screen: screen, eng: eng, cfg: cfg}
	a.handleResize()
	return a, nil
}

func (a *App) handleResize() {
	a.width, a.height = a.screen.Size()
	w, h := canvasSize(a.width, a.height)
	a.eng.SetCanvasSize(w, h)
	a.screen.Sync()
}

func (a *App) run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.draw()
	for ev := range eventChan {
		if !a.handleInput(ev) {
			return
		}
		a.draw()
	}
}

func (a *App) cleanup() {
	a.screen.Fini()
}

func (a *App) report(err error) {
	if err != nil {
		a.status = err.Error()
		slog.Debug("command rejected", "error", err)
	}
}

func (a *App) handleInput(ev tcell.Event) bool {
	a.status = ""

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.handleResize()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		a.eng.Abandon()
		a.dragging = false
		return true
	case tcell.KeyTab:
		a.report(a.eng.SetMode(nextMode(a.eng.Options().Mode)))
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'u':
		if !a.eng.Undo() {
			a.status = "nothing to undo"
		}
	case 'U':
		if !a.eng.Redo() {
			a.status = "nothing to redo"
		}
	case 'r':
		a.status = "color " + a.eng.RandomizeColor()
	case 'R':
		a.report(a.eng.Reset())
	case '+', '=':
		a.eng.SetMaxDepth(min(a.eng.Options().MaxRecursionDepth+1, a.cfg.DepthLimit))
	case '-':
		a.eng.SetMaxDepth(a.eng.Options().MaxRecursionDepth - 1)
	case '1':
		a.report(a.eng.LoadSample("spiral"))
	case '2':
		a.report(a.eng.LoadSample("carpet"))
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if y >= a.height-1 {
		return
	}
	pos := cellToCanvas(x, y)
	mods := engine.Modifiers{
		Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
		Shift: ev.Modifiers()&tcell.ModShift != 0,
	}

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !a.dragging:
		if err := a.eng.PointerDownAt(pos, mods); err != nil {
			a.report(err)
			return
		}
		a.dragging = true
	case pressed && a.dragging:
		a.report(a.eng.PointerMove(pos, mods))
	case !pressed && a.dragging:
		a.report(a.eng.PointerMove(pos, mods))
		a.report(a.eng.PointerUp())
		a.dragging = false
	}
}

func (a *App) draw() {
	a.screen.Clear()

	for c, color := range traceOutlines(a.eng.Scene(), a.width, a.height-1) {
		style := tcell.StyleDefault.Foreground(tcell.GetColor(color))
		a.screen.SetContent(c.x, c.y, '█', nil, style)
	}

	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawStatus() {
	opts := a.eng.Options()
	stats := a.eng.Stats()
	line := fmt.Sprintf(" %s  %s  depth %d  regions %d  nodes %d  undo %d redo %d",
		opts.Mode, opts.CurrentColor, opts.MaxRecursionDepth,
		stats.Regions, stats.RenderedNodes, stats.UndoDepth, stats.RedoDepth)
	if a.status != "" {
		line += "  | " + a.status
	}

	y := a.height - 1
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < a.width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
	swatch := tcell.StyleDefault.Background(tcell.GetColor(opts.CurrentColor))
	a.screen.SetContent(0, y, ' ', nil, swatch)
	for i, r := range []rune(line) {
		if i+1 >= a.width {
			break
		}
		a.screen.SetContent(i+1, y, r, nil, style)
	}
}
