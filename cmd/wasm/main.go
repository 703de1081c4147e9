//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/inamate/fractal/internal/document"
	"github.com/inamate/fractal/internal/engine"
	"github.com/inamate/fractal/internal/geometry"
)

var eng *engine.Engine

func main() {
	eng = engine.NewEngine()

	// Create the engine API object
	fractalEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	fractalEngine.Set("pointerDown", js.FuncOf(pointerDown))
	fractalEngine.Set("pointerMove", js.FuncOf(pointerMove))
	fractalEngine.Set("pointerUp", js.FuncOf(pointerUp))
	fractalEngine.Set("abandon", js.FuncOf(abandon))
	fractalEngine.Set("setMode", js.FuncOf(setMode))
	fractalEngine.Set("setColor", js.FuncOf(setColor))
	fractalEngine.Set("randomizeColor", js.FuncOf(randomizeColor))
	fractalEngine.Set("setMaxDepth", js.FuncOf(setMaxDepth))
	fractalEngine.Set("setCanvasSize", js.FuncOf(setCanvasSize))
	fractalEngine.Set("undo", js.FuncOf(undo))
	fractalEngine.Set("redo", js.FuncOf(redo))
	fractalEngine.Set("reset", js.FuncOf(reset))
	fractalEngine.Set("loadDocument", js.FuncOf(loadDocument))
	fractalEngine.Set("loadSample", js.FuncOf(loadSample))

	// --- Queries (frontend ← backend) ---
	fractalEngine.Set("render", js.FuncOf(render))
	fractalEngine.Set("hitTest", js.FuncOf(hitTest))
	fractalEngine.Set("getFrame", js.FuncOf(getFrame))
	fractalEngine.Set("getDocument", js.FuncOf(getDocument))
	fractalEngine.Set("getStats", js.FuncOf(getStats))
	fractalEngine.Set("getColors", js.FuncOf(getColors))
	fractalEngine.Set("getSamples", js.FuncOf(getSamples))

	// Register on global scope
	js.Global().Set("fractalEngine", fractalEngine)

	// Signal that WASM is ready
	js.Global().Set("fractalWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func result(err error) interface{} {
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

// pointerArgs reads (x, y, ctrl?, shift?).
func pointerArgs(args []js.Value) (geometry.Vector2D, engine.Modifiers, bool) {
	if len(args) < 2 {
		return geometry.Vector2D{}, engine.Modifiers{}, false
	}
	pos := geometry.Vector2D{X: args[0].Float(), Y: args[1].Float()}
	var mods engine.Modifiers
	if len(args) > 2 {
		mods.Ctrl = args[2].Truthy()
	}
	if len(args) > 3 {
		mods.Shift = args[3].Truthy()
	}
	return pos, mods, true
}

func toJSON(v any) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf("null")
	}
	return js.ValueOf(string(data))
}

// --- Command Handlers ---

func pointerDown(this js.Value, args []js.Value) interface{} {
	pos, mods, ok := pointerArgs(args)
	if !ok {
		return errorResult("missing pointer position")
	}
	return result(eng.PointerDownAt(pos, mods))
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	pos, mods, ok := pointerArgs(args)
	if !ok {
		return errorResult("missing pointer position")
	}
	return result(eng.PointerMove(pos, mods))
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	return result(eng.PointerUp())
}

func abandon(this js.Value, args []js.Value) interface{} {
	eng.Abandon()
	return nil
}

func setMode(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("missing mode")
	}
	return result(eng.SetMode(document.Mode(args[0].String())))
}

func setColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("missing color")
	}
	return result(eng.SetColor(args[0].String()))
}

func randomizeColor(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.RandomizeColor())
}

func setMaxDepth(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	return js.ValueOf(eng.SetMaxDepth(args[0].Int()))
}

func setCanvasSize(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.SetCanvasSize(args[0].Float(), args[1].Float())
	return nil
}

func undo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Undo())
}

func redo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Redo())
}

func reset(this js.Value, args []js.Value) interface{} {
	return result(eng.Reset())
}

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("missing document JSON")
	}
	return result(eng.LoadDocument(args[0].String()))
}

func loadSample(this js.Value, args []js.Value) interface{} {
	name := "spiral"
	if len(args) > 0 && args[0].Type() == js.TypeString {
		name = args[0].String()
	}
	return result(eng.LoadSample(name))
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Render())
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("null")
	}
	return toJSON(eng.HitTest(args[0].Float(), args[1].Float()))
}

func getFrame(this js.Value, args []js.Value) interface{} {
	return toJSON(eng.Frame())
}

func getDocument(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetDocument())
}

func getStats(this js.Value, args []js.Value) interface{} {
	return toJSON(eng.Stats())
}

func getColors(this js.Value, args []js.Value) interface{} {
	return toJSON(eng.Colors())
}

func getSamples(this js.Value, args []js.Value) interface{} {
	return toJSON(document.SampleNames())
}
