//go:build js && wasm

package main

import (
	"log"
	"os"
	"syscall/js"

	"github.com/1broseidon/webwin/internal/dom"
	"github.com/1broseidon/webwin/internal/eventloop"
	"github.com/1broseidon/webwin/internal/platform"
	"github.com/1broseidon/webwin/internal/web"
)

func main() {
	// The wasm runtime passes "js" as the program name and no command.
	if len(os.Args) > 1 && os.Args[1] == "config" {
		os.Exit(runConfig(os.Args[2:]))
	}

	res, err := loadConfig("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := web.LoggerFromConfig(res.Config.Logging, os.Stdout)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}

	target := eventloop.NewTarget(logger)
	w, err := web.NewWindowFromConfig(dom.Default(), target, res.Config, logger)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}

	pos, _ := w.InnerPosition()
	size := w.InnerSize()
	log.Printf("window %d: canvas %q at (%.0f, %.0f), %.0fx%.0f", w.ID(), w.Canvas().ID(), pos.X, pos.Y, size.Width, size.Height)
	for _, m := range w.AvailableMonitors() {
		name, _ := m.Name()
		d := m.Dimensions()
		log.Printf("monitor %q: %dx%d, factor %.1f", name, d.Width, d.Height, m.HiDPIFactor())
	}
	for _, c := range platform.Capabilities() {
		if s := w.Supports(c); s != platform.SupportFull {
			log.Printf("capability %s: %s", c, s)
		}
	}

	windows := []eventloop.Redrawer{w}
	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		target.DrainRedraws(windows, nil)
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	w.RequestRedraw()
	js.Global().Call("requestAnimationFrame", frame)

	select {}
}
