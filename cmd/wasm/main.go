package main

import (
	"flag"
	"os"

	"github.com/janpfeifer/GoSpider/internal/frontend"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

func main() {
	// Initialize klog for WASM, forcing logs to stderr (console)
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	fs.Set("logtostderr", "true")
	klog.SetOutput(os.Stderr)
	klog.Infof("WASM started!")

	// Difficulty selection on "/", the board on "/game/<suits>".
	frontend.RegisterRoutes()

	// When building for WEB (GOOS=js GOARCH=wasm), app.RunWhenOnBrowser() executes the frontend logic.
	// The server lives in cmd/server/, so natively this is a no-op.
	app.RunWhenOnBrowser()
}
