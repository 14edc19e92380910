package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/janpfeifer/GoSpider/internal/frontend"
	"github.com/janpfeifer/GoSpider/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Run starts the server and blocks until the context is canceled.
//
// If addr is empty, it listens on a random port on localhost.
// Once listening, the server state (with its actual Address) is sent to started, if not nil.
func Run(ctx context.Context, addr string, started chan<- *ServerState, opts ...Option) error {
	// Register go-app routes so the server knows how to prerender them
	frontend.RegisterRoutes()

	// The web assets and the compiled webassembly
	// are served natively by the go-app framework
	h := &app.Handler{
		Name:        "GoSpider",
		ShortName:   "GoSpider",
		Title:       "GoSpider",
		Description: "Spider Solitaire",
		Version:     game.Version,
		Styles: []string{
			"/web/css/main.css", // Board layout and cards
		},
	}

	serverState := NewServerState(opts...)
	mux := http.NewServeMux()

	// Register WebSocket endpoint
	mux.HandleFunc("/ws", serverState.HandleWS)
	mux.Handle("/", h)

	if addr == "" {
		addr = "localhost:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	serverState.Address = listener.Addr().String()

	srv := &http.Server{
		Handler: mux,
	}

	go func() {
		klog.Infof("Server started on %s", serverState.Address)
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			klog.Errorf("Server error: %v", err)
		}
	}()
	if started != nil {
		started <- serverState
	}

	<-ctx.Done()

	// Graceful shutdown with 5 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	klog.Infof("Shutting down server...")
	serverState.CloseAll()
	return srv.Shutdown(shutdownCtx)
}
