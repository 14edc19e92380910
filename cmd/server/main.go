package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/janpfeifer/GoSpider/internal/game"
	"github.com/janpfeifer/GoSpider/internal/server"
	"k8s.io/klog/v2"
)

var (
	flagAddr  = flag.String("addr", "", "Address to listen on (default: auto-port on localhost)")
	flagSuits = flag.String("suits", "1", "Difficulty used when a client doesn't pick one: 1, 2 or 4 suits")
	flagSeed  = flag.Uint64("seed", 0, "If not 0, seed for reproducible shuffles")
	flagPing  = flag.Duration("ping", 30*time.Second, "Interval between keep-alive pings, 0 to disable")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	difficulty, err := game.ParseDifficulty(*flagSuits)
	if err != nil {
		klog.Exitf("Invalid -suits: %v", err)
	}

	started := make(chan *server.ServerState, 1)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		state := <-started
		fmt.Printf("GoSpider server listening on http://%s\n", state.Address)
	}()

	err = server.Run(ctx, *flagAddr, started,
		server.WithDifficulty(difficulty),
		server.WithSeed(*flagSeed),
		server.WithPingInterval(*flagPing))
	klog.Flush()
	if err != nil {
		klog.Exitf("Server failed: %v", err)
	}
}
