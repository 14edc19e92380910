package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janpfeifer/GoSpider/internal/game"
	"github.com/janpfeifer/GoSpider/internal/tui"
	"k8s.io/klog/v2"
)

var (
	flagSuits = flag.String("suits", "1", "Difficulty: 1, 2 or 4 suits")
	flagSeed  = flag.Uint64("seed", 0, "If not 0, seed for reproducible shuffles")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// The board owns the terminal: logs only go to -log_file, if one is given.
	flag.Set("logtostderr", "false")
	flag.Set("stderrthreshold", "FATAL")
	if flag.Lookup("log_file").Value.String() == "" {
		klog.SetOutput(io.Discard)
	}
	defer klog.Flush()

	difficulty, err := game.ParseDifficulty(*flagSuits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -suits: %v\n", err)
		os.Exit(2)
	}
	var rng *rand.Rand
	if *flagSeed != 0 {
		rng = rand.New(rand.NewPCG(*flagSeed, *flagSeed))
	}

	m, err := tui.New(difficulty, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start the game: %v\n", err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		klog.Errorf("tui: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
