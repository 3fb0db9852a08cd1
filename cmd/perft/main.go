// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kestrelchess/tempo/pkg/board/fen"
	"github.com/kestrelchess/tempo/pkg/engine/perft"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	s, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes, err := perft.Count(ctx, s, i)
		if err != nil {
			logw.Exitf(ctx, "perft(%v) failed: %v", i, err)
		}
		duration := time.Since(start)

		fmt.Fprintf(os.Stdout, "perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())

		if *divide && i == *depth {
			div, err := perft.Divide(ctx, s, i)
			if err != nil {
				logw.Exitf(ctx, "divide(%v) failed: %v", i, err)
			}
			for move, count := range div {
				fmt.Fprintf(os.Stdout, "%v: %v\n", move, count)
			}
		}
	}
}
