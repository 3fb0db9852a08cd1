// tempo is a UCI chess engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kestrelchess/tempo/pkg/engine"
	"github.com/kestrelchess/tempo/pkg/engine/uci"
	"github.com/pkg/profile"
	"github.com/seekerror/logw"
)

var (
	noise      = flag.Uint("noise", 10, "Evaluation noise in centipawns (zero if deterministic)")
	config     = flag.String("config", "", "Optional TOML file of engine options, overriding -noise")
	cpuprofile = flag.Bool("cpuprofile", false, "Write a CPU profile to ./cpu.pprof")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: tempo [options]

tempo is a synchronous UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

// fileOptions is the shape of an optional -config TOML file.
type fileOptions struct {
	NoiseMillipawns uint `toml:"hash_noise_millipawns"`
	MaxSearchPly    int  `toml:"max_search_ply"`
	ThinkTimeMs     int  `toml:"think_time_ms"`
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	opts := engine.Options{Noise: *noise}
	var driverOpts []uci.Option

	if *config != "" {
		var fo fileOptions
		if _, err := toml.DecodeFile(*config, &fo); err != nil {
			logw.Exitf(ctx, "Invalid config %q: %v", *config, err)
		}
		if fo.NoiseMillipawns > 0 {
			opts.Noise = fo.NoiseMillipawns
		}
		if fo.MaxSearchPly > 0 {
			driverOpts = append(driverOpts, uci.WithDepthLimit(fo.MaxSearchPly))
		}
		if fo.ThinkTimeMs > 0 {
			driverOpts = append(driverOpts, uci.WithDefaultBudget(time.Duration(fo.ThinkTimeMs)*time.Millisecond))
		}
	}

	e := engine.New(ctx, "tempo", "kestrelchess", engine.WithOptions(opts), engine.WithSeed(time.Now().UnixNano()))

	driver := uci.NewDriver(e, os.Stdin, os.Stdout, driverOpts...)
	driver.Run(ctx)
}
