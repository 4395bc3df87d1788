package main

import (
	"context"
	"fmt"

	"github.com/hupe1980/setcover/dataset"
)

// GenCmd writes a seeded synthetic dataset.
type GenCmd struct {
	Output      string `arg:"positional" default:"data.csv" help:"Destination path or URI; .zst and .lz4 suffixes compress"`
	NumSets     int    `arg:"--n-sets" default:"100000" help:"Number of candidate sets"`
	NumElements int    `arg:"--n-elements" default:"2000" help:"Size of the universe"`
	NumRows     int    `arg:"--n-rows" default:"10000000" help:"Number of (set, element) rows"`
	Seed        uint64 `arg:"--seed" default:"333" help:"Random seed"`
	Force       bool   `arg:"--force-new-data" help:"Regenerate data even if parameters match the existing file"`
}

func (r *Runner) gen(ctx context.Context, cmd GenCmd) error {
	loc, err := parseLocation(cmd.Output)
	if err != nil {
		return err
	}
	store, err := openStore(ctx, r.Args.StoreConfig, loc)
	if err != nil {
		return err
	}

	cfg := dataset.GenerateConfig{
		NumSets:     cmd.NumSets,
		NumElements: cmd.NumElements,
		NumRows:     cmd.NumRows,
		Seed:        cmd.Seed,
	}

	r.Logger.Info("generating dataset",
		"sets", cfg.NumSets,
		"elements", cfg.NumElements,
		"rows", cfg.NumRows,
		"seed", cfg.Seed,
	)
	reused, err := dataset.GenerateFile(ctx, store, loc.Name, cfg, cmd.Force)
	if err != nil {
		return err
	}

	if reused {
		fmt.Fprintf(r.Out, "Dataset %s already exists with matching parameters. Reusing.\n", cmd.Output)
		return nil
	}
	fmt.Fprintf(r.Out, "Wrote dataset to %s (signature: %s...)\n", cmd.Output, cfg.Signature()[:10])
	return nil
}
