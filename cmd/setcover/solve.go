package main

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/setcover"
	"github.com/hupe1980/setcover/dataset"
)

// SolveCmd computes a cover for a dataset.
type SolveCmd struct {
	Data          string `arg:"positional,required" help:"Dataset path or URI (s3://bucket/key, minio://host/bucket/key)"`
	Algo          string `arg:"-a,--algo" default:"greedy-standard" help:"Strategy: greedy-standard, greedy-bitvec, greedy-textbook or all"`
	SetColumn     string `arg:"--set-column" help:"Header name of the set column (default: first column)"`
	ElementColumn string `arg:"--element-column" help:"Header name of the element column (default: second column)"`
	Numeric       bool   `arg:"--numeric" help:"Parse both columns as integers and use element ids as the universe"`
	Workers       int    `arg:"-w,--workers,env:SETCOVER_WORKERS" default:"1" help:"Goroutines for the gain scan (negative: GOMAXPROCS)"`
	Verify        bool   `arg:"--verify" help:"Verify each cover before reporting"`
	Keys          bool   `arg:"--keys" help:"Print the chosen set keys"`
	JSON          bool   `arg:"--json" help:"Print results as JSON"`
}

// solveReport is the outcome of one strategy.
type solveReport struct {
	Strategy string        `json:"strategy"`
	Cover    int           `json:"cover"`
	Universe int           `json:"universe"`
	Sets     int           `json:"sets"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	Keys     []string      `json:"keys,omitempty"`
}

func (r *Runner) solve(ctx context.Context, cmd SolveCmd) error {
	strategies, err := parseAlgo(cmd.Algo)
	if err != nil {
		return err
	}

	loc, err := parseLocation(cmd.Data)
	if err != nil {
		return err
	}
	store, err := openStore(ctx, r.Args.StoreConfig, loc)
	if err != nil {
		return err
	}

	var readOpts []dataset.ReadOption
	if cmd.SetColumn != "" {
		readOpts = append(readOpts, dataset.WithSetColumn(cmd.SetColumn))
	}
	if cmd.ElementColumn != "" {
		readOpts = append(readOpts, dataset.WithElementColumn(cmd.ElementColumn))
	}

	r.Logger.Info("reading dataset", "data", cmd.Data)
	rows, err := dataset.Load(ctx, store, loc.Name, readOpts...)
	if err != nil {
		return err
	}

	metrics := &setcover.BasicMetricsCollector{}
	opts := []setcover.Option{
		setcover.WithLogger(r.Logger),
		setcover.WithMetricsCollector(metrics),
		setcover.WithParallelism(cmd.Workers),
		setcover.WithVerify(cmd.Verify),
	}

	var reports []solveReport
	if cmd.Numeric {
		sets, err := dataset.GroupInts(rows)
		if err != nil {
			return err
		}
		reports, err = runStrategies(ctx, strategies, func(s setcover.Strategy) (*setcover.Result[int], error) {
			return setcover.SolveDense(sets, s, opts...)
		})
		if err != nil {
			return err
		}
	} else {
		sets := dataset.GroupStrings(rows)
		reports, err = runStrategies(ctx, strategies, func(s setcover.Strategy) (*setcover.Result[string], error) {
			return setcover.Solve(sets, s, opts...)
		})
		if err != nil {
			return err
		}
	}

	stats := metrics.GetStats()
	r.Logger.Debug("metrics",
		"covers", stats.CoverCount,
		"avg", time.Duration(stats.CoverAvgNanos),
		"chosen", stats.SetsChosen,
	)

	return r.printReports(cmd, reports)
}

func parseAlgo(name string) ([]setcover.Strategy, error) {
	if name == "all" {
		return setcover.Strategies(), nil
	}
	s, err := setcover.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return []setcover.Strategy{s}, nil
}

func runStrategies[K cmp.Ordered](ctx context.Context, strategies []setcover.Strategy, run func(setcover.Strategy) (*setcover.Result[K], error)) ([]solveReport, error) {
	reports := make([]solveReport, 0, len(strategies))
	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := run(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}

		keys := make([]string, len(res.Keys))
		for i, k := range res.Keys {
			keys[i] = fmt.Sprint(k)
		}
		reports = append(reports, solveReport{
			Strategy: s.String(),
			Cover:    len(res.Keys),
			Universe: res.UniverseSize,
			Sets:     res.NumSets,
			Elapsed:  res.Elapsed,
			Keys:     keys,
		})
	}
	return reports, nil
}

// agree reports whether every strategy chose the same keys.
func agree(reports []solveReport) bool {
	for _, rep := range reports[1:] {
		if !slices.Equal(rep.Keys, reports[0].Keys) {
			return false
		}
	}
	return true
}

func (r *Runner) printReports(cmd SolveCmd, reports []solveReport) error {
	agreed := agree(reports)

	if cmd.JSON {
		out := reports
		if !cmd.Keys {
			out = make([]solveReport, len(reports))
			copy(out, reports)
			for i := range out {
				out[i].Keys = nil
			}
		}
		enc := json.NewEncoder(r.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Results []solveReport `json:"results"`
			Agree   bool          `json:"agree"`
		}{out, agreed})
	}

	for _, rep := range reports {
		fmt.Fprintln(r.Out, rep.Strategy)
		fmt.Fprintf(r.Out, "Cover: %d sets (universe %d, %d candidates)\n", rep.Cover, rep.Universe, rep.Sets)
		fmt.Fprintf(r.Out, "Time:  %.3f seconds\n", rep.Elapsed.Seconds())
		if cmd.Keys {
			fmt.Fprintf(r.Out, "Keys:  %v\n", rep.Keys)
		}
	}
	if len(reports) > 1 {
		fmt.Fprintf(r.Out, "Agree: %t\n", agreed)
	}
	return nil
}
