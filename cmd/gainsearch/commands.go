// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/gainsearch/anneal"
	"github.com/katalvlaran/gainsearch/bisection"
	"github.com/katalvlaran/gainsearch/bounds"
	"github.com/katalvlaran/gainsearch/builder"
	"github.com/katalvlaran/gainsearch/core"
	"github.com/katalvlaran/gainsearch/domset"
	"github.com/katalvlaran/gainsearch/edgelist"
	"github.com/katalvlaran/gainsearch/experiment"
	"github.com/katalvlaran/gainsearch/k4color"
	"github.com/katalvlaran/gainsearch/render"
	"github.com/katalvlaran/gainsearch/search"
	"github.com/katalvlaran/gainsearch/sts"
)

// Per-command defaults for -n.
const (
	defaultDomsetN = 50
	defaultK4N     = 10
	defaultSTSV    = 7
	defaultBisectN = 20
)

func orDefault(n, def int) int {
	if n > 0 {
		return n
	}
	return def
}

func printLines(out io.Writer, lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
}

// loadOrGenerate reads -edges if given, otherwise calls gen.
func loadOrGenerate(o *options, gen func() (*core.Graph, error)) (*core.Graph, error) {
	if o.edges != "" {
		klog.Infof("reading structure from %s", o.edges)
		return edgelist.Load(o.edges)
	}
	return gen()
}

// writeDOT calls fn with the -dot file if one was requested.
func writeDOT(o *options, fn func(w io.Writer) error) error {
	if o.dot == "" {
		return nil
	}
	f, err := os.Create(o.dot)
	if err != nil {
		return err
	}
	if err = fn(f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	klog.Infof("wrote %s", o.dot)
	return nil
}

func runDomset(ctx context.Context, o *options, sopts []search.Option, out io.Writer) error {
	n := orDefault(o.n, defaultDomsetN)
	g, err := loadOrGenerate(o, func() (*core.Graph, error) {
		return builder.RandomStructure(n, o.delta, o.p, search.NewRand(o.seed))
	})
	if err != nil {
		return err
	}
	report, err := bounds.Diagnose(ctx, g)
	if err != nil {
		return err
	}
	printLines(out, report.Lines()...)

	limit := bounds.DominatingSetBound(report.Vertices, report.MinDegree)
	var best domset.Result
	for _, v := range []domset.Variant{domset.VariantRecompute, domset.VariantIncremental} {
		res, err := domset.Solve(ctx, g, v, domset.WithSearch(sopts...))
		if err != nil {
			return err
		}
		if err = domset.Verify(g, res.Set); err != nil {
			return err
		}
		fmt.Fprintf(out, "%-12s size %d in %s\n", v, res.Size(), res.Run.Elapsed)
		best = res
	}
	fmt.Fprintf(out, "bound: %d\n", limit)
	fmt.Fprintf(out, "set: %v\n", best.Sorted())

	return writeDOT(o, func(w io.Writer) error {
		return render.WriteDOT(w, g,
			render.WithName("domset"),
			render.WithHighlight(best.Set),
			render.WithLabel(fmt.Sprintf("dominating set %d, bound %d", best.Size(), limit)))
	})
}

func runK4(ctx context.Context, o *options, sopts []search.Option, out io.Writer) error {
	n := orDefault(o.n, defaultK4N)
	g, err := loadOrGenerate(o, func() (*core.Graph, error) {
		return builder.BuildGraph(n, nil, builder.Complete())
	})
	if err != nil {
		return err
	}
	opts := []k4color.Option{k4color.WithSearch(sopts...)}
	if o.shuffle {
		opts = append(opts, k4color.WithShuffledOrder(search.NewRand(o.seed)))
	}
	res, err := k4color.Solve(ctx, g, opts...)
	if err != nil {
		return err
	}
	if err = k4color.Verify(g); err != nil {
		return err
	}
	_, black, white := g.ColorCounts()
	fmt.Fprintf(out, "K4: %d\n", res.Cliques)
	fmt.Fprintf(out, "monochromatic: %d (expected under random coloring %.2f)\n", res.Monochromatic, res.Expected)
	fmt.Fprintf(out, "edges: %d black, %d white\n", black, white)

	return writeDOT(o, func(w io.Writer) error {
		return render.WriteDOT(w, g,
			render.WithName("k4color"),
			render.WithLabel(fmt.Sprintf("%d of %d K4 monochromatic", res.Monochromatic, res.Cliques)))
	})
}

func runSTS(ctx context.Context, o *options, sopts []search.Option, out io.Writer) error {
	v := orDefault(o.n, defaultSTSV)
	opts := []sts.Option{sts.WithSeed(o.seed), sts.WithSearch(sopts...)}
	if o.random {
		opts = append(opts, sts.WithRandomBlocks())
	}
	res, err := sts.Solve(ctx, v, opts...)
	if err != nil {
		return err
	}
	if err = sts.Verify(v, res.Blocks); err != nil {
		return err
	}
	fmt.Fprintf(out, "STS(%d): %d blocks (expected %d), %d switches\n",
		v, len(res.Blocks), bounds.STSBlockCount(v), res.Switches)
	for _, b := range res.Blocks {
		fmt.Fprintf(out, "  %v\n", b)
	}

	return writeDOT(o, func(w io.Writer) error {
		return render.WriteBlocksDOT(w, v, res.Blocks,
			render.WithName(fmt.Sprintf("sts%d", v)),
			render.WithLabel(fmt.Sprintf("STS(%d), %d switches", v, res.Switches)))
	})
}

func runBisect(ctx context.Context, o *options, sopts []search.Option, out io.Writer) error {
	n := orDefault(o.n, defaultBisectN)
	rng := search.NewRand(o.seed)
	in, err := bisection.RandomInstance(n, rng)
	if err != nil {
		return err
	}
	res, err := bisection.Solve(ctx, in, bisection.WithRand(rng), bisection.WithSearch(sopts...))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "cut: %d -> %d after %d swaps\n", res.History[0], res.Cut, len(res.Run.Log))
	fmt.Fprintf(out, "left:  %v\n", res.Left)
	fmt.Fprintf(out, "right: %v\n", res.Right)
	return nil
}

func runKnapsack(ctx context.Context, o *options, sopts []search.Option, out io.Writer) error {
	cfg := anneal.DefaultConfig()
	if o.maxIter > 0 {
		cfg.MaxIterations = o.maxIter
	}
	opts := []anneal.Option{anneal.WithRand(search.NewRand(o.seed))}
	if o.trace {
		opts = append(opts, anneal.WithLogger(search.NewTextLogger(slog.LevelDebug)))
	}
	k := anneal.ClassicInstance()
	res, err := anneal.Solve(ctx, k, cfg, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "value %d, weight %d/%d, best ever %d\n", res.Value, res.Weight, k.Capacity, res.BestEver)
	fmt.Fprintf(out, "items: %v\n", res.Selected)
	return nil
}

func runSweep(ctx context.Context, o *options, sopts []search.Option, out io.Writer) error {
	cfg := experiment.DefaultConfig()
	cfg.Trials = o.trials
	cfg.Seed = o.seed
	cfg.Workers = o.workers
	cfg.P = o.p
	if o.n > 0 {
		cfg.MaxN = max(o.n, cfg.MinN)
	}
	sum, err := experiment.Sweep(ctx, cfg, experiment.WithSearch(sopts...))
	if err != nil {
		return err
	}
	printLines(out, sum.Lines()...)
	return nil
}
