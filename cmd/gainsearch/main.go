// SPDX-License-Identifier: MIT

// Command gainsearch runs the local-search heuristics from the command line.
//
// Usage:
//
//	gainsearch <command> [flags]
//
// Commands: domset, k4, sts, bisect, knapsack, sweep.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gainsearch/metrics"
	"github.com/katalvlaran/gainsearch/search"
)

var errUsage = errors.New("gainsearch: usage")

// options holds every flag; each command reads the ones it needs.
type options struct {
	n           int
	delta       int
	p           float64
	seed        int64
	maxIter     int
	edges       string
	dot         string
	metricsAddr string
	trials      int
	workers     int
	shuffle     bool
	random      bool
	trace       bool
}

type command func(ctx context.Context, o *options, sopts []search.Option, out io.Writer) error

var commands = map[string]command{
	"domset":   runDomset,
	"k4":       runK4,
	"sts":      runSTS,
	"bisect":   runBisect,
	"knapsack": runKnapsack,
	"sweep":    runSweep,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	klog.Flush()
	switch {
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case err != nil:
		klog.Errorf("%v", err)
		os.Exit(1)
	}
}

func newFlagSet(name string, o *options) *flag.FlagSet {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	fset.IntVar(&o.n, "n", 0, "vertex count or STS order (0 = command default)")
	fset.IntVar(&o.delta, "delta", 3, "minimum degree of random structures")
	fset.Float64Var(&o.p, "p", 0.05, "extra-edge probability of random structures")
	fset.Int64Var(&o.seed, "seed", search.DefaultSeed, "random seed")
	fset.IntVar(&o.maxIter, "max-iter", 0, "iteration ceiling (0 = default)")
	fset.StringVar(&o.edges, "edges", "", "read the structure from an edge-list file")
	fset.StringVar(&o.dot, "dot", "", "write a Graphviz rendering to this file")
	fset.StringVar(&o.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fset.IntVar(&o.trials, "trials", 100, "sweep trials")
	fset.IntVar(&o.workers, "workers", 0, "sweep workers (0 = GOMAXPROCS)")
	fset.BoolVar(&o.shuffle, "shuffle", false, "k4: color edges in a seeded random order")
	fset.BoolVar(&o.random, "random", false, "sts: pick uncovered pairs at random")
	fset.BoolVar(&o.trace, "trace", false, "log run progress to stderr")
	return fset
}

func usage(w io.Writer) {
	names := slices.Sorted(maps.Keys(commands))
	fmt.Fprintf(w, "usage: gainsearch <%s> [flags]\n", strings.Join(names, "|"))
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(out)
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}

	var o options
	fset := newFlagSet(args[0], &o)
	fset.SetOutput(out)
	if err := fset.Parse(args[1:]); err != nil {
		return err
	}

	var sopts []search.Option
	if o.trace {
		sopts = append(sopts, search.WithLogger(search.NewTextLogger(slog.LevelDebug)))
	}
	if o.maxIter > 0 {
		sopts = append(sopts, search.WithMaxIterations(o.maxIter))
	}
	if o.metricsAddr != "" {
		c, err := serveMetrics(ctx, o.metricsAddr)
		if err != nil {
			return err
		}
		sopts = append(sopts, search.WithMetrics(c))
	}

	klog.Infof("gainsearch %s: seed=%d", args[0], o.seed)
	return cmd(ctx, &o, sopts, out)
}

// serveMetrics registers a Collector on a private registry and serves it
// until ctx is done.
func serveMetrics(ctx context.Context, addr string) (*metrics.Collector, error) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector()
	if err := c.Register(reg); err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("metrics server: %v", err)
		}
	}()
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	klog.Infof("serving metrics on %s/metrics", addr)
	return c, nil
}
