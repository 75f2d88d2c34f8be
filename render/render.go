// SPDX-License-Identifier: MIT
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gainsearch/core"
	"github.com/katalvlaran/gainsearch/sts"
)

// ErrNilGraph indicates a nil structure was passed.
var ErrNilGraph = errors.New("render: nil graph")

// Option customizes the output.
type Option func(*config)

type config struct {
	name      string
	highlight map[int]bool
	labels    []string
}

func newConfig(opts ...Option) config {
	cfg := config{name: "G", highlight: map[int]bool{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithName sets the DOT graph identifier.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithHighlight fills the given vertices.
func WithHighlight(vertices []int) Option {
	return func(c *config) {
		for _, v := range vertices {
			c.highlight[v] = true
		}
	}
}

// WithLabel appends lines to the graph label.
func WithLabel(lines ...string) Option {
	return func(c *config) { c.labels = append(c.labels, lines...) }
}

func edgeStyle(col core.Color) string {
	switch col {
	case core.ColorBlack:
		return `color="black", penwidth=2`
	case core.ColorWhite:
		return `color="grey", penwidth=2`
	}
	return `color="lightgrey", style="dashed"`
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func writeHeader(bw *bufio.Writer, cfg config) {
	fmt.Fprintf(bw, "graph %s {\n", quote(cfg.name))
	if len(cfg.labels) > 0 {
		fmt.Fprintf(bw, "  label=%s;\n  labelloc=\"t\";\n", quote(strings.Join(cfg.labels, `\n`)))
	}
	fmt.Fprintln(bw, `  node [shape=circle, style=filled, fillcolor="lightblue"];`)
}

// WriteDOT renders g.
func WriteDOT(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	cfg := newConfig(opts...)
	bw := bufio.NewWriter(w)
	writeHeader(bw, cfg)
	for v := 0; v < g.VertexCount(); v++ {
		if cfg.highlight[v] {
			fmt.Fprintf(bw, "  %d [fillcolor=\"orange\"];\n", v)
		} else {
			fmt.Fprintf(bw, "  %d;\n", v)
		}
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  %d -- %d [%s];\n", e.From, e.To, edgeStyle(e.Color))
	}
	fmt.Fprintln(bw, "}")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	return nil
}

// WriteBlocksDOT renders a block collection over v points.
func WriteBlocksDOT(w io.Writer, v int, blocks []sts.Block, opts ...Option) error {
	cfg := newConfig(opts...)
	bw := bufio.NewWriter(w)
	writeHeader(bw, cfg)
	for p := 0; p < v; p++ {
		fmt.Fprintf(bw, "  p%d [label=\"%d\"];\n", p, p)
	}
	for i, b := range blocks {
		fmt.Fprintf(bw, "  b%d [shape=box, width=0.2, height=0.2, label=\"\", fillcolor=\"black\"];\n", i)
		for _, p := range b {
			fmt.Fprintf(bw, "  b%d -- p%d;\n", i, p)
		}
	}
	fmt.Fprintln(bw, "}")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteBlocksDOT: %w", err)
	}
	return nil
}
