// SPDX-License-Identifier: MIT
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gainsearch/builder"
	"github.com/katalvlaran/gainsearch/core"
)

var (
	// ErrSyntax wraps a parse failure.
	ErrSyntax = errors.New("edgelist: syntax error")

	// ErrEmpty indicates neither a vertex count nor any pair was given.
	ErrEmpty = errors.New("edgelist: empty edge list")
)

// List is a parsed edge list.
type List struct {
	Vertices int
	Pairs    []builder.Pair
}

// Parse reads an edge list from r. name is used in error positions.
func Parse(name string, r io.Reader) (*List, error) {
	ast, err := sParseEdges.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w: %v", ErrSyntax, err)
	}
	return fromAST(ast)
}

// ParseString parses an in-memory edge list.
func ParseString(s string) (*List, error) {
	ast, err := sParseEdges.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("ParseString: %w: %v", ErrSyntax, err)
	}
	return fromAST(ast)
}

func fromAST(ast *edgeFile) (*List, error) {
	l := &List{Pairs: make([]builder.Pair, 0, len(ast.Pairs))}
	for _, p := range ast.Pairs {
		l.Pairs = append(l.Pairs, builder.Pair{U: p.U, V: p.V})
		l.Vertices = max(l.Vertices, p.U+1, p.V+1)
	}
	if ast.Vertices != nil {
		l.Vertices = *ast.Vertices
	}
	if l.Vertices == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// Build turns the list into a structure.
func (l *List) Build() (*core.Graph, error) {
	return builder.BuildGraph(l.Vertices, nil, builder.FromEdges(l.Pairs))
}

// Load parses and builds the file at path.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()
	l, err := Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	g, err := l.Build()
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	return g, nil
}

// Write emits g in the format Parse reads.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("Write: %w", ErrEmpty)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "vertices: %d\n", g.VertexCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.From, e.To)
	}
	return bw.Flush()
}
