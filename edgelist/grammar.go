// SPDX-License-Identifier: MIT
package edgelist

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type edgeFile struct {
	Vertices *int       `parser:"( \"vertices\" \":\"? @Int )?"`
	Pairs    []edgePair `parser:"@@*"`
}

type edgePair struct {
	U int `parser:"@Int"`
	V int `parser:"\"-\"? @Int ( \",\" | \";\" )?"`
}

var sEdgeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "Keyword", Pattern: `vertices`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-:,;]`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

var sParseEdges = participle.MustBuild[edgeFile](
	participle.Lexer(sEdgeLexer),
)
