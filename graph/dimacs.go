package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// dimacsFile is the participle grammar root: a sequence of DIMACS lines.
type dimacsFile struct {
	Lines []*dimacsLine `parser:"@@*"`
}

type dimacsLine struct {
	Pos lexer.Position

	Problem *dimacsProblem `parser:"  \"p\" @@"`
	Edge    *dimacsEdge    `parser:"| \"e\" @@"`
	Other   *dimacsOther   `parser:"| @@"`
}

type dimacsProblem struct {
	Format   string `parser:"@Ident"`
	Vertices int    `parser:"@Int"`
	Edges    int    `parser:"@Int"`
}

type dimacsEdge struct {
	U int `parser:"@Int"`
	V int `parser:"@Int"`
}

type dimacsOther struct {
	Tag  string `parser:"@Ident"`
	Args []int  `parser:"@Int*"`
}

// A comment is "c" alone or "c" followed by a blank, up to the end of line.
// "col" and other identifiers starting with c fall through to Ident.
var dimacsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `c(?:[ \t][^\n]*)?(?:\r?\n|$)`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parseDIMACS = participle.MustBuild[dimacsFile](
	participle.Lexer(dimacsLexer),
	participle.Elide("Comment", "Whitespace"),
)

// ReadDIMACS parses DIMACS edge format from r into a Graph named name.
//
// Contract:
//   - the "p" line must precede every "e" line and appear once;
//   - "e u v" is 1-indexed; duplicates and reversed pairs collapse;
//   - unknown line tags are skipped.
//
// Errors: parse errors (wrapped), ErrNoProblemLine, ErrDuplicateProblemLine,
// ErrVertexOutOfRange, ErrSelfLoop.
func ReadDIMACS(r io.Reader, name string) (*Graph, error) {
	ast, err := parseDIMACS.Parse(name, bufio.NewReader(r))
	if err != nil {
		return nil, errors.Wrapf(err, "parse DIMACS %q", name)
	}

	var b *Builder
	for _, line := range ast.Lines {
		switch {
		case line.Problem != nil:
			if b != nil {
				return nil, fmt.Errorf("%s: %w", line.Pos, ErrDuplicateProblemLine)
			}
			if b, err = NewBuilder(name, line.Problem.Vertices); err != nil {
				return nil, errors.Wrapf(err, "%s", line.Pos)
			}
		case line.Edge != nil:
			if b == nil {
				return nil, fmt.Errorf("%s: %w", line.Pos, ErrNoProblemLine)
			}
			// 1-indexed on disk; 0 becomes -1 and is rejected by AddEdge.
			if _, err = b.AddEdge(line.Edge.U-1, line.Edge.V-1); err != nil {
				return nil, errors.Wrapf(err, "%s", line.Pos)
			}
		}
	}
	if b == nil {
		return nil, errors.Wrapf(ErrNoProblemLine, "parse DIMACS %q", name)
	}
	return b.Build(), nil
}

// LoadDIMACS opens path and reads it with ReadDIMACS. The graph is named
// after the file stem ("instances/le450_15a.col" → "le450_15a").
func LoadDIMACS(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load instance")
	}
	defer f.Close()

	return ReadDIMACS(f, InstanceName(path))
}

// InstanceName returns the file stem of path.
func InstanceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WriteDIMACS writes g in DIMACS edge format with a single header comment.
func WriteDIMACS(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "c %s\np edge %d %d\n", g.name, g.order, g.size); err != nil {
		return errors.Wrap(err, "write DIMACS header")
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "e %d %d\n", e.U+1, e.V+1); err != nil {
			return errors.Wrap(err, "write DIMACS edge")
		}
	}
	return errors.Wrap(bw.Flush(), "flush DIMACS")
}
