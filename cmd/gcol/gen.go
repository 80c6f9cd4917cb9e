package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcol/builder"
	"github.com/katalvlaran/gcol/graph"
)

// genFlags parameterize every generator; each kind reads the ones it needs.
type genFlags struct {
	n, m       int
	rows, cols int
	p          float64
	seed       int64
	name       string
	output     string
}

func (f *genFlags) constructor(kind string) (builder.Constructor, error) {
	switch kind {
	case "cycle":
		return builder.Cycle(f.n), nil
	case "path":
		return builder.Path(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "wheel":
		return builder.Wheel(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "bipartite":
		return builder.CompleteBipartite(f.n, f.m), nil
	case "crown":
		return builder.Crown(f.n), nil
	case "mycielski":
		return builder.Mycielski(f.n), nil
	case "queen":
		return builder.Queen(f.rows, f.cols), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	}
	return builder.Constructor{}, fmt.Errorf("gen: unknown kind %q", kind)
}

func newGenCmd() *cobra.Command {
	f := &genFlags{}
	cmd := &cobra.Command{
		Use:       "gen kind",
		Short:     "Write a generated instance in DIMACS format",
		Long:      "Kinds: cycle, path, star, wheel, complete, crown, mycielski and random use -n; bipartite uses -n and -m; queen uses --rows and --cols; random also uses -p and --seed.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"cycle", "path", "star", "wheel", "complete", "bipartite", "crown", "mycielski", "queen", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cons, err := f.constructor(args[0])
			if err != nil {
				return err
			}
			name := f.name
			if name == "" {
				name = args[0]
				if f.output != "" {
					name = graph.InstanceName(f.output)
				}
			}
			g, err := builder.BuildGraph(name, []builder.BuilderOption{builder.WithSeed(f.seed)}, cons)
			if err != nil {
				return errors.Wrap(err, "gen")
			}
			return writeInstance(cmd.OutOrStdout(), f.output, g)
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.n, "n", "n", 10, "vertices (or k for mycielski, side size for bipartite and crown)")
	fl.IntVarP(&f.m, "m", "m", 10, "second side size for bipartite")
	fl.IntVar(&f.rows, "rows", 8, "queen board rows")
	fl.IntVar(&f.cols, "cols", 8, "queen board columns")
	fl.Float64VarP(&f.p, "p", "p", 0.5, "edge probability for random")
	fl.Int64Var(&f.seed, "seed", 1, "seed for random")
	fl.StringVar(&f.name, "name", "", "instance name written in the header comment")
	fl.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func writeInstance(stdout io.Writer, path string, g *graph.Graph) error {
	if path == "" {
		return graph.WriteDIMACS(stdout, g)
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "gen")
	}
	if err = graph.WriteDIMACS(out, g); err != nil {
		out.Close()
		return err
	}
	return errors.Wrap(out.Close(), "gen")
}
