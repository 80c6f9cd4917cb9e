package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/graph"
)

// errIllegal makes check exit non-zero on a coloring with conflicts or
// uncolored vertices.
var errIllegal = errors.New("coloring is not legal")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check instance.col solution",
		Short: "Verify a coloring given as c0:c1:... or as a progress CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.LoadDIMACS(args[0])
			if err != nil {
				return err
			}
			encoded, err := solutionArg(args[1])
			if err != nil {
				return err
			}
			colors, err := coloring.DecodeColors(encoded)
			if err != nil {
				return errors.Wrap(err, "check")
			}
			c, err := coloring.FromColors(g, colors)
			if err != nil {
				return errors.Wrap(err, "check")
			}
			fmt.Fprintln(cmd.OutOrStdout(), coloring.HeaderCSV)
			fmt.Fprintln(cmd.OutOrStdout(), c.Format())
			if !c.IsLegal() {
				return errors.Wrapf(errIllegal, "%d uncolored, penalty %d", c.NumUncolored(), c.Penalty())
			}
			return nil
		},
	}
}

// solutionArg returns arg itself, or, when arg names a file, the solution
// field of its last progress record with one.
func solutionArg(arg string) (string, error) {
	f, err := os.Open(arg)
	if os.IsNotExist(err) {
		return arg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "check")
	}
	defer f.Close()

	var last string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if sol := fields[len(fields)-1]; sol != "" && sol != "solution" {
			last = sol
		}
	}
	if err = sc.Err(); err != nil {
		return "", errors.Wrapf(err, "read %s", arg)
	}
	if last == "" {
		return "", errors.Errorf("check: %s has no solution field", arg)
	}
	return last, nil
}
