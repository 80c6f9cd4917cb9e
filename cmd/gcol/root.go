package main

import (
	"flag"
	"time"

	"github.com/spf13/cobra"
)

// searchFlags are shared by run and bench.
type searchFlags struct {
	methodPath    string
	target        int
	useTarget     bool
	seed          int64
	timeLimit     time.Duration
	maxIterations int64
	outputDir     string
	paranoid      bool
	metricsAddr   string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.methodPath, "method", "m", "", "method configuration file (yaml or json)")
	fl.IntVarP(&f.target, "target", "k", -1, "target number of colors (-1: number of vertices)")
	fl.BoolVar(&f.useTarget, "use-target", false, "stop at k colors instead of minimizing")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (0: default seed)")
	fl.DurationVarP(&f.timeLimit, "time-limit", "t", 3600*time.Second, "wall-clock budget")
	fl.Int64Var(&f.maxIterations, "max-iterations", 0, "turn ceiling per inner loop (0: unlimited)")
	fl.StringVarP(&f.outputDir, "output-dir", "o", "", "directory for progress CSV files")
	fl.BoolVar(&f.paranoid, "paranoid", false, "verify every invariant after every move")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	_ = cmd.MarkFlagRequired("method")
}

// newRootCmd builds the command tree; klogFlags become persistent flags.
func newRootCmd(klogFlags *flag.FlagSet) *cobra.Command {
	root := &cobra.Command{
		Use:           "gcol",
		Short:         "Graph coloring with greedy constructors and tabu search",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	if klogFlags != nil {
		root.PersistentFlags().AddGoFlagSet(klogFlags)
	}
	root.AddCommand(newRunCmd(), newBenchCmd(), newGenCmd(), newCheckCmd())
	return root
}
