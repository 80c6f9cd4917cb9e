package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcol/budget"
	"github.com/katalvlaran/gcol/graph"
	"github.com/katalvlaran/gcol/metrics"
	"github.com/katalvlaran/gcol/rnd"
)

func newRunCmd() *cobra.Command {
	flags := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "run instance.col",
		Short: "Color one instance with one seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.LoadDIMACS(args[0])
			if err != nil {
				klog.Errorf("%v", err)
				return err
			}
			klog.V(1).Infof("loaded %s", g)

			clock := budget.New(flags.timeLimit)
			release := stopOnSignal(clock.Stop)
			defer release()

			tr, err := newTrajectory(g, flags, uuid.NewString())
			if err != nil {
				klog.Errorf("%v", err)
				return err
			}
			m := metrics.New(nil)
			serveMetrics(flags.metricsAddr, m)

			seed := flags.seed
			if seed == 0 {
				seed = rnd.DefaultSeed
			}
			res, err := tr.run(cmd.Context(), seed, clock)
			if err != nil {
				return err
			}
			m.ObserveRun(g.Name(), tr.params.DisplayName(), res)

			out := cmd.OutOrStdout()
			if !res.Found() {
				fmt.Fprintf(out, "%s %s seed=%d: no legal coloring (best %s)\n",
					g.Name(), tr.params.DisplayName(), seed, res.Best.Format())
				return nil
			}
			fmt.Fprintf(out, "%s %s seed=%d colors=%d turns=%d time=%.3f\n%s\n",
				g.Name(), tr.params.DisplayName(), seed, res.BestLegal.NumColors(),
				res.Turns, res.BestTime.Seconds(), res.BestLegal.Encode())
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
