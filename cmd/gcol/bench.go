package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/google/uuid"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gcol/budget"
	"github.com/katalvlaran/gcol/graph"
	"github.com/katalvlaran/gcol/localsearch"
	"github.com/katalvlaran/gcol/metrics"
	"github.com/katalvlaran/gcol/rnd"
)

func newBenchCmd() *cobra.Command {
	flags := &searchFlags{}
	var runs, jobs int
	cmd := &cobra.Command{
		Use:   "bench instance.col",
		Short: "Run independent seeds in parallel and summarize them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs < 1 {
				return fmt.Errorf("bench: --runs must be positive, got %d", runs)
			}
			if jobs < 1 {
				return fmt.Errorf("bench: --jobs must be positive, got %d", jobs)
			}
			g, err := graph.LoadDIMACS(args[0])
			if err != nil {
				klog.Errorf("%v", err)
				return err
			}

			// Every seed owns its clock; a signal cancels them all.
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			release := stopOnSignal(cancel)
			defer release()

			runID := uuid.NewString()
			tr, err := newTrajectory(g, flags, runID)
			if err != nil {
				klog.Errorf("%v", err)
				return err
			}
			m := metrics.New(nil)
			serveMetrics(flags.metricsAddr, m)

			base := flags.seed
			if base == 0 {
				base = rnd.DefaultSeed
			}
			results := make([]*localsearch.Result, runs)
			seeds := make([]int64, runs)

			grp, gctx := errgroup.WithContext(ctx)
			grp.SetLimit(jobs)
			for i := range results {
				i := i
				seeds[i] = rnd.DeriveSeed(base, uint64(i))
				grp.Go(func() error {
					res, err := tr.run(gctx, seeds[i], budget.New(flags.timeLimit))
					if err != nil {
						return err
					}
					m.ObserveRun(g.Name(), tr.params.DisplayName(), res)
					results[i] = res
					return nil
				})
			}
			if err = grp.Wait(); err != nil {
				return err
			}

			klog.V(1).Infof("bench %s finished %d runs", runID, runs)
			summarize(cmd.OutOrStdout(), g.Name(), tr.params.DisplayName(), seeds, results)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&runs, "runs", 10, "number of seeds")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "parallel trajectories")
	return cmd
}

// summary describes one sample.
type summary struct {
	n                        int
	mean, sd, lo, median, hi float64
}

func summarizeSample(xs []float64) summary {
	if len(xs) == 0 {
		return summary{}
	}
	s := stats.Sample{Xs: xs}
	s.Sort()
	lo, hi := s.Bounds()
	out := summary{n: len(xs), mean: s.Mean(), lo: lo, median: s.Quantile(0.5), hi: hi}
	if len(xs) > 1 {
		out.sd = s.StdDev()
	}
	return out
}

func (s summary) String() string {
	return fmt.Sprintf("n=%d mean=%.3f sd=%.3f min=%.3f median=%.3f max=%.3f",
		s.n, s.mean, s.sd, s.lo, s.median, s.hi)
}

// summarize prints one line per seed, then the color and time-to-best
// statistics over the seeds that found a legal coloring.
func summarize(w io.Writer, instance, engine string, seeds []int64, results []*localsearch.Result) {
	var colors, times []float64
	for i, res := range results {
		if !res.Found() {
			fmt.Fprintf(w, "%s %s seed=%d colors=- turns=%d\n", instance, engine, seeds[i], res.Turns)
			continue
		}
		fmt.Fprintf(w, "%s %s seed=%d colors=%d turns=%d time=%.3f\n",
			instance, engine, seeds[i], res.BestLegal.NumColors(), res.Turns, res.BestTime.Seconds())
		colors = append(colors, float64(res.BestLegal.NumColors()))
		times = append(times, res.BestTime.Round(time.Millisecond).Seconds())
	}
	fmt.Fprintf(w, "found %d/%d\n", len(colors), len(results))
	fmt.Fprintf(w, "colors       %s\n", summarizeSample(colors))
	fmt.Fprintf(w, "time_to_best %s\n", summarizeSample(times))
}
