package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/gcol/budget"
	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/config"
	"github.com/katalvlaran/gcol/graph"
	"github.com/katalvlaran/gcol/greedy"
	"github.com/katalvlaran/gcol/localsearch"
	"github.com/katalvlaran/gcol/progress"
	"github.com/katalvlaran/gcol/rnd"
	"github.com/katalvlaran/gcol/ubqp"
)

// trajectory is everything one search needs besides its seed and clock.
// Only the read-only parts (graph, UBQP structure) are shared between seeds.
type trajectory struct {
	g      *graph.Graph
	method *config.Method
	params localsearch.Params
	flags  *searchFlags
	target int
	ubqp   *ubqp.Graph
	runID  string
}

func newTrajectory(g *graph.Graph, flags *searchFlags, runID string) (*trajectory, error) {
	m, err := config.Load(flags.methodPath)
	if err != nil {
		return nil, err
	}
	t := &trajectory{
		g:      g,
		method: m,
		params: m.Resolve(g.Order(), flags.timeLimit, flags.maxIterations),
		flags:  flags,
		target: flags.target,
		runID:  runID,
	}
	if t.target < 0 {
		t.target = g.Order()
	}
	if t.params.Name == localsearch.TabuBucket {
		t.ubqp = ubqp.New(g)
		klog.V(1).Infof("%s: UBQP graph has %d arcs and %d links", g.Name(), t.ubqp.NumArcs(), t.ubqp.NumLinks())
	}
	return t, nil
}

// outputPath is {dir}/{instance}_{seed}.csv, or {instance}_{seed}_{k}.csv in
// target mode.
func outputPath(dir, instance string, seed int64, target int, useTarget bool) string {
	name := instance + "_" + strconv.FormatInt(seed, 10)
	if useTarget {
		name += "_" + strconv.Itoa(target)
	}
	return filepath.Join(dir, name+".csv")
}

// run colors the graph greedily, runs the engine against clock and, with an
// output directory, writes the progress CSV as .running and renames it when
// done. clock belongs to this trajectory alone.
func (t *trajectory) run(ctx context.Context, seed int64, clock *budget.Clock) (*localsearch.Result, error) {
	rng := rnd.FromSeed(seed)

	// 1) Initial coloring.
	start := coloring.New(t.g)
	if err := greedy.Color(start, t.method.Initialization, greedy.WithRand(rng)); err != nil {
		return nil, errors.Wrap(err, "initial coloring")
	}
	klog.V(1).Infof("%s seed=%d: %s gives %d colors", t.g.Name(), seed, t.method.Initialization, start.NumColors())

	// 2) Recorders.
	tag := fmt.Sprintf("%s/%s/%d", t.g.Name(), t.params.DisplayName(), seed)
	recs := progress.Multi{progress.Klog{Tag: tag, Level: 2}}
	var final, running string
	if t.flags.outputDir != "" {
		final = outputPath(t.flags.outputDir, t.g.Name(), seed, t.target, t.flags.useTarget)
		running = final + ".running"
		f, err := os.Create(running)
		if err != nil {
			return nil, errors.Wrap(err, "create output")
		}
		defer f.Close()
		csvRec, err := progress.NewCSV(f, t.meta(seed)...)
		if err != nil {
			return nil, errors.Wrapf(err, "write %s", running)
		}
		recs = append(recs, csvRec)
	}

	// 3) Search.
	engine, err := localsearch.New(t.params)
	if err != nil {
		return nil, errors.Wrap(err, "engine")
	}
	res, err := engine.Run(ctx, start, &localsearch.SearchContext{
		Clock:     clock,
		Target:    t.target,
		UseTarget: t.flags.useTarget,
		Rng:       rng,
		Recorder:  recs,
		UBQP:      t.ubqp,
		Paranoid:  t.flags.paranoid,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s seed=%d", engine.Name(), seed)
	}

	if running != "" {
		if err = os.Rename(running, final); err != nil {
			return nil, errors.Wrap(err, "finalize output")
		}
	}
	if res.Found() {
		klog.V(1).Infof("%s: best legal %d colors at turn %d (%s)", tag, res.BestLegal.NumColors(), res.BestTurn, res.BestTime)
	} else {
		klog.V(1).Infof("%s: no legal coloring within budget", tag)
	}
	return res, nil
}

func (t *trajectory) meta(seed int64) []progress.Meta {
	return []progress.Meta{
		{Key: "instance", Value: t.g.Name()},
		{Key: "vertices", Value: strconv.Itoa(t.g.Order())},
		{Key: "edges", Value: strconv.Itoa(t.g.Size())},
		{Key: "method", Value: t.method.Method},
		{Key: "initialization", Value: t.method.Initialization},
		{Key: "engine", Value: t.params.DisplayName()},
		{Key: "seed", Value: strconv.FormatInt(seed, 10)},
		{Key: "target", Value: strconv.Itoa(t.target)},
		{Key: "use_target", Value: strconv.FormatBool(t.flags.useTarget)},
		{Key: "time_limit", Value: t.flags.timeLimit.String()},
		{Key: "run_id", Value: t.runID},
	}
}
