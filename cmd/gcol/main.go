// Command gcol colors DIMACS graphs with greedy constructors and tabu
// search.
//
//	gcol run   instance.col --method tabucol.yaml [-k 15] [--seed 3] [--output-dir out]
//	gcol bench instance.col --method tabucol.yaml --runs 20 --jobs 4
//	gcol gen   queen --rows 8 --cols 8 -o queen8_8.col
//	gcol check instance.col 0:1:0:2
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	root := newRootCmd(fset)
	err := root.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
