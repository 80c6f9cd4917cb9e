package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/gcol/metrics"
)

// stopOnSignal calls stop on SIGINT or SIGTERM; engines then finish their
// current move and return. The returned func releases the handler.
func stopOnSignal(stop func()) func() {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			klog.Warningf("received %s, stopping search", sig)
			stop()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

// serveMetrics exposes m on addr in the background; an empty addr is a no-op.
func serveMetrics(addr string, m *metrics.Metrics) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			klog.Errorf("metrics server on %s: %v", addr, err)
		}
	}()
}
