package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

var (
	signalCtx context.Context
	cancel    context.CancelFunc
	once      sync.Once
)

// signalContext returns a Context cancelled on SIGINT/SIGTERM, for passing
// to (*srmp.Solver).Run so a solve in progress stops cooperatively. A
// second signal exits the process immediately.
func signalContext() context.Context {
	once.Do(func() {
		c := make(chan os.Signal, 2)
		signal.Notify(c, shutdownSignals...)
		signalCtx, cancel = context.WithCancel(context.Background())
		go func() {
			<-c
			cancel()
			<-c
			os.Exit(1)
		}()
	})

	return signalCtx
}
