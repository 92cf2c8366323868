// Package interrupt runs registered handlers when the process receives SIGINT
// or SIGTERM, so long running tools can stop their workers and report before
// exiting.
package interrupt

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mx       sync.Mutex
	handlers []func()
	once     sync.Once
	signals  = make(chan os.Signal, 1)
	done     = make(chan struct{})
)

// AddHandler registers a function to run on interrupt. Handlers run in the
// reverse of the order they were added. The first call starts the listener.
func AddHandler(h func()) {
	mx.Lock()
	handlers = append(handlers, h)
	mx.Unlock()
	once.Do(listen)
}

// HandlersDone is closed after all handlers have run.
func HandlersDone() <-chan struct{} { return done }

// Request runs the handlers as though a signal had arrived.
func Request() { signals <- syscall.SIGINT }

func listen() {
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signals
		log.I.Ln("received", sig, "shutting down")
		signal.Stop(signals)
		run()
	}()
}

func run() {
	mx.Lock()
	hs := handlers
	handlers = nil
	mx.Unlock()
	for i := len(hs) - 1; i >= 0; i-- {
		hs[i]()
	}
	close(done)
}
