// Package main is a nostr key miner that searches for keys whose npub, or hex
// public key, has a chosen string at the beginning, the end, or anywhere in it.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/pkg/profile"
	"github.com/puzpuzpuz/xsync/v3"

	"identity.realy.lol/config"
	"identity.realy.lol/interrupt"
	"identity.realy.lol/vanity"
)

var args struct {
	String   st `arg:"positional" help:"the string you want to appear in the npub"`
	Position st `arg:"positional" default:"end" help:"[begin|contain|end] default: end"`
	Threads  no `help:"number of threads to mine with, defaults to THREADS or all CPU threads available"`
	Hex      bo `help:"match against the hex public key instead of the npub"`
}

func main() {
	cfg, err := config.New("vainstr")
	if chk.F(err) {
		os.Exit(1)
	}
	if cfg.HandlePseudoCommands(os.Args, os.Stdout) {
		os.Exit(0)
	}
	p := arg.MustParse(&args)
	if args.String == "" {
		p.WriteHelp(os.Stderr)
		os.Exit(0)
	}
	if args.Threads == 0 {
		args.Threads = cfg.Threads
	}
	if args.Threads == 0 {
		args.Threads = runtime.NumCPU()
	}
	if cfg.Pprof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if err = run(cfg); err != nil {
		log.F.F("error: %s", err)
		os.Exit(1)
	}
}

func run(cfg *config.C) (err er) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	interrupt.AddHandler(cancel)
	o := vanity.Options{
		Target:   args.String,
		Position: vanity.ParsePosition(args.Position),
		Hex:      args.Hex,
		Threads:  args.Threads,
		Attempts: xsync.NewCounter(),
	}
	log.I.F("mining for %q at %s of the %s with %d threads",
		o.Target, o.Position, map[bo]st{false: "npub", true: "hex key"}[o.Hex], o.Threads)
	started := time.Now()
	go progress(ctx, started, o.Attempts)
	var res *vanity.Result
	if res, err = vanity.Mine(ctx, o); err != nil {
		if ctx.Err() != nil {
			log.I.Ln("interrupted after", o.Attempts.Value(), "attempts")
			return nil
		}
		return
	}
	fmt.Printf("generated in %d attempts, taking %v\n",
		res.Attempts, time.Since(started).Truncate(time.Millisecond))
	return printResult(cfg, res)
}

func progress(ctx context.Context, started time.Time, attempts *xsync.Counter) {
	tick := time.NewTicker(5 * time.Second)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			fmt.Printf("working for %v, attempts %d\n",
				time.Since(started).Truncate(time.Second), attempts.Value())
		}
	}
}
