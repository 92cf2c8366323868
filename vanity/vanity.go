// Package vanity mines nostr keys whose public key contains a chosen string,
// at the beginning, anywhere, or at the end of the npub (or of the hex key).
//
// Each worker draws from its own entropy source and tests candidates made
// without a key pair, so a candidate costs one scalar multiplication and one
// bech32 encoding. Only the winner gets its key pair built.
package vanity

import (
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"identity.realy.lol/bech32encoding"
	"identity.realy.lol/hex"
	"identity.realy.lol/keys"
)

// Position is where in the key the target must appear.
type Position int

const (
	Beginning Position = iota
	Contains
	Ending
)

func (p Position) String() st {
	switch p {
	case Beginning:
		return "begin"
	case Contains:
		return "contain"
	default:
		return "end"
	}
}

// ParsePosition reads begin, contain or end, or anything starting with them.
// Anything else is Ending.
func ParsePosition(s st) Position {
	canonical := strings.ToLower(s)
	switch {
	case strings.HasPrefix(canonical, "begin"):
		return Beginning
	case strings.HasPrefix(canonical, "contain"):
		return Contains
	default:
		return Ending
	}
}

const hexChars = "0123456789abcdef"

var ErrEmptyTarget = errors.New("vanity target is empty")

// Options configures a search.
type Options struct {
	Target   st
	Position Position
	// Hex matches against the lower case hex public key instead of the npub.
	Hex bo
	// Threads is the number of workers, all CPUs when zero.
	Threads no
	// Rand makes the entropy source for each worker. Defaults to frand.New.
	Rand func() io.Reader
	// Attempts, if set, is incremented for every candidate tried so that a caller
	// can watch progress.
	Attempts *xsync.Counter
}

// Result is the key found by a search.
type Result struct {
	Keys     *keys.T
	Npub     st
	Attempts int64
}

// Validate checks that every character of the target can occur in the chosen
// encoding, returning a *keys.InvalidCharError for the first one that can't.
func Validate(target st, hexMode bo) (err er) {
	if target == "" {
		return ErrEmptyTarget
	}
	if !hexMode {
		return keys.CheckBech32Chars(target)
	}
	for _, c := range target {
		if !strings.ContainsRune(hexChars, c) {
			return &keys.InvalidCharError{Char: c}
		}
	}
	return
}

type matcher func(pub by) (npub st, ok bo)

func newMatcher(o *Options) matcher {
	test := strings.HasSuffix
	switch o.Position {
	case Beginning:
		test = strings.HasPrefix
	case Contains:
		test = strings.Contains
	}
	if o.Hex {
		return func(pub by) (npub st, ok bo) {
			if !test(hex.Enc(pub), o.Target) {
				return
			}
			npub, _ = bech32encoding.EncodeNpub(pub)
			return npub, true
		}
	}
	prefix := bech32encoding.NpubHRP + "1"
	return func(pub by) (npub st, ok bo) {
		var err er
		if npub, err = bech32encoding.EncodeNpub(pub); chk.E(err) {
			return
		}
		// the data part excludes the prefix, a beginning match is right after it
		ok = test(npub[len(prefix):], o.Target)
		return
	}
}

// Mine runs the search until a key matches, a worker fails or ctx is done.
func Mine(ctx context.Context, o Options) (res *Result, err er) {
	if err = Validate(o.Target, o.Hex); chk.D(err) {
		return
	}
	if o.Threads <= 0 {
		o.Threads = runtime.NumCPU()
	}
	if o.Rand == nil {
		o.Rand = func() io.Reader { return frand.New() }
	}
	if o.Attempts == nil {
		o.Attempts = xsync.NewCounter()
	}
	match := newMatcher(&o)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	found := make(chan *Result, 1)
	for i := range o.Threads {
		log.D.F("starting up worker %d", i)
		g.Go(func() (err er) {
			kg := keys.NewKeygen(o.Rand())
			for {
				select {
				case <-gctx.Done():
					return
				default:
				}
				var pub by
				if pub, err = kg.Generate(); chk.E(err) {
					return errors.Wrapf(err, "worker %d", i)
				}
				o.Attempts.Inc()
				npub, ok := match(pub)
				if !ok {
					continue
				}
				select {
				case found <- &Result{Keys: kg.Current().Materialize(), Npub: npub}:
					log.D.Ln("worker", i, "found a match")
					cancel()
				default:
					log.D.Ln("worker", i, "also matched, another result was first")
				}
				return
			}
		})
	}
	err = g.Wait()
	select {
	case res = <-found:
		err = nil
		res.Attempts = o.Attempts.Value()
	default:
		if err == nil {
			err = ctx.Err()
		}
	}
	return
}
