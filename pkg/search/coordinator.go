// Package search finds function signatures whose ABI selector equals a
// target. Candidates have the form prefix + infix + "(" + args + ")" where the
// infix ranges over every string of a fixed length on an alphabet.
package search

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/luxfi/pocketh/pkg/selector"
)

// Config configures a Coordinator.
type Config struct {
	// Workers is the number of probing goroutines; <= 0 means GOMAXPROCS.
	Workers  int
	TieBreak TieBreak
}

// probeFunc returns the selector of a signature. Each worker owns one, so
// implementations need not be safe for concurrent use.
type probeFunc func(sig []byte) selector.Selector

// Coordinator runs searches. It holds no per-search state and may run several
// searches concurrently.
type Coordinator struct {
	workers  int
	tieBreak TieBreak
	newProbe func() probeFunc
}

// NewCoordinator returns a Coordinator for cfg.
func NewCoordinator(cfg Config) *Coordinator {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Coordinator{
		workers:  workers,
		tieBreak: cfg.TieBreak,
		newProbe: func() probeFunc {
			return selector.NewHasher().Selector
		},
	}
}

// Workers returns the maximum number of goroutines used per search.
func (c *Coordinator) Workers() int {
	return c.workers
}

// TieBreak returns the policy used when several infixes match.
func (c *Coordinator) TieBreak() TieBreak {
	return c.tieBreak
}

// Search scans the index space of query. It returns an Outcome with
// StatusFound or StatusExhausted and a nil error, or an Outcome with
// StatusError and the same error. Canceling ctx stops every worker after its
// current probe and yields ErrCanceled.
func (c *Coordinator) Search(ctx context.Context, query Query) (Outcome, error) {
	total, err := query.Space()
	if err != nil {
		return failed(0, 0, err)
	}
	if err := context.Cause(ctx); err != nil {
		return failed(total, 0, fmt.Errorf("%w: %w", ErrCanceled, err))
	}

	// Strided partition: worker w probes w, w+n, w+2n, ... in ascending order,
	// so every worker's position tracks the others and the lowest-index policy
	// only has to wait for indices below the current claim.
	stride := min(uint64(c.workers), total)
	r := &run{
		target:   query.Target,
		prefix:   query.Prefix,
		args:     query.Args,
		infixLen: query.InfixLen,
		alphabet: query.alphabet(),
		total:    total,
		stride:   stride,
		tieBreak: c.tieBreak,
		newProbe: c.newProbe,
		claim:    newClaim(),
	}

	g, gctx := errgroup.WithContext(ctx)
	stopOnDone := context.AfterFunc(gctx, func() {
		r.stop.Store(true)
	})
	defer stopOnDone()

	for w := uint64(0); w < stride; w++ {
		g.Go(func() error {
			return r.work(w)
		})
	}
	err = g.Wait()
	probes := r.probes.Load()
	if err != nil {
		return failed(total, probes, err)
	}

	interrupted := r.interrupted.Load()
	if index, ok := r.claim.claimed(); ok && (c.tieBreak == FirstFound || !interrupted) {
		return Outcome{
			Status: StatusFound,
			Match:  r.candidate(index),
			Space:  total,
			Probes: probes,
		}, nil
	}
	if interrupted {
		return failed(total, probes, fmt.Errorf("%w: %w", ErrCanceled, context.Cause(ctx)))
	}
	return Outcome{
		Status: StatusExhausted,
		Space:  total,
		Probes: probes,
	}, nil
}

func failed(space, probes uint64, err error) (Outcome, error) {
	return Outcome{
		Status: StatusError,
		Err:    err,
		Space:  space,
		Probes: probes,
	}, err
}

// run is the state of a single search shared by its workers. Everything but
// the atomics is read-only once workers start.
type run struct {
	target   selector.Selector
	prefix   string
	args     string
	infixLen int
	alphabet *Alphabet
	total    uint64
	stride   uint64
	tieBreak TieBreak
	newProbe func() probeFunc

	claim       *claim
	stop        atomic.Bool
	interrupted atomic.Bool
	probes      atomic.Uint64
}

// work probes every index congruent to w modulo the stride. The stop flag is
// checked once per probe.
func (r *run) work(w uint64) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, w, rec)
		}
	}()

	probe := r.newProbe()
	tmpl := newTemplate(r.prefix, r.args, r.infixLen)
	var n uint64
	defer func() {
		r.probes.Add(n)
	}()

	for i := w; i < r.total; {
		if r.stop.Load() {
			r.interrupted.Store(true)
			return nil
		}
		// Indices only grow, so nothing left here can beat the claim.
		if i > r.claim.load() {
			return nil
		}

		n++
		if probe(tmpl.set(i, r.alphabet)) == r.target {
			switch r.tieBreak {
			case FirstFound:
				if r.claim.first(i) {
					r.stop.Store(true)
				}
			default:
				r.claim.lowest(i)
			}
			return nil
		}

		// i + stride may wrap when total is close to MaxUint64.
		if r.total-i <= r.stride {
			return nil
		}
		i += r.stride
	}
	return nil
}

func (r *run) candidate(index uint64) *Candidate {
	tmpl := newTemplate(r.prefix, r.args, r.infixLen)
	sig := tmpl.set(index, r.alphabet)
	return &Candidate{
		Index:     index,
		Infix:     string(tmpl.infix),
		Signature: string(sig),
		Selector:  r.newProbe()(sig),
	}
}
