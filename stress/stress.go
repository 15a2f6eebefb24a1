// Package stress runs fill and drain rounds against the sequence containers.
package stress

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/seq/config"
	"hop.computer/seq/pkg/readers"
	"hop.computer/seq/pkg/thunks"
)

// ErrSizeMismatch is returned when a container reports a size that does not
// match the number of elements pushed into it.
var ErrSizeMismatch = errors.New("container size mismatch")

// Result summarizes one container over one Run.
type Result struct {
	Container string
	Rounds    int
	Inserted  int
	Elapsed   time.Duration
	// Values is the container content after the rounds, sorted.
	Values []int
}

// Runner owns one instance of every configured container. Containers persist
// across calls to Run, so the seed content survives every round.
type Runner struct {
	cfg       *config.StressConfig
	log       *logrus.Entry
	workloads []workload
	runs      int
	next      func(i int) int
}

func sequential(i int) int { return i }

// NewRunner builds the containers named in cfg, each holding cfg.Seed.
func NewRunner(cfg *config.StressConfig, log *logrus.Entry) *Runner {
	r := &Runner{
		cfg:  cfg,
		log:  log,
		next: sequential,
	}
	if cfg.RandomSeed != 0 && cfg.Inserts > 0 {
		ints := readers.NewDeterministicInts(cfg.RandomSeed, cfg.Inserts)
		r.next = func(int) int {
			return ints.Next()
		}
	}
	for _, name := range cfg.Containers {
		if w := newWorkload(name, cfg); w != nil {
			r.workloads = append(r.workloads, w)
		}
	}
	return r
}

// Run performs cfg.Rounds rounds on every container. Each round inserts
// cfg.Inserts elements at the front (the back for vectors) and pops them
// again. ctx is checked between rounds.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	r.runs++
	results := make([]Result, 0, len(r.workloads))
	for _, w := range r.workloads {
		log := r.log.WithFields(logrus.Fields{
			"container": w.name(),
			"run":       r.runs,
		})
		res, err := r.runWorkload(ctx, w, log)
		if err != nil {
			return results, errors.Wrapf(err, "%s", w.name())
		}
		log.WithField("elapsed", res.Elapsed).Info("container done")
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runWorkload(ctx context.Context, w workload, log *logrus.Entry) (Result, error) {
	base := w.len()
	start := thunks.TimeNow()
	for round := 0; round < r.cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		roundStart := thunks.TimeNow()
		if err := w.fill(r.cfg.Inserts, r.next); err != nil {
			return Result{}, err
		}
		if got, want := w.len(), base+r.cfg.Inserts; got != want {
			return Result{}, errors.Wrapf(ErrSizeMismatch, "after fill: size %d, want %d", got, want)
		}
		if err := w.drain(r.cfg.Inserts); err != nil {
			return Result{}, err
		}
		if got := w.len(); got != base {
			return Result{}, errors.Wrapf(ErrSizeMismatch, "after drain: size %d, want %d", got, base)
		}
		log.WithFields(logrus.Fields{
			"round":   round,
			"elapsed": thunks.TimeNow().Sub(roundStart),
		}).Debug("round complete")
	}
	w.sort()
	return Result{
		Container: w.name(),
		Rounds:    r.cfg.Rounds,
		Inserted:  r.cfg.Rounds * r.cfg.Inserts,
		Elapsed:   thunks.TimeNow().Sub(start),
		Values:    w.values(),
	}, nil
}
