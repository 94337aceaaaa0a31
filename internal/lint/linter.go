package lint

import (
	"context"
	"sync"

	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/commitlint/internal/commit"
	"github.com/maxbolgarin/commitlint/internal/model"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
	"github.com/panjf2000/ants/v2"
)

const defaultPoolSize = 16

// Run executes every selected check against the message in catalog order and
// collects the produced problems. An empty selection yields an empty result,
// never an error.
func Run(msg *commit.Message, lints Lints) []model.Problem {
	var problems []model.Problem
	for _, l := range lints.Slice() {
		if p := l.Check(msg); p != nil {
			problems = append(problems, *p)
		}
	}
	return problems
}

// Config configures the concurrent evaluator.
type Config struct {
	PoolSize int `yaml:"pool_size" env:"LINTER_POOL_SIZE"`
}

// Linter runs checks concurrently on a shared worker pool. Output is
// identical to Run for every message and selection: results land in slots
// indexed by catalog position, so completion order never shows.
type Linter struct {
	pool *ants.Pool
	log  logze.Logger
}

// New creates a linter with its worker pool.
func New(cfg Config) (*Linter, error) {
	pool, err := ants.NewPool(lang.Check(cfg.PoolSize, defaultPoolSize))
	if err != nil {
		return nil, errm.Wrap(err, "failed to create worker pool")
	}
	return &Linter{
		pool: pool,
		log:  logze.With("component", "linter"),
	}, nil
}

// Run executes the selected checks sequentially.
func (l *Linter) Run(msg *commit.Message, lints Lints) []model.Problem {
	return Run(msg, lints)
}

// RunAsync executes each selected check as an independent task and returns
// the problems in catalog order. Checks are pure and share only the read-only
// message, so no synchronization happens between them. The only error is a
// cancelled context; still-running checks are abandoned without side effects.
func (l *Linter) RunAsync(ctx context.Context, msg *commit.Message, lints Lints) ([]model.Problem, error) {
	timer := abstract.StartTimer()

	selected := lints.Slice()
	results := make([]*model.Problem, len(selected))

	var wg sync.WaitGroup
	for i, ln := range selected {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = ln.Check(msg)
		}
		if err := l.pool.Submit(task); err != nil {
			// Pool saturated or closed, fall back to running inline.
			task()
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var problems []model.Problem
	for _, p := range results {
		if p != nil {
			problems = append(problems, *p)
		}
	}

	l.log.Debug("linting finished",
		"lints", len(selected),
		"problems", len(problems),
		"elapsed", timer.ElapsedTime().String(),
	)
	return problems, nil
}

// Close releases the worker pool.
func (l *Linter) Close() error {
	l.pool.Release()
	return nil
}
