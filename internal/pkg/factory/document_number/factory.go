package document_number

import (
	"context"
	"fmt"
	"time"
)

const Prefix = "BLT"

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// Generator issues BLT-<year>-<seq> numbers, the sequence restarts every UTC year.
type Generator struct {
	counter Counter
	now     func() time.Time
}

func New(counter Counter, opts ...Option) *Generator {
	g := &Generator{
		counter: counter,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next must run inside the transaction that inserts the receipt, so a rollback
// gives the number back.
func (g *Generator) Next(ctx context.Context) (string, error) {
	scope := Scope(g.now().UTC().Year())

	seq, err := g.counter.NextValue(ctx, scope)
	if err != nil {
		return "", fmt.Errorf("next document number: %w", err)
	}
	if seq <= 0 {
		return "", fmt.Errorf("next document number: non-positive sequence %d", seq)
	}

	return Format(scope, seq), nil
}

func Scope(year int) string {
	return fmt.Sprintf("%s-%d", Prefix, year)
}

// Format pads to five digits and widens past 99999 instead of wrapping.
func Format(scope string, seq int64) string {
	return fmt.Sprintf("%s-%05d", scope, seq)
}
