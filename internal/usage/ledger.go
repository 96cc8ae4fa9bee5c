// Package usage tracks the rolling monthly spend of quota-limited completion
// providers. A single global counter survives restarts; it resets itself the
// first time it is read in a new calendar month.
package usage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Record is the persisted ledger state. Exactly these two fields are
// read and written as a whole on every access.
type Record struct {
	AmountUsed float64 `json:"amount_used"`
	Period     int     `json:"period"`
}

// Store persists the ledger record.
type Store interface {
	// Load returns the stored record and whether one existed.
	Load(ctx context.Context) (Record, bool, error)
	// Save writes the record, replacing any previous state.
	Save(ctx context.Context, rec Record) error
}

// CurrentPeriod returns the period key for now, as YYYYMM. Encoding the
// year avoids a counter that never rolls over between Decembers.
func CurrentPeriod(now time.Time) int {
	return now.Year()*100 + int(now.Month())
}

// Ledger applies the monthly rollover rule on top of a Store and serializes
// read-modify-write cycles so concurrent calls cannot both slip past a quota
// check that a sequential increment would have blocked.
type Ledger struct {
	store Store
	limit float64
	now   func() time.Time

	mu sync.Mutex
}

// NewLedger creates a Ledger over the given store with a monthly spend limit.
func NewLedger(store Store, limit float64) *Ledger {
	return &Ledger{store: store, limit: limit, now: time.Now}
}

// Limit returns the configured monthly spend limit.
func (l *Ledger) Limit() float64 {
	return l.limit
}

// Load returns the current record, resetting and persisting it first if the
// stored period differs from the current one.
func (l *Ledger) Load(ctx context.Context) (Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// incrementer is implemented by stores that can add to the counter in a
// single atomic operation.
type incrementer interface {
	Add(ctx context.Context, delta float64, period int) error
}

// Record adds delta to the current amount and persists the result. The
// rollover rule is re-applied before the increment. Stores that support
// atomic increments get the delta in one operation.
func (l *Ledger) Record(ctx context.Context, delta float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if inc, ok := l.store.(incrementer); ok {
		return inc.Add(ctx, delta, CurrentPeriod(l.now()))
	}

	rec, err := l.load(ctx)
	if err != nil {
		return err
	}
	rec.AmountUsed += delta
	if err := l.store.Save(ctx, rec); err != nil {
		return fmt.Errorf("failed to persist usage: %w", err)
	}
	return nil
}

// Exceeded reports whether the current period's usage has reached the limit.
func (l *Ledger) Exceeded(ctx context.Context) (bool, error) {
	rec, err := l.Load(ctx)
	if err != nil {
		return false, err
	}
	return rec.AmountUsed >= l.limit, nil
}

// load must be called with l.mu held.
func (l *Ledger) load(ctx context.Context) (Record, error) {
	period := CurrentPeriod(l.now())

	rec, ok, err := l.store.Load(ctx)
	if err != nil {
		return Record{}, fmt.Errorf("failed to load usage: %w", err)
	}
	if !ok {
		rec = Record{AmountUsed: 0, Period: period}
		if err := l.store.Save(ctx, rec); err != nil {
			return Record{}, fmt.Errorf("failed to initialize usage: %w", err)
		}
		return rec, nil
	}

	// New month: zero the counter before anyone reads it.
	if rec.Period != period {
		rec = Record{AmountUsed: 0, Period: period}
		if err := l.store.Save(ctx, rec); err != nil {
			return Record{}, fmt.Errorf("failed to reset usage for new period: %w", err)
		}
	}
	return rec, nil
}
