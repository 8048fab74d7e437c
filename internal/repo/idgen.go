// Package repo implements the data persistence layer for contact records,
// backed by GORM. This file defines the identifier assignment strategies used
// by the two deployment shapes of the backend.
//
// The persistent server relies on the database to assign sequential ids; the
// stateless function handlers have no durable sequence available and derive
// ids from the clock instead. Both strategies implement IDGenerator so the
// choice is made once, at composition time.
package repo

import (
	"sync/atomic"
	"time"
)

// IDGenerator assigns contact identifiers at insertion time.
//
// Next returns the id to persist, or 0 to let the underlying storage assign
// one. Implementations must guarantee that no two concurrent calls ever
// produce the same non-zero id.
type IDGenerator interface {
	Next(now time.Time) int64
}

// SequentialIDs defers identifier assignment to the database
// (AUTOINCREMENT primary key). Next always returns 0.
type SequentialIDs struct{}

// Next returns 0: the database assigns the id.
func (SequentialIDs) Next(time.Time) int64 { return 0 }

// TimestampIDs derives identifiers from the wall clock in milliseconds.
// An atomic floor makes concurrent calls strictly increasing, so two inserts
// within the same millisecond still receive distinct ids.
type TimestampIDs struct {
	last atomic.Int64
}

// Next returns the current time in Unix milliseconds, bumped past the last
// value handed out if the clock has not advanced.
func (g *TimestampIDs) Next(now time.Time) int64 {
	ms := now.UnixMilli()
	for {
		prev := g.last.Load()
		if ms <= prev {
			ms = prev + 1
		}
		if g.last.CompareAndSwap(prev, ms) {
			return ms
		}
	}
}
