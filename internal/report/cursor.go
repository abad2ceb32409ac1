package report

import (
	"time"

	"daywise/internal/types"
)

// Cursor is the selected-month navigation state for the dashboard view.
// Moving backward always succeeds; moving forward stops at the month of
// "now". Callers pass now at each call rather than caching it, so the
// boundary shifts correctly for sessions that live across midnight.
type Cursor struct {
	month types.Month
}

// NewCursor returns a cursor positioned at the month containing now.
func NewCursor(now time.Time) Cursor {
	return Cursor{month: types.MonthOf(now)}
}

// CursorAt returns a cursor positioned at the given month.
func CursorAt(month types.Month) Cursor {
	return Cursor{month: month}
}

// Month returns the currently selected month.
func (c Cursor) Month() types.Month {
	return c.month
}

// Prev returns a cursor moved one month back. There is no lower bound.
func (c Cursor) Prev() Cursor {
	return Cursor{month: c.month.AddDate(0, -1)}
}

// Next returns a cursor moved one month forward, unless the cursor is
// already at the month containing now, in which case it is returned
// unchanged.
func (c Cursor) Next(now time.Time) Cursor {
	if !c.month.Before(types.MonthOf(now)) {
		return c
	}
	return Cursor{month: c.month.AddDate(0, 1)}
}

// ClampMonth returns the given month, or the month containing now if the
// given month lies beyond it. The summary endpoint uses this so a request
// for a future month behaves like forward navigation at the boundary: a
// no-op rather than an error.
func ClampMonth(month types.Month, now time.Time) types.Month {
	current := types.MonthOf(now)
	if month.After(current) {
		return current
	}
	return month
}
