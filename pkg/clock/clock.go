// Package clock provides the wall-clock used by services.
package clock

import "time"

// Real returns the current UTC time.
type Real struct{}

// Now returns time.Now in UTC.
func (Real) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant. Tests advance it by assignment.
type Fixed struct {
	T time.Time
}

// Now returns f.T.
func (f *Fixed) Now() time.Time { return f.T }

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) { f.T = f.T.Add(d) }
