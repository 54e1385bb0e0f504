package domain

import "time"

// Period is an optional inclusive date window for balance aggregation. A nil
// bound means unbounded on that end; the zero Period covers all entries.
type Period struct {
	From *time.Time
	To   *time.Time
}

// Unbounded reports whether the period places no restriction on dates.
func (p Period) Unbounded() bool {
	return p.From == nil && p.To == nil
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	if p.From != nil && t.Before(*p.From) {
		return false
	}
	if p.To != nil && t.After(*p.To) {
		return false
	}
	return true
}
