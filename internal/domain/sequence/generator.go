// Package sequence derives human-readable, date-scoped record identifiers
// of the form <prefix>-[<key>-]<YYYY-MM-DD>-<NNN>.
//
// Generation is max-based, not count-based: the next number comes from the
// lexicographically maximal identifier already persisted for the scope, so
// deleting records never causes a number to be reused. Lexicographic
// ordering is only safe because the numeric suffix is fixed-width
// zero-padded; Format upholds that invariant.
//
// Generation is not race-free. Two concurrent callers may derive the same
// number; the unique constraint on the identifier column converts that into
// an integrity-conflict error the caller can retry with a fresh identifier.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Width is the minimum digit width of the numeric suffix. Numbers beyond
// 999 widen the suffix and break lexicographic max-selection for that day;
// accepted, since no scope approaches a thousand records per day.
const Width = 3

// DateLayout is the calendar-date segment layout.
const DateLayout = "2006-01-02"

// Clock supplies the reference date for scope derivation. Injectable for
// deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current server-local time.
func (SystemClock) Now() time.Time { return time.Now() }

// Scope identifies the namespace within which a numeric suffix is unique:
// a prefix, an optional sub-scope key, and a calendar date.
type Scope struct {
	Prefix string
	Key    string
	Date   time.Time
}

// NewScope builds a scope. The key has embedded spaces stripped so it forms
// a single identifier segment.
func NewScope(prefix, key string, date time.Time) Scope {
	return Scope{
		Prefix: prefix,
		Key:    strings.ReplaceAll(key, " ", ""),
		Date:   date,
	}
}

// String returns the identifier stem, e.g. "plan-Mixing1-2026-08-28".
func (s Scope) String() string {
	if s.Key != "" {
		return s.Prefix + "-" + s.Key + "-" + s.Date.Format(DateLayout)
	}
	return s.Prefix + "-" + s.Date.Format(DateLayout)
}

// Pattern returns the SQL LIKE pattern matching every identifier in the
// scope.
func (s Scope) Pattern() string {
	return s.String() + "-%"
}

// Format renders the identifier for the given sequence number.
func (s Scope) Format(seq int) string {
	return fmt.Sprintf("%s-%0*d", s.String(), Width, seq)
}

// Next derives the identifier following lastID, the lexicographically
// maximal identifier already persisted for this scope. An empty lastID
// starts the sequence at 1. A suffix that does not parse as an integer
// degrades to 1 rather than failing; the unique constraint at insert time
// still prevents a collision.
func (s Scope) Next(lastID string) string {
	seq := 1
	if lastID != "" {
		if n, err := strconv.Atoi(lastID[strings.LastIndex(lastID, "-")+1:]); err == nil {
			seq = n + 1
		}
	}
	return s.Format(seq)
}

// BatchID derives the identifier of batch i under a plan. Pure derivation
// from the plan identifier, no sequence state of its own.
func BatchID(planID string, i int) string {
	return fmt.Sprintf("%s-%0*d", planID, Width, i)
}

// PlantKey normalizes a plant name into a scope key, "Unknown" when the
// plan carries no plant.
func PlantKey(plant string) string {
	key := strings.ReplaceAll(plant, " ", "")
	if key == "" {
		return "Unknown"
	}
	return key
}
