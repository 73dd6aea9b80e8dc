package models

import "time"

// RawRecord holds one undecoded dataset row exactly as fetched from the
// source CSV. The date is still a string and no validation has happened.
type RawRecord struct {
	Location   string
	ISOCode    string
	Date       string
	NewCases   *float64
	TotalCases *float64
	NewDeaths  *float64
}

// Record is a cleaned, validated observation for one (location, date) pair.
// Numeric fields are nil when the source row carried no measurement —
// absent is not the same as zero.
type Record struct {
	Location   string
	ISOCode    string
	Date       time.Time
	NewCases   *float64
	TotalCases *float64
	NewDeaths  *float64
}

// CleanReport accounts for every row the cleaner dropped, by rule.
type CleanReport struct {
	Input            int
	Kept             int
	DroppedAggregate int
	DroppedBadDate   int
	DroppedNegative  int
}

// Summary holds the computed statistics over the cleaned dataset.
// Pointer fields are nil when the statistic is undefined (no data to
// compute it from), never silently zero.
type Summary struct {
	Mean        *float64
	Median      *float64
	Max         *float64
	Total       float64
	Correlation *float64
	Locations   int
	FirstDate   time.Time
	LastDate    time.Time
}

// Float64 returns a pointer to v. Convenience for building records.
func Float64(v float64) *float64 {
	return &v
}
