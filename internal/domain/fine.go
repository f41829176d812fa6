package domain

import (
	"math"
	"time"
)

// DaysLate counts the charged days between due and returned. Any started
// fraction of a day counts as a full day; on-time returns count zero.
func DaysLate(due, returned time.Time) int {
	if !returned.After(due) {
		return 0
	}
	return int(math.Ceil(returned.Sub(due).Hours() / 24))
}

// OverdueFine prices a late return at dailyRate per started day past due,
// rounded to whole cents. On-time returns and non-positive rates cost
// nothing.
func OverdueFine(due, returned time.Time, dailyRate float64) float64 {
	days := DaysLate(due, returned)
	if days == 0 || dailyRate <= 0 {
		return 0
	}
	return roundCents(float64(days) * dailyRate)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
