// Package daily picks the shared word of the day: every player running the
// daily mode on the same calendar date gets the same secret word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DefaultSalt keys the daily word sequence. It has to stay stable across
// releases, otherwise the shared word changes under players mid-day.
const DefaultSalt = "wordle-daily-v1"

// epoch is the date of daily puzzle #1.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateKey returns the calendar day of t as YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic pool index for the given date: the
// HMAC-SHA256 of the date key under the salt, reduced modulo the pool
// size. The salt keeps the sequence from leaking the pool order.
func WordIndex(date time.Time, salt string, poolLen int) int {
	if poolLen <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	sum := mac.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(poolLen))
}

// Number returns the 1-based puzzle number for the given date. Dates
// before the first puzzle clamp to 1.
func Number(date time.Time) int {
	d := date.UTC()
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	n := int(day.Sub(epoch)/(24*time.Hour)) + 1
	if n < 1 {
		return 1
	}
	return n
}
