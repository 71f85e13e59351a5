package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-3 is already the next day in UTC.
	loc := time.FixedZone("UTC-3", -3*60*60)
	at := time.Date(2024, time.March, 9, 23, 30, 0, 0, loc)
	if got := DateKey(at); got != "2024-03-10" {
		t.Errorf("Expected date key 2024-03-10, got %q", got)
	}
}

func TestWordIndexIsStableWithinADay(t *testing.T) {
	morning := time.Date(2024, time.March, 10, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)

	a := WordIndex(morning, DefaultSalt, 781)
	b := WordIndex(evening, DefaultSalt, 781)
	if a != b {
		t.Errorf("Expected the same index all day, got %d and %d", a, b)
	}
	if a < 0 || a >= 781 {
		t.Errorf("Expected index within the pool, got %d", a)
	}
}

func TestWordIndexChangesAcrossDays(t *testing.T) {
	poolLen := 781
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	changed := false
	prev := WordIndex(start, DefaultSalt, poolLen)
	for i := 1; i <= 7; i++ {
		next := WordIndex(start.AddDate(0, 0, i), DefaultSalt, poolLen)
		if next != prev {
			changed = true
		}
		prev = next
	}
	if !changed {
		t.Error("Expected the index to change at least once in a week")
	}
}

func TestWordIndexDependsOnSalt(t *testing.T) {
	at := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	poolLen := 781

	changed := false
	base := WordIndex(at, "salt-a", poolLen)
	for _, salt := range []string{"salt-b", "salt-c", "salt-d"} {
		if WordIndex(at, salt, poolLen) != base {
			changed = true
		}
	}
	if !changed {
		t.Error("Expected different salts to shuffle the sequence")
	}
}

func TestWordIndexEmptyPool(t *testing.T) {
	if got := WordIndex(time.Now(), DefaultSalt, 0); got != 0 {
		t.Errorf("Expected index 0 for an empty pool, got %d", got)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC), 1},
		{time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC), 31},
		{time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		if got := Number(tt.date); got != tt.want {
			t.Errorf("Expected puzzle #%d for %s, got #%d", tt.want, tt.date.Format("2006-01-02"), got)
		}
	}
}
