package question

import (
	"testing"
	"time"
)

func TestMakeID(t *testing.T) {
	date := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if got := MakeID(date, 1234, 0); got != "T-20260830-1234" {
		t.Errorf("MakeID = %q", got)
	}
	if got := MakeID(date, 1234, 2); got != "T-20260830-1236" {
		t.Errorf("MakeID with offset = %q", got)
	}
}

func TestMakeIDLocalUniqueness(t *testing.T) {
	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		id := MakeID(date, 9999, i)
		if seen[id] {
			t.Errorf("duplicate id %s within batch", id)
		}
		seen[id] = true
	}
}

func TestRandomBaseRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if b := RandomBase(); b < 1000 || b > 9999 {
			t.Fatalf("RandomBase out of range: %d", b)
		}
	}
}
