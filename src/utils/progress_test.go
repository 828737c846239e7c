package utils

import (
	"testing"
	"time"
)

func TestAttemptBar(t *testing.T) {
	b := NewAttemptBar(20, "factoring n")

	if b.total != 20 {
		t.Errorf("expected total=20, got %d", b.total)
	}
	if b.current != 0 {
		t.Errorf("expected current=0, got %d", b.current)
	}
	if b.width != 30 {
		t.Errorf("expected width=30, got %d", b.width)
	}

	b.Update(10)
	if b.current != 10 {
		t.Errorf("expected current=10 after update, got %d", b.current)
	}

	b.Finish()
	if b.current != b.total {
		t.Errorf("expected current=total after finish, got %d", b.current)
	}
}

func TestEstimateTime(t *testing.T) {
	estimated := EstimateTime(1000, 100.0)
	if expected := 10 * time.Second; estimated != expected {
		t.Errorf("expected %v, got %v", expected, estimated)
	}

	if estimated := EstimateTime(1000, 0); estimated != 0 {
		t.Errorf("expected 0 for zero rate, got %v", estimated)
	}

	if estimated := EstimateTime(1000, -10); estimated != 0 {
		t.Errorf("expected 0 for negative rate, got %v", estimated)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30.0s"},
		{90 * time.Second, "1.5m"},
		{2 * time.Hour, "2.0h"},
		{48 * time.Hour, "2.0d"},
	}

	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
