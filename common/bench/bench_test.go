package bench

import (
	"errors"
	"testing"
	"time"
)

func TestMeasureExec(t *testing.T) {
	boom := errors.New("boom")
	d, err := MeasureExec(func() error {
		time.Sleep(time.Millisecond)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if d < time.Millisecond {
		t.Errorf("duration %v shorter than the sleep", d)
	}
}

func TestRate(t *testing.T) {
	if got := Rate(500, 2*time.Second); got != 250 {
		t.Errorf("Rate = %v, want 250", got)
	}
	if got := Rate(10, 0); got != 0 {
		t.Errorf("Rate over zero duration = %v, want 0", got)
	}
}
