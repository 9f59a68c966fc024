package osc

import (
	"testing"
	"time"
)

func TestNewTimetag(t *testing.T) {
	tt := NewTimetag()
	if tt != TimetagImmediate {
		t.Errorf("NewTimetag() = %d, want %d", tt, TimetagImmediate)
	}
	if i := tt.ExpiresIn(); i != 0 {
		t.Errorf("ExpiresIn() = %d, want 0", i)
	}
}

func TestNewTimetagFromTime(t *testing.T) {
	tt := NewTimetagFromTime(time.Now().Add(time.Second))
	if i := tt.ExpiresIn(); i.Round(time.Millisecond*10) != time.Second {
		t.Errorf("ExpiresIn() = %v, want about %v", i, time.Second)
	}
}

func TestTimetag_ExpiresIn(t *testing.T) {
	tests := []struct {
		name string
		t    Timetag
		want time.Duration
	}{
		{"one_second", NewTimetagFromTime(time.Now().Add(time.Second)), time.Second},
		{"immediate", NewTimetag(), 0},
		{"late", NewTimetagFromTime(time.Now().Add(-time.Second)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.ExpiresIn(); got.Round(time.Millisecond*10) != tt.want {
				t.Errorf("ExpiresIn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimetag_RoundTrip(t *testing.T) {
	now := time.Now()
	tt := NewTimetagFromTime(now)

	if got := tt.Time(); got.Unix() != now.Unix() {
		t.Errorf("Time() = %v, want second %v", got, now)
	}
}
