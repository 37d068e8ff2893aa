package util

import (
	"testing"
	"time"
)

func TestFormatCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		count    int64
		expected string
	}{
		{name: "zero", count: 0, expected: "0"},
		{name: "under a thousand", count: 999, expected: "999"},
		{name: "exact thousand", count: 1000, expected: "1.0k"},
		{name: "rounds to one decimal", count: 1234, expected: "1.2k"},
		{name: "tens of thousands", count: 45678, expected: "45.7k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCount(tt.count); got != tt.expected {
				t.Fatalf("FormatCount(%d) = %s, want %s", tt.count, got, tt.expected)
			}
		})
	}
}

func TestFormatMiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		miles    float64
		expected string
	}{
		{name: "zero", miles: 0, expected: "0.0 mi"},
		{name: "rounds down", miles: 2.04, expected: "2.0 mi"},
		{name: "rounds up", miles: 12.36, expected: "12.4 mi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatMiles(tt.miles); got != tt.expected {
				t.Fatalf("FormatMiles(%f) = %s, want %s", tt.miles, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "token lifetime", duration: 12 * time.Hour, expected: "12h0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
