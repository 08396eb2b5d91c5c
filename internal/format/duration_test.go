package format

import (
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microseconds", 250 * time.Microsecond, "250µs"},
		{"milliseconds", 42 * time.Millisecond, "42ms"},
		{"seconds", 3 * time.Second, "3s"},
		{"minutes", 90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatExecutionDuration(tt.d); got != tt.want {
				t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatTermCount(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{123, "123"},
		{1234, "1,234"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{18446744073709551615, "18,446,744,073,709,551,615"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTermCount(tt.n); got != tt.want {
				t.Errorf("FormatTermCount(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}
