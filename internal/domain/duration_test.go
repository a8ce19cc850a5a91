package domain

import (
	"testing"
	"time"
)

func TestParseFlexibleDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "hours minutes seconds",
			input: "1h2m3s",
			want:  time.Hour + 2*time.Minute + 3*time.Second,
		},
		{
			name:  "minutes seconds",
			input: "1m30s",
			want:  90 * time.Second,
		},
		{
			name:  "seconds only",
			input: "90s",
			want:  90 * time.Second,
		},
		{
			name:  "zero",
			input: "0s",
			want:  0,
		},
		{
			name:  "days",
			input: "2d",
			want:  48 * time.Hour,
		},
		{
			name:  "milliseconds",
			input: "1500ms",
			want:  1500 * time.Millisecond,
		},
		{
			name:  "spaced pairs",
			input: "1d 4h",
			want:  28 * time.Hour,
		},
		{
			name:  "long unit names",
			input: "2 hours 15 minutes",
			want:  2*time.Hour + 15*time.Minute,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bare number",
			input:   "90",
			wantErr: true,
		},
		{
			name:    "unknown unit",
			input:   "3weeks",
			wantErr: true,
		},
		{
			name:    "unit without magnitude",
			input:   "h",
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			input:   "1h!",
			wantErr: true,
		},
		{
			name:    "magnitude overflows int64",
			input:   "99999999999999999999s",
			wantErr: true,
		},
		{
			name:    "unit multiplication overflows",
			input:   "9999999999999999d",
			wantErr: true,
		},
		{
			name:    "sum of pairs overflows",
			input:   "9000000000s 9000000000s",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlexibleDuration(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFlexibleDuration(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlexibleDuration(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFlexibleDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatCompactDuration(t *testing.T) {
	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{name: "zero", input: 0, want: "0s"},
		{name: "seconds only", input: 61 * time.Second, want: "1m1s"},
		{name: "exact hour keeps zero components", input: 3600 * time.Second, want: "1h0m0s"},
		{name: "hours minutes seconds", input: 7325 * time.Second, want: "2h2m5s"},
		{name: "minute and a half", input: 90 * time.Second, want: "1m30s"},
		{name: "fractional truncated", input: 90*time.Second + 700*time.Millisecond, want: "1m30s"},
		{name: "sub second truncated to zero", input: 999 * time.Millisecond, want: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCompactDuration(tt.input); got != tt.want {
				t.Errorf("FormatCompactDuration(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Decoding what encode produced must reproduce the duration truncated to
// whole seconds, for any non-negative value.
func TestDurationRoundTrip(t *testing.T) {
	durations := []time.Duration{
		0,
		time.Second,
		59 * time.Second,
		90 * time.Second,
		3600 * time.Second,
		7325 * time.Second,
		26*time.Hour + 3*time.Minute + 9*time.Second,
		90*time.Second + 123*time.Millisecond,
	}

	for _, d := range durations {
		encoded := FormatCompactDuration(d)
		decoded, err := ParseFlexibleDuration(encoded)
		if err != nil {
			t.Fatalf("ParseFlexibleDuration(%q) error = %v", encoded, err)
		}
		want := d.Truncate(time.Second)
		if decoded != want {
			t.Errorf("round trip of %v: encoded %q, decoded %v, want %v", d, encoded, decoded, want)
		}
	}
}

func TestDurationFromSeconds(t *testing.T) {
	tests := []struct {
		name string
		secs float64
		want time.Duration
	}{
		{name: "whole seconds", secs: 90, want: 90 * time.Second},
		{name: "fractional", secs: 1.5, want: 1500 * time.Millisecond},
		{name: "zero", secs: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationFromSeconds(tt.secs); got != tt.want {
				t.Errorf("DurationFromSeconds(%v) = %v, want %v", tt.secs, got, tt.want)
			}
		})
	}
}

// A numeric seconds count and its compact string form decode to the same
// duration.
func TestNumericAndStringFormsAgree(t *testing.T) {
	fromString, err := ParseFlexibleDuration("1m30s")
	if err != nil {
		t.Fatalf("ParseFlexibleDuration error = %v", err)
	}
	if fromNumber := DurationFromSeconds(90.0); fromNumber != fromString {
		t.Errorf("90.0 seconds = %v, \"1m30s\" = %v", fromNumber, fromString)
	}
}
