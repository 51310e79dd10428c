// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"testing"
	"time"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		envSet       bool
		want         string
	}{
		{
			name:         "environment variable set",
			key:          "TEST_STRING",
			defaultValue: "default",
			envValue:     "from-env",
			envSet:       true,
			want:         "from-env",
		},
		{
			name:         "environment variable not set",
			key:          "TEST_STRING_UNSET",
			defaultValue: "default",
			want:         "default",
		},
		{
			name:         "environment variable empty string",
			key:          "TEST_STRING_EMPTY",
			defaultValue: "default",
			envValue:     "",
			envSet:       true,
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envSet {
				t.Setenv(tt.key, tt.envValue)
			}
			if got := ParseString(tt.key, tt.defaultValue); got != tt.want {
				t.Errorf("ParseString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	t.Setenv("TEST_INT_VALID", "42")
	t.Setenv("TEST_INT_INVALID", "forty-two")

	if got := ParseInt("TEST_INT_VALID", 1); got != 42 {
		t.Errorf("ParseInt(valid) = %d, want 42", got)
	}
	if got := ParseInt("TEST_INT_INVALID", 7); got != 7 {
		t.Errorf("ParseInt(invalid) = %d, want default 7", got)
	}
	if got := ParseInt("TEST_INT_UNSET", 9); got != 9 {
		t.Errorf("ParseInt(unset) = %d, want default 9", got)
	}
}

func TestParseDuration(t *testing.T) {
	t.Setenv("TEST_DUR_VALID", "250ms")
	t.Setenv("TEST_DUR_INVALID", "soon")

	if got := ParseDuration("TEST_DUR_VALID", time.Second); got != 250*time.Millisecond {
		t.Errorf("ParseDuration(valid) = %v", got)
	}
	if got := ParseDuration("TEST_DUR_INVALID", time.Second); got != time.Second {
		t.Errorf("ParseDuration(invalid) = %v, want default", got)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"no", true, false},
		{"0", true, false},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			if got := ParseBool("TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("ParseBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.25")
	if got := ParseFloat("TEST_FLOAT", 1); got != 0.25 {
		t.Errorf("ParseFloat() = %v, want 0.25", got)
	}
}
