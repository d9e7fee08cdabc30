package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithLevel(t *testing.T) {
	t.Parallel()
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := NewWithLevel("test", tc.level).GetLevel(); got != tc.want {
			t.Errorf("NewWithLevel(%q) level = %s, want %s", tc.level, got, tc.want)
		}
	}
}

func TestNew_DefaultsToInfo(t *testing.T) {
	t.Parallel()
	if got := New("test").GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("New level = %s, want info", got)
	}
}
