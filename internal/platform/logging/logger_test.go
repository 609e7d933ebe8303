package logging

import "testing"

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw     string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tc := range cases {
		got, err := ParseLevel(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: got=%v want=%v", tc.raw, got, tc.want)
		}
	}
}

func TestDefault_NeverNil(t *testing.T) {
	SetDefault(nil)
	if Default() == nil {
		t.Fatalf("default logger must not be nil")
	}
	Default().Info("noop logger swallows output")
}
