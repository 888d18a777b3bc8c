package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tunables invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if got != Default() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	got, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if got != Default() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
window_width: 400
close_delay: 5s
move_interval: 16ms
max_windows: 12
sound: true
`)
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.WindowWidth != 400 {
		t.Errorf("WindowWidth = %d, want 400", got.WindowWidth)
	}
	if got.CloseDelay != 5*time.Second {
		t.Errorf("CloseDelay = %s, want 5s", got.CloseDelay)
	}
	if got.MoveInterval != 16*time.Millisecond {
		t.Errorf("MoveInterval = %s, want 16ms", got.MoveInterval)
	}
	if got.MaxWindows != 12 || !got.Sound {
		t.Errorf("MaxWindows/Sound = %d/%v", got.MaxWindows, got.Sound)
	}
	if got.WindowHeight != 100 {
		t.Errorf("untouched WindowHeight = %d, want default 100", got.WindowHeight)
	}
}

func TestLoadStrictUnknownKeyErrors(t *testing.T) {
	_, err := Load(writeConfig(t, "windw_width: 10\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "windw_width") {
		t.Errorf("error should name the key, got %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []string{
		"window_width: 0\n",
		"min_speed: 2\nmax_speed: 1\n",
		"progress_min_interval: 200ms\n",
		"min_maximum: 0\n",
		"move_interval: 0s\n",
		"max_windows: -1\n",
	}
	for _, body := range tests {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("expected validation error for %q", body)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("LOADFOREVER_CONFIG", "/etc/lf.yaml")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/etc/lf.yaml" {
		t.Errorf("got %q, want env override", got)
	}

	t.Setenv("LOADFOREVER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	got, err = DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/xdg", "loadforever", "config.yaml"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func parseMadness(args ...string) (*Madness, error) {
	var m Madness
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&m, "madness", "")
	return &m, fs.Parse(args)
}

func TestMadnessInterval(t *testing.T) {
	tun := Default()
	tests := []struct {
		args []string
		want time.Duration
	}{
		{nil, 2000 * time.Millisecond},
		{[]string{"-madness", "false"}, 2000 * time.Millisecond},
		{[]string{"-madness", "true"}, 500 * time.Millisecond},
		{[]string{"--madness", "TRUE"}, 500 * time.Millisecond},
		{[]string{"-madness=False"}, 2000 * time.Millisecond},
		{[]string{"-madness", "250"}, 250 * time.Millisecond},
		{[]string{"-madness", "0"}, time.Millisecond},
		{[]string{"-madness", "9223372036854"}, 9223372036854 * time.Millisecond},
	}
	for _, tt := range tests {
		m, err := parseMadness(tt.args...)
		if err != nil {
			t.Errorf("%v: unexpected error %v", tt.args, err)
			continue
		}
		if got := m.Interval(tun); got != tt.want {
			t.Errorf("%v: Interval = %s, want %s", tt.args, got, tt.want)
		}
	}
}

func TestMadnessRejectsGarbage(t *testing.T) {
	for _, v := range []string{"yes", "-5", "1.5", "", "9223372036855", "10000000000000"} {
		if _, err := parseMadness("-madness", v); err == nil {
			t.Errorf("expected error for %q", v)
		}
	}
}

func TestMadnessString(t *testing.T) {
	m, _ := parseMadness("-madness", "true")
	if m.String() != "true" {
		t.Errorf("String = %q", m.String())
	}
	m, _ = parseMadness("-madness", "42")
	if m.String() != "42" {
		t.Errorf("String = %q", m.String())
	}
	var zero Madness
	if zero.String() != "" {
		t.Errorf("unset String = %q", zero.String())
	}
}
