package main

// Notes:
// - runMain: we test dispatch, exit codes and what build prints. Page
//   content is covered by the library tests; here we only check files exist.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-novelsite/internal/assets"
)

// setupTestDir creates a temp directory with the given files.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Environment{
		Now:         func() time.Time { return start },
		Stdout:      &stdout,
		Stderr:      &stderr,
		StyleLoader: assets.NewEmbeddedLoader(),
	}, &stdout, &stderr
}

var novelFiles = map[string]string{
	"01-风.md":  "# 风\n\n风很大。",
	"02-雪.md":  "# 雪\n\n雪很大。",
	"notes.md": "备忘",
}

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage",
			args:         []string{"novelsite"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: novelsite"},
		},
		{
			name:         "version",
			args:         []string{"novelsite", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"novelsite dev"},
		},
		{
			name:         "help",
			args:         []string{"novelsite", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: novelsite", "Commands:"},
		},
		{
			name:         "help build",
			args:         []string{"novelsite", "help", "build"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: novelsite build", "--links"},
		},
		{
			name:         "help config",
			args:         []string{"novelsite", "help", "config"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: novelsite config"},
		},
		{
			name:         "help unknown",
			args:         []string{"novelsite", "help", "deploy"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: deploy"},
		},
		{
			name:         "unknown command",
			args:         []string{"novelsite", "deploy"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: deploy"},
		},
		{
			name:         "build without input",
			args:         []string{"novelsite", "build", "-o", "docs"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"no input directory specified", "hint:"},
		},
		{
			name:         "build missing input dir",
			args:         []string{"novelsite", "build", "/nonexistent/chapters", "-o", "docs"},
			wantCode:     ExitIO,
			wantInStderr: []string{"failed to read chapter directory"},
		},
		{
			name:         "bad flag",
			args:         []string{"novelsite", "build", "--pdf"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid arguments"},
		},
		{
			name:         "build help",
			args:         []string{"novelsite", "build", "--help"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: novelsite build"},
		},
		{
			name:         "missing config name",
			args:         []string{"novelsite", "config", "-c", "no-such-novelsite-config"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found", "hint: use --config"},
		},
		{
			name:         "config defaults",
			args:         []string{"novelsite", "config"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"site:", "navigation:", "links: ordinal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Build - End-to-end generation
// ---------------------------------------------------------------------------

func TestRunMain_Build(t *testing.T) {
	t.Parallel()

	in := setupTestDir(t, novelFiles)
	out := t.TempDir()
	env, stdout, stderr := newTestEnv()

	code := runMain([]string{"novelsite", "build", in, "-o", out}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}

	want := "Generated: chapter-01.html\nGenerated: chapter-02.html\nDone!\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
	for _, name := range []string{"chapter-01.html", "chapter-02.html"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestRunMain_BareDirectory(t *testing.T) {
	t.Parallel()

	in := setupTestDir(t, novelFiles)
	out := t.TempDir()
	env, stdout, _ := newTestEnv()

	code := runMain([]string{"novelsite", in, "-o", out, "-q", "--index", "--style"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet run printed %q", stdout.String())
	}
	for _, name := range []string{"chapter-01.html", "chapter-02.html", "index.html", "style.css"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestRunMain_Verbose(t *testing.T) {
	t.Parallel()

	in := setupTestDir(t, novelFiles)
	out := t.TempDir()
	env, _, stderr := newTestEnv()

	code := runMain([]string{"novelsite", "build", in, "-o", out, "-v"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d", code)
	}
	for _, want := range []string{"Skipped: notes.md", "01-风.md (1/2)", "2 chapter(s), 1 skipped"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr should contain %q, got %q", want, stderr.String())
		}
	}
}

func TestRunMain_MissingOutputDir(t *testing.T) {
	t.Parallel()

	in := setupTestDir(t, novelFiles)
	out := filepath.Join(t.TempDir(), "docs")
	env, _, stderr := newTestEnv()

	code := runMain([]string{"novelsite", "build", in, "-o", out}, env)
	if code != ExitIO {
		t.Fatalf("exit = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "mkdir -p "+out) {
		t.Errorf("stderr should suggest creating the output dir, got %q", stderr.String())
	}
}

func TestRunMain_ConfigFile(t *testing.T) {
	t.Parallel()

	in := setupTestDir(t, novelFiles)
	out := t.TempDir()
	cfgDir := t.TempDir()
	cfgPath := filepath.Join(cfgDir, "novel.yaml")
	content := "input:\n  dir: " + in + "\noutput:\n  dir: " + out + "\nsite:\n  name: Night Train\n  copyrightYear: 2031\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	env, _, stderr := newTestEnv()

	code := runMain([]string{"novelsite", "build", "-c", cfgPath, "--year", "2032"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}

	page, err := os.ReadFile(filepath.Join(out, "chapter-02.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "<title>第02章：雪 | Night Train</title>") {
		t.Error("page title should use the configured site name")
	}
	if !strings.Contains(string(page), "© 2032 Night Train") {
		t.Error("--year should override the config year")
	}
}
