package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-emoji-popup/internal/app"
	"github.com/atomicstack/tmux-emoji-popup/internal/config"
	"github.com/atomicstack/tmux-emoji-popup/internal/inject"
	"github.com/atomicstack/tmux-emoji-popup/internal/logging"
	"github.com/atomicstack/tmux-emoji-popup/internal/session"
	"github.com/atomicstack/tmux-emoji-popup/internal/tmux"
)

const testCatalog = `
version: 1
groups:
  - group: smileys-emotion
    emojis:
      - {glyph: "😀", name: grinning face, shortcodes: [grinning]}
      - {glyph: "😂", name: face with tears of joy, keywords: [laugh]}
  - group: people-body
    emojis:
      - {glyph: "👍", name: thumbs up, shortcodes: ["+1"], tones: true}
`

type env struct {
	dir     string
	catalog string
	state   string
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	e := env{
		dir:     dir,
		catalog: filepath.Join(dir, "catalog.yaml"),
		state:   filepath.Join(dir, "state.sqlite"),
	}
	if err := os.WriteFile(e.catalog, []byte(testCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	t.Cleanup(func() { logging.Configure("") })
	return e
}

func (e env) environ() []string {
	return []string{
		"TMUX_EMOJI_POPUP_CATALOG=" + e.catalog,
		"TMUX_EMOJI_POPUP_STATE=" + e.state,
		"TMUX_EMOJI_POPUP_LOG_FILE=" + filepath.Join(e.dir, "test.log"),
	}
}

func execute(t *testing.T, opts Options, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRunsPopupWithConfig(t *testing.T) {
	e := newEnv(t)
	var got app.Config
	var started bool
	opts := Options{
		Environ: e.environ(),
		Started: func(config.Config) { started = true },
		Run: func(cfg app.Config) error {
			got = cfg
			return nil
		},
	}
	if _, err := execute(t, opts, "--per-row", "4", "--inject", "clipboard"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !started {
		t.Fatalf("expected Started to be called")
	}
	if got.PerRow != 4 {
		t.Fatalf("expected per-row 4, got %d", got.PerRow)
	}
	if got.InjectMode != inject.ModeClipboard {
		t.Fatalf("expected clipboard mode, got %q", got.InjectMode)
	}
	if got.CatalogPath != e.catalog {
		t.Fatalf("expected catalog %q, got %q", e.catalog, got.CatalogPath)
	}
	if got.InjectDelay != config.DefaultInjectDelay {
		t.Fatalf("expected default delay, got %s", got.InjectDelay)
	}
}

func TestRootReportsRunErrors(t *testing.T) {
	e := newEnv(t)
	boom := errors.New("boom")
	opts := Options{Environ: e.environ(), Run: func(app.Config) error { return boom }}
	if _, err := execute(t, opts); !errors.Is(err, boom) {
		t.Fatalf("expected run error, got %v", err)
	}
}

func TestInvalidConfigIsFlagged(t *testing.T) {
	e := newEnv(t)
	opts := Options{Environ: e.environ(), Run: func(app.Config) error {
		t.Fatalf("popup should not run")
		return nil
	}}
	tests := [][]string{
		{"--per-row", "99"},
		{"--inject", "carrier-pigeon"},
		{"catalog", "list", "--width", "-1"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := execute(t, opts, args...)
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestCatalogList(t *testing.T) {
	e := newEnv(t)
	opts := Options{Environ: e.environ()}
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "all",
			args: []string{"catalog", "list"},
			want: []string{"GLYPH", "grinning face", "people-body", ":+1:", "3 entries"},
		},
		{
			name:    "group",
			args:    []string{"catalog", "list", "--group", "people-body"},
			want:    []string{"thumbs up", "1 entries"},
			notWant: []string{"grinning face"},
		},
		{
			name:    "search",
			args:    []string{"catalog", "list", "--search", "laugh"},
			want:    []string{"face with tears of joy"},
			notWant: []string{"thumbs up"},
		},
		{
			name: "groups",
			args: []string{"catalog", "list", "--groups"},
			want: []string{"smileys-emotion", "Smileys & Emotion", "People & Body"},
		},
		{
			name: "no match",
			args: []string{"catalog", "list", "--search", "zzzzqqq"},
			want: []string{"No entries found"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, opts, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Fatalf("expected %q in output:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Fatalf("did not expect %q in output:\n%s", w, out)
				}
			}
		})
	}
}

func TestCatalogListUnknownGroup(t *testing.T) {
	e := newEnv(t)
	if _, err := execute(t, Options{Environ: e.environ()}, "catalog", "list", "--group", "nope"); err == nil {
		t.Fatalf("expected error for unknown group")
	}
}

func TestCatalogShow(t *testing.T) {
	e := newEnv(t)
	opts := Options{Environ: e.environ()}
	out, err := execute(t, opts, "catalog", "show", ":+1:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, w := range []string{"thumbs up", "People & Body (people-body)", "tones:", "👍🏿", "dark skin tone"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output:\n%s", w, out)
		}
	}
	if _, err := execute(t, opts, "catalog", "show", "unicorn"); err == nil {
		t.Fatalf("expected error for unknown emoji")
	}
	if _, err := execute(t, opts, "catalog", "show"); err == nil {
		t.Fatalf("expected error for missing argument")
	}
}

func TestRecent(t *testing.T) {
	e := newEnv(t)
	opts := Options{Environ: e.environ()}
	out, err := execute(t, opts, "recent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No picks recorded yet in "+e.state) {
		t.Fatalf("expected empty history message naming %s, got %q", e.state, out)
	}

	ctx := context.Background()
	store, err := session.Open(ctx, e.state)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	for _, p := range []struct{ glyph, name string }{{"😀", "grinning face"}, {"👍🏽", "thumbs up"}} {
		if err := store.RecordPick(ctx, p.glyph, p.name); err != nil {
			t.Fatalf("record pick: %v", err)
		}
	}
	store.Close()

	out, err = execute(t, opts, "recent", "--limit", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "👍🏽") {
		t.Fatalf("expected newest pick first, got %q", lines[0])
	}

	out, err = execute(t, opts, "recent", "--state", session.Disabled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "disabled") {
		t.Fatalf("expected disabled message, got %q", out)
	}
}

func stubBind(t *testing.T) *[]tmux.BindOptions {
	t.Helper()
	origExe, origBind := executable, bindKey
	t.Cleanup(func() { executable, bindKey = origExe, origBind })
	executable = func() (string, error) { return "/usr/local/bin/tmux-emoji-popup", nil }
	var calls []tmux.BindOptions
	bindKey = func(socket string, opts tmux.BindOptions) error {
		if socket != "/tmp/test.sock" {
			t.Fatalf("expected socket /tmp/test.sock, got %q", socket)
		}
		calls = append(calls, opts)
		return nil
	}
	return &calls
}

func TestBindDryRun(t *testing.T) {
	e := newEnv(t)
	stubBind(t)
	out, err := execute(t, Options{Environ: e.environ()}, "bind", "--dry-run", "--inject", "clipboard", "--key", "C-e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "tmux bind-key -T root C-e display-popup -E -w '60%' -h '50%' -T emoji '/usr/local/bin/tmux-emoji-popup --inject=clipboard'\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestBindInstallsKey(t *testing.T) {
	e := newEnv(t)
	calls := stubBind(t)
	out, err := execute(t, Options{Environ: e.environ()}, "bind", "--socket", "/tmp/test.sock", "--table", "prefix")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected one bind call, got %d", len(*calls))
	}
	got := (*calls)[0]
	if got.Key != "M-e" || got.Table != "prefix" {
		t.Fatalf("unexpected bind options %#v", got)
	}
	if got.Command != "/usr/local/bin/tmux-emoji-popup" {
		t.Fatalf("expected bare command, got %q", got.Command)
	}
	if !strings.Contains(out, "Bound M-e in table prefix") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, Options{Environ: []string{}}, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "tmux-emoji-popup version dev\n") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestShellQuote(t *testing.T) {
	tests := map[string]string{
		"plain":      "plain",
		"":           "''",
		"two words":  "'two words'",
		"it's":       `'it'\''s'`,
		"#{pane_id}": "'#{pane_id}'",
	}
	for in, want := range tests {
		if got := shellQuote(in); got != want {
			t.Fatalf("shellQuote(%q): expected %q, got %q", in, want, got)
		}
	}
}
