package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestCLI() *CLI {
	return New(io.Discard, log.ErrorLevel)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"resolve", "tree", "versions", "dependents", "artifacts", "browse", "serve", "cache", "completion"}
	have := map[string]bool{}
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	root := newTestCLI().RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})
	if err := root.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}
	if !strings.Contains(out.String(), "m2scope") {
		t.Error("help output missing app name")
	}
}

func TestOpenRepoFlagPrecedence(t *testing.T) {
	c := newTestCLI()
	c.config = &Config{Repository: "/nonexistent/from-config"}
	c.repoFlag = t.TempDir()

	r, err := c.openRepo()
	if err != nil {
		t.Fatalf("openRepo: %v", err)
	}
	if r.Root() != c.repoFlag {
		t.Errorf("root = %q, want flag value %q", r.Root(), c.repoFlag)
	}
}

func TestOpenRepoMissing(t *testing.T) {
	c := newTestCLI()
	c.config = &Config{}
	c.repoFlag = filepath.Join(t.TempDir(), "does-not-exist")

	if _, err := c.openRepo(); err == nil {
		t.Error("expected error for missing repository root")
	}
}

func TestResolveInvalidCoordinate(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"resolve", "not-a-coordinate"})

	if err := root.Execute(); err == nil {
		t.Error("expected error for malformed coordinate")
	}
}
