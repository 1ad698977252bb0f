package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framechart/pkg/observability"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()

	for _, name := range []string{"render", "layout", "show", "new", "serve", "cache", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("--verbose flag missing")
	}
}

func TestVerboseEnablesDebugAndHooks(t *testing.T) {
	defer observability.Reset()

	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "path", "--verbose"})
	root.SetOut(&bytes.Buffer{})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("log level = %v, want debug", c.Logger.GetLevel())
	}
	if _, ok := observability.Pipeline().(*observability.LogHooks); !ok {
		t.Error("verbose mode should register log hooks")
	}
}
