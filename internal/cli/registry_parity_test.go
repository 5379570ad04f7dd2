package cli

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/aidanlsb/tripbook/internal/commands"
)

// Verbs take their arguments as prefixed tokens, never as flags, so a local
// flag on a verb would swallow part of a command line.
func TestVerbCommandsHaveNoLocalFlags(t *testing.T) {
	for _, name := range commands.AllCommandNames() {
		if name == "help" || name == "exit" {
			continue
		}
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("%s command missing from CLI tree", name)
		}
		cmd.LocalNonPersistentFlags().VisitAll(func(flag *pflag.Flag) {
			if flag.Name == "help" {
				return
			}
			t.Errorf("%s has local flag --%s", name, flag.Name)
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	want := []string{"config", "data", "json"}
	for _, name := range want {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing global flag --%s", name)
		}
	}

	var got int
	rootCmd.PersistentFlags().VisitAll(func(*pflag.Flag) { got++ })
	if got != len(want) {
		t.Errorf("root has %d persistent flags, want %d", got, len(want))
	}
}
