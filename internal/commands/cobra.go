package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// Handler runs one command line, e.g. "add n/Zoo p/5 ...".
type Handler func(cmd *cobra.Command, line string) error

// GenerateCobraCommand creates a Cobra command from registry metadata.
// Positional arguments are joined back into a single command line, so
// `tripbook add n/"Singapore Zoo" p/8` runs the same line the shell would.
func GenerateCobraCommand(name string, handler Handler) *cobra.Command {
	meta, ok := Registry[name]
	if !ok {
		return nil
	}

	// Build Long description
	longDesc := meta.Description
	if meta.LongDesc != "" {
		longDesc = meta.LongDesc
	}
	if len(meta.Examples) > 0 {
		longDesc += "\n\nExamples:\n"
		for _, ex := range meta.Examples {
			longDesc += "  tripbook " + ex + "\n"
		}
	}

	cmd := &cobra.Command{
		Use:   meta.Synopsis(),
		Short: meta.Description,
		Long:  longDesc,
		Args:  cobra.ArbitraryArgs,
	}
	if len(meta.Args) == 0 && len(meta.Prefixes) == 0 {
		cmd.Args = cobra.NoArgs
	}

	cmd.ValidArgsFunction = generateCompletionFunc(meta)

	if handler != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return handler(cmd, JoinLine(name, args))
		}
	}

	return cmd
}

// JoinLine rebuilds a command line from a verb and its shell arguments.
func JoinLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// generateCompletionFunc completes static preamble values first, then any
// prefix not given yet. Repeatable prefixes are always offered.
func generateCompletionFunc(meta Meta) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, completedArgs []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var matches []string

		if len(completedArgs) < len(meta.Args) {
			for _, c := range meta.Args[len(completedArgs)].Completions {
				if strings.HasPrefix(c, toComplete) {
					matches = append(matches, c)
				}
			}
			if len(matches) > 0 {
				return matches, cobra.ShellCompDirectiveNoFileComp
			}
		}

		for _, p := range meta.Prefixes {
			if !p.Repeatable && prefixUsed(completedArgs, string(p.Prefix)) {
				continue
			}
			if strings.HasPrefix(string(p.Prefix), toComplete) {
				matches = append(matches, string(p.Prefix))
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}

func prefixUsed(args []string, prefix string) bool {
	for _, a := range args {
		if strings.HasPrefix(a, prefix) {
			return true
		}
	}
	return false
}
