package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/logic"
	"github.com/aidanlsb/tripbook/internal/ui"
	"github.com/aidanlsb/tripbook/internal/watcher"
)

const shellPrompt = "tripbook> "

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	Long: `Start the interactive shell. Each line is one command, for example
"add n/Singapore Zoo p/9 c/62693411 a/80 Mandai Lake Rd". Type "help" to
see every command and "exit" to leave.

Lists shown after find, sort and list stay in effect, so indexes always
refer to what was displayed last. --json has no effect here.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	watchCtx, stopWatching := context.WithCancel(ctx)
	defer stopWatching()
	reloads := watchDataFile(watchCtx, s.logic.DataPath())

	in := cmd.InOrStdin()
	return repl(ctx, in, cmd.OutOrStdout(), s, reloads, ui.NewDisplayContext(), isInteractive(in))
}

// watchDataFile signals when another process changes the catalog file. It
// returns nil, a channel that never fires, when the file cannot be watched.
func watchDataFile(ctx context.Context, path string) <-chan struct{} {
	w, err := watcher.New(watcher.Config{Path: path, Logger: logger})
	if err != nil {
		logger.Debug("not watching catalog file", "error", err)
		return nil
	}
	go func() {
		if err := w.Start(ctx); err != nil && ctx.Err() == nil {
			logger.Debug("not watching catalog file", "error", err)
		}
	}()
	return w.Changes()
}

// repl reads commands from in until exit, end of input, or ctx is done.
// With prompt set it greets the user and prints a prompt before each line.
// A value on reloads makes it re-read the catalog file between commands.
func repl(ctx context.Context, in io.Reader, out io.Writer, s *session, reloads <-chan struct{}, display *ui.DisplayContext, prompt bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	input := readLines(ctx, in)

	if prompt {
		fmt.Fprintln(out, ui.Hint("Type help to see every command, exit to leave."))
		presentView(out, s, commands.ViewAttractions, display)
	}

	for {
		if prompt {
			fmt.Fprint(out, ui.AccentBold().Render(shellPrompt))
		}

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case <-reloads:
			changed, err := s.logic.Reload()
			if err != nil {
				fmt.Fprintln(out, ui.Warningf("Catalog file changed on disk but could not be read: %v", err))
			}
			if changed {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.Warning("Catalog file changed on disk; reloaded."))
				presentView(out, s, commands.ViewAttractions, display)
			}
			continue
		case l, ok := <-input.Lines:
			if !ok {
				return input.Err()
			}
			line = l
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := s.logic.Execute(ctx, line)
		if err != nil {
			fmt.Fprintln(out, ui.Error(err.Error()))
			if !logic.IsPersistence(err) {
				continue
			}
			result.Feedback = ""
		}
		if err := present(ctx, out, s, result, display); err != nil {
			fmt.Fprintln(out, ui.Error(err.Error()))
		}
		if result.Exit {
			return nil
		}
	}
}

// lineReader feeds lines read from an input to Lines. Lines is closed at end
// of input or once the context passed to readLines is done.
type lineReader struct {
	Lines chan string

	err  error
	done chan struct{}
}

func readLines(ctx context.Context, r io.Reader) *lineReader {
	lr := &lineReader{Lines: make(chan string), done: make(chan struct{})}
	go func() {
		defer close(lr.done)
		defer close(lr.Lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lr.Lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		lr.err = scanner.Err()
	}()
	return lr
}

// Err waits for the reader to stop and returns the read error, if any.
func (lr *lineReader) Err() error {
	<-lr.done
	return lr.err
}

func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
