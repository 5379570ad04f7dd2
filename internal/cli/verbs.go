package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/logic"
	"github.com/aidanlsb/tripbook/internal/parser"
	"github.com/aidanlsb/tripbook/internal/ui"
)

// runLine executes one verb given on the command line against a fresh
// session. Indexes refer to the unfiltered lists, since filters do not
// outlive the process.
func runLine(cmd *cobra.Command, line string) error {
	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}
	defer s.Close()

	result, err := s.logic.Execute(ctx, line)
	if err != nil {
		if logic.IsPersistence(err) && !isJSONOutput() {
			result.Feedback = ""
			_ = present(ctx, cmd.OutOrStdout(), s, result, ui.NewDisplayContext())
		}
		return reportCommandError(err)
	}
	return showResult(ctx, cmd.OutOrStdout(), s, result)
}

func showResult(ctx context.Context, w io.Writer, s *session, r commands.Result) error {
	if !isJSONOutput() {
		return present(ctx, w, s, r, ui.NewDisplayContext())
	}
	data, count, err := buildResultData(ctx, s, r)
	if err != nil {
		return handleError(ErrInternal, err, "")
	}
	outputSuccess(data, &Meta{Count: count})
	return nil
}

// reportCommandError returns err with its stable code attached in JSON
// mode.
func reportCommandError(err error) error {
	code := errorCode(err)

	var details map[string]string
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) && parseErr.Usage != "" {
		details = map[string]string{"verb": parseErr.Verb, "usage": parseErr.Usage}
	}

	suggestion := ""
	switch code {
	case ErrUnknownCommand:
		suggestion = "Run 'tripbook --help' to see every command"
	case ErrPersistencePermission:
		suggestion = "Check the permissions of the catalog file and its folder, or pass --data"
	}

	if details != nil {
		return handleErrorWithDetails(code, err, suggestion, details)
	}
	return handleError(code, err, suggestion)
}
