package parser

import (
	"errors"
	"fmt"

	"github.com/aidanlsb/tripbook/internal/commands"
)

const (
	MessageInvalidCommandFormat = "Invalid command format!"
	MessageInvalidIndex         = "Index is not a non-zero unsigned integer."
	MessageUnknownCommand       = "Unknown command"
	MessageNotEdited            = "At least one field to edit must be provided."
	MessageInvalidLocationEdit  = "Action should be either ADD or REMOVE"
)

// ErrInvalidIndex marks parse errors caused by a malformed index token.
var ErrInvalidIndex = errors.New("invalid index")

// ParseError reports malformed arguments for a known verb.
type ParseError struct {
	Verb    string
	Message string
	Usage   string // usage hint for the verb, may be empty
	Err     error  // underlying cause, e.g. a *model.ValidationError
}

func (e *ParseError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownCommandError reports a verb that is not registered.
type UnknownCommandError struct {
	Verb string
}

func (e *UnknownCommandError) Error() string {
	if e.Verb == "" {
		return MessageUnknownCommand
	}
	return fmt.Sprintf("%s: %s", MessageUnknownCommand, e.Verb)
}

func formatError(verb string) *ParseError {
	return &ParseError{Verb: verb, Message: MessageInvalidCommandFormat, Usage: commands.Usage(verb)}
}

// fieldError wraps a value validation failure; the message is the
// constraint text of the failing value type.
func fieldError(verb string, err error) *ParseError {
	return &ParseError{Verb: verb, Message: err.Error(), Err: err}
}

func indexError(verb string) *ParseError {
	return &ParseError{Verb: verb, Message: MessageInvalidIndex, Err: ErrInvalidIndex}
}

func duplicateError(verb string, err error) *ParseError {
	return &ParseError{Verb: verb, Message: err.Error(), Err: err}
}
