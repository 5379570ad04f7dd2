package cli

import (
	"errors"
	"io/fs"

	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/model"
	"github.com/aidanlsb/tripbook/internal/parser"
	"github.com/aidanlsb/tripbook/internal/storage"
	"github.com/aidanlsb/tripbook/internal/syntax"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Configuration errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// Input errors
	ErrParse           = "PARSE_ERROR"
	ErrUnknownCommand  = "UNKNOWN_COMMAND"
	ErrDuplicatePrefix = "DUPLICATE_PREFIX"
	ErrInvalidValue    = "INVALID_VALUE"

	// Catalog errors
	ErrDuplicateIdentity  = "DUPLICATE_IDENTITY"
	ErrReferenced         = "REFERENCED"
	ErrNotFound           = "NOT_FOUND"
	ErrInvariantViolation = "INVARIANT_VIOLATION"
	ErrCommand            = "COMMAND_ERROR"

	// File errors
	ErrPersistencePermission = "PERSISTENCE_PERMISSION_DENIED"
	ErrPersistence           = "PERSISTENCE_ERROR"
	ErrFileWriteError        = "FILE_WRITE_ERROR"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// errorCode maps an error from the executor to its stable code. Checks run
// from the most to the least specific wrapper.
func errorCode(err error) string {
	var (
		persistence *storage.PersistenceError
		duplicate   *syntax.DuplicatePrefixError
		unknown     *parser.UnknownCommandError
		parse       *parser.ParseError
		command     *commands.Error
		path        *fs.PathError
	)
	switch {
	case errors.As(err, &persistence):
		if persistence.PermissionDenied {
			return ErrPersistencePermission
		}
		return ErrPersistence
	case errors.As(err, &duplicate):
		return ErrDuplicatePrefix
	case errors.As(err, &unknown):
		return ErrUnknownCommand
	case errors.Is(err, model.ErrInvalidValue):
		return ErrInvalidValue
	case errors.As(err, &parse):
		return ErrParse
	case errors.Is(err, model.ErrDuplicate):
		return ErrDuplicateIdentity
	case errors.Is(err, model.ErrReferenced):
		return ErrReferenced
	case errors.Is(err, model.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, model.ErrInvariant):
		return ErrInvariantViolation
	case errors.As(err, &command):
		return ErrCommand
	case errors.As(err, &path):
		return ErrFileWriteError
	default:
		return ErrInternal
	}
}
