package domain

import (
	"errors"
	"fmt"

	gameerrors "github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/errors"
)

// toolError renders an engine failure for the tool caller. Domain errors
// are formatted through the i18n catalog so the caller sees the localized
// message with its metadata substituted rather than the internal text.
// The original error stays reachable through Unwrap for code checks.
func toolError(op string, err error) error {
	var appErr *gameerrors.Error
	if errors.As(err, &appErr) {
		return &handlerError{
			msg:   fmt.Sprintf("%s: %s", op, gameerrors.UserMessage(appErr, gameerrors.DefaultLocale)),
			cause: err,
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

type handlerError struct {
	msg   string
	cause error
}

func (e *handlerError) Error() string { return e.msg }

func (e *handlerError) Unwrap() error { return e.cause }
