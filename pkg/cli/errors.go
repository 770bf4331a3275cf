package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"ecutools/arcfg/pkg/ecuc/errors"
)

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{Command: command, Err: err}
}

// ErrorBody is the stable error shape emitted on failure.
type ErrorBody struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind,omitempty"`
	Error   string `json:"error"`
	Path    string `json:"path,omitempty"`
}

// BodyFor converts any error into the external error shape, surfacing the
// structured kind and path when the error carries them.
func BodyFor(err error) ErrorBody {
	body := ErrorBody{Error: err.Error()}
	var structured *errors.Error
	if stderrors.As(err, &structured) {
		body.Kind = string(structured.Kind)
		body.Path = structured.Path
	}
	return body
}

// RenderError writes the error body to w in the given format.
func RenderError(w io.Writer, err error, format OutputFormat) error {
	return NewFormatter(format).FormatTo(w, BodyFor(err))
}
