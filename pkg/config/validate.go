package config

import (
	"fmt"
	"strings"
)

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every invalid field found in one pass.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for invalid values. It collects every
// problem rather than stopping at the first.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.Parser.MaxFileSizeBytes < 0 {
		errs = append(errs, &ValidationError{
			Field:   "parser.max_file_size_bytes",
			Message: "must not be negative",
		})
	}
	if !oneOf(cfg.Model.UnmatchedPolicy, "drop", "attach") {
		errs = append(errs, &ValidationError{
			Field:   "model.unmatched_policy",
			Message: fmt.Sprintf("must be %q or %q, got %q", "drop", "attach", cfg.Model.UnmatchedPolicy),
		})
	}
	if !oneOf(cfg.Projection.IDMode, "path", "digest") {
		errs = append(errs, &ValidationError{
			Field:   "projection.id_mode",
			Message: fmt.Sprintf("must be %q or %q, got %q", "path", "digest", cfg.Projection.IDMode),
		})
	}
	if !oneOf(cfg.Output.Format, "json", "text") {
		errs = append(errs, &ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("must be %q or %q, got %q", "json", "text", cfg.Output.Format),
		})
	}
	if !oneOf(cfg.Logging.Level, "debug", "info", "warn", "error") {
		errs = append(errs, &ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q", cfg.Logging.Level),
		})
	}
	if !oneOf(cfg.Logging.Format, "json", "text", "console") {
		errs = append(errs, &ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be %q, %q or %q, got %q", "json", "text", "console", cfg.Logging.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func oneOf(val string, allowed ...string) bool {
	for _, a := range allowed {
		if val == a {
			return true
		}
	}
	return false
}
