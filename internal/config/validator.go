// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/decolab/internal/logging"
	"github.com/katalvlaran/decolab/tissue"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "model.gf_low")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidOutputFormats returns the list of valid output formats
func ValidOutputFormats() []string {
	return []string{"table", "json"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{logging.FormatText, logging.FormatJSON}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if _, err := tissue.ParseVariant(c.Model.Variant); err != nil {
		errs = append(errs, ValidationError{
			Field:   "model.variant",
			Value:   c.Model.Variant,
			Message: "must be one of A, B, C",
		})
	}
	if c.Model.StepSeconds <= 0 || c.Model.StepSeconds > 600 {
		errs = append(errs, ValidationError{
			Field:   "model.step_seconds",
			Value:   c.Model.StepSeconds,
			Message: "must be in (0, 600]",
		})
	}
	for field, gf := range map[string]float64{"model.gf_low": c.Model.GFLow, "model.gf_high": c.Model.GFHigh} {
		if gf < 0 || gf > 1 {
			errs = append(errs, ValidationError{Field: field, Value: gf, Message: "must be in [0, 1]"})
		}
	}
	if c.Model.StopIncrement <= 0 {
		errs = append(errs, ValidationError{
			Field:   "model.stop_increment",
			Value:   c.Model.StopIncrement,
			Message: "must be positive",
		})
	}
	if !slices.Contains(ValidOutputFormats(), strings.ToLower(c.Output.Format)) {
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: fmt.Sprintf("must be one of %v", ValidOutputFormats()),
		})
	}
	if !logging.IsValidLevel(c.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be one of debug, info, warn, error",
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of %v", ValidLogFormats()),
		})
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, ValidationError{
			Field:   "server.max_body_bytes",
			Value:   c.Server.MaxBodyBytes,
			Message: "must be positive",
		})
	}

	// map iteration above is unordered
	slices.SortStableFunc(errs, func(a, b ValidationError) int { return strings.Compare(a.Field, b.Field) })
	return errs
}

// Variant returns the parsed model variant, falling back to the
// conservative set when the configured name is unknown.
func (c *Config) Variant() tissue.Variant {
	v, err := tissue.ParseVariant(c.Model.Variant)
	if err != nil {
		return tissue.ConservativeVariant
	}
	return v
}
