package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Validate checks the settings for correctness and returns every problem
// found as *ValidationErrors.
func Validate(s *Settings) error {
	var errs []ValidationError

	errs = append(errs, validateEnum(KeyPackageManager, s.PackageManager, ValidPackageManagers)...)
	errs = append(errs, validateEnum(KeyLogLevel, s.LogLevel, ValidLogLevels)...)
	errs = append(errs, validateEnum(KeyLogFormat, s.LogFormat, ValidLogFormats)...)

	if strings.TrimSpace(s.Editor) == "" {
		errs = append(errs, ValidationError{
			Field:   KeyEditor,
			Message: "must not be empty; set it to the command that opens a directory (example: code)",
			Wrapped: ErrInvalidValue,
		})
	}
	if strings.TrimSpace(s.ProjectsFile) == "" {
		errs = append(errs, ValidationError{
			Field:   KeyProjectsFile,
			Message: "must not be empty",
			Wrapped: ErrInvalidValue,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateEnum(field, value string, valid []string) []ValidationError {
	if slices.Contains(valid, value) {
		return nil
	}
	return []ValidationError{{
		Field:   field,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(valid, ", ")),
		Value:   value,
		Wrapped: ErrInvalidValue,
	}}
}

// parseValue converts a command-line value into the type stored for key.
func parseValue(key, raw string) (any, error) {
	if !slices.Contains(Keys(), key) {
		return nil, fmt.Errorf("%w: %q (valid keys: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	raw = strings.TrimSpace(raw)

	if boolKeys[key] {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects true or false, got %q", ErrInvalidValue, key, raw)
		}
		return b, nil
	}

	var valid []string
	switch key {
	case KeyPackageManager:
		valid = ValidPackageManagers
	case KeyLogLevel:
		valid = ValidLogLevels
	case KeyLogFormat:
		valid = ValidLogFormats
	}
	if valid != nil && !slices.Contains(valid, raw) {
		return nil, fmt.Errorf("%w: %s must be one of: %s", ErrInvalidValue, key, strings.Join(valid, ", "))
	}
	if raw == "" && (key == KeyEditor || key == KeyProjectsFile) {
		return nil, fmt.Errorf("%w: %s must not be empty", ErrInvalidValue, key)
	}
	return raw, nil
}
