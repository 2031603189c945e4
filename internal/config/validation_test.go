package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := NewDefaultSettings("/home/u/.kickstart")
	if err := Validate(valid); err != nil {
		t.Fatalf("Validate(defaults) error = %v", err)
	}

	bad := *valid
	bad.PackageManager = "cargo"
	bad.LogFormat = "xml"
	bad.Editor = ""
	err := Validate(&bad)

	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() error = %T, want *ValidationErrors", err)
	}
	if len(verrs.Errors) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(verrs.Errors), err)
	}
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrInvalidValue) {
		t.Error("ValidationErrors should match ErrInvalidConfig and ErrInvalidValue")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		key, raw string
		want     any
		wantErr  error
	}{
		{KeyNoColor, "1", true, nil},
		{KeyRecordProjects, "false", false, nil},
		{KeyLogLevel, "debug", "debug", nil},
		{KeyTemplatesDir, " /opt/templates ", "/opt/templates", nil},
		{KeyLogFormat, "xml", nil, ErrInvalidValue},
		{"unknown", "x", nil, ErrUnknownKey},
	}
	for _, tt := range tests {
		got, err := parseValue(tt.key, tt.raw)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("parseValue(%q, %q) error = %v, want %v", tt.key, tt.raw, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseValue(%q, %q) = %v, want %v", tt.key, tt.raw, got, tt.want)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	e := &ValidationError{Field: "editor", Message: "must not be empty", Wrapped: ErrInvalidValue}
	if e.Error() != `validation error: field "editor": must not be empty` {
		t.Errorf("Error() = %q", e.Error())
	}
	if !errors.Is(e, ErrInvalidValue) {
		t.Error("Unwrap should expose the sentinel")
	}
}
