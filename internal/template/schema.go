package template

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/project.schema.json
var schemaBytes []byte

const schemaURL = "project.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateJSON checks a JSON-encoded template document against the schema.
// Violations are reported as a single ErrMalformed listing every failing location.
func validateJSON(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validate document: %w", err)
	}
	return fmt.Errorf("%w: %s", ErrMalformed, strings.Join(collectIssues(verr), "; "))
}

// collectIssues flattens the validation tree into "location: message" lines,
// keeping only leaf errors.
func collectIssues(verr *jsonschema.ValidationError) []string {
	var issues []string
	seen := make(map[string]bool)
	var walk func(ve *jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		if len(ve.Causes) > 0 {
			for _, cause := range ve.Causes {
				walk(cause)
			}
			return
		}
		if ve.ErrorKind == nil {
			return
		}
		line := "/" + strings.Join(ve.InstanceLocation, "/") + ": " + ve.ErrorKind.LocalizedString(printer)
		if !seen[line] {
			seen[line] = true
			issues = append(issues, line)
		}
	}
	walk(verr)
	if len(issues) == 0 {
		issues = append(issues, verr.Error())
	}
	return issues
}

// toJSON re-encodes a YAML-decoded value so the schema sees JSON types.
func toJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return data, nil
}
