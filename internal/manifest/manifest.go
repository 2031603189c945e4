// Package manifest reads and patches a project's package.json. Only the
// fields it is asked to touch change; every other top-level field and the
// key order of the document pass through unchanged.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kickstart-dev/kickstart/internal/defs"
)

// Sentinel errors for manifest operations.
var (
	// ErrNotObject indicates the manifest (or one of its sections) is not a JSON object.
	ErrNotObject = errors.New("manifest: not a JSON object")
)

// Path returns the package.json location for a project root.
func Path(root string) string {
	return filepath.Join(root, defs.PackageJSON)
}

// Exists reports whether root contains a package.json.
func Exists(root string) bool {
	info, err := os.Stat(Path(root))
	return err == nil && !info.IsDir()
}

// MergeScripts shallow-merges scripts into the "scripts" section of the
// package.json under root. Existing keys absent from scripts are kept; keys
// present in both take the new value. Keys new to the manifest are appended
// in sorted order so the output is deterministic.
//
// When root has no package.json the call is a no-op and returns (false, nil).
func MergeScripts(root string, scripts map[string]string) (bool, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := parseObject(data)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}

	section := newObject()
	if raw, ok := doc.get("scripts"); ok && !isNull(raw) {
		section, err = parseObject(raw)
		if err != nil {
			return false, fmt.Errorf("parse %s scripts: %w", path, err)
		}
	}

	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw, err := json.Marshal(scripts[name])
		if err != nil {
			return false, err
		}
		section.set(name, raw)
	}

	raw, err := section.MarshalJSON()
	if err != nil {
		return false, err
	}
	doc.set("scripts", raw)

	if err := write(path, doc); err != nil {
		return false, err
	}
	return true, nil
}

// Scripts returns the "scripts" section of the package.json under root.
func Scripts(root string) (map[string]string, error) {
	doc, err := read(root)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	raw, ok := doc.get("scripts")
	if !ok || isNull(raw) {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode scripts: %w", err)
	}
	return out, nil
}

// Dependencies returns the names listed under "dependencies" in manifest
// order. A missing section yields an empty slice.
func Dependencies(root string) ([]string, error) {
	doc, err := read(root)
	if err != nil {
		return nil, err
	}
	raw, ok := doc.get("dependencies")
	if !ok || isNull(raw) {
		return []string{}, nil
	}
	deps, err := parseObject(raw)
	if err != nil {
		return nil, fmt.Errorf("parse dependencies: %w", err)
	}
	return append([]string{}, deps.keys...), nil
}

func read(root string) (*object, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := parseObject(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// write serializes doc with two-space indentation and a trailing newline,
// matching what npm itself writes.
func write(path string, doc *object) error {
	compact, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')

	info, err := os.Stat(path)
	perm := defs.FilePerm
	if err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, out.Bytes(), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
