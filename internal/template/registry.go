package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/kickstart-dev/kickstart/internal/defs"
)

// maxSuggestions caps the "did you mean" list for unknown types.
const maxSuggestions = 3

// Registry resolves project types to template documents and serves the
// premade configuration files stored alongside them.
type Registry interface {
	// Load reads and validates the template document for typ.
	// Returns ErrNotFound, ErrMalformed or ErrIncompatible.
	Load(typ string) (*Document, error)

	// Types lists every project type with a template document, sorted.
	Types() []string

	// Suggest returns registered types that fuzzily match typ.
	Suggest(typ string) []string

	// HasFile reports whether a loose file exists in the registry.
	HasFile(name string) bool

	// CopyFile copies a loose registry file to dst. It never overwrites:
	// an existing dst yields an error satisfying errors.Is(err, fs.ErrExist).
	CopyFile(name, dst string) error
}

// fsRegistry is the Registry implementation backed by an fs.FS.
type fsRegistry struct {
	fsys        fs.FS
	toolVersion string
	logger      *slog.Logger
}

// NewRegistry creates a Registry over fsys. toolVersion is compared against
// each document's minVersion.
func NewRegistry(fsys fs.FS, toolVersion string, logger *slog.Logger) Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &fsRegistry{fsys: fsys, toolVersion: toolVersion, logger: logger}
}

// Open returns a Registry over dir when it is an existing directory and
// over the built-in templates otherwise. The second return value names the
// source that was selected.
func Open(dir, toolVersion string, logger *slog.Logger) (Registry, string) {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return NewRegistry(os.DirFS(dir), toolVersion, logger), dir
		}
	}
	return NewRegistry(Builtin(), toolVersion, logger), "builtin"
}

// Load reads the document for typ, trying the JSON form before the YAML form.
func (r *fsRegistry) Load(typ string) (*Document, error) {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if !validTypeName(typ) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, typ)
	}

	for _, suffix := range []string{defs.ProjectDocJSON, defs.ProjectDocYAML} {
		name := typ + suffix
		data, err := fs.ReadFile(r.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		r.logger.Debug("loading template", "type", typ, "file", name)

		var doc *Document
		if suffix == defs.ProjectDocJSON {
			doc, err = decodeJSON(data)
		} else {
			doc, err = decodeYAML(data)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		if err := checkCompatibility(doc.MinVersion, r.toolVersion); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return doc, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, typ)
}

// Types lists registered project types.
func (r *fsRegistry) Types() []string {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		r.logger.Warn("cannot list templates", "error", err)
		return nil
	}

	var types []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		for _, suffix := range []string{defs.ProjectDocJSON, defs.ProjectDocYAML} {
			if typ, ok := strings.CutSuffix(name, suffix); ok && !slices.Contains(types, typ) {
				types = append(types, typ)
			}
		}
	}
	slices.Sort(types)
	return types
}

// Suggest ranks registered types by fuzzy similarity to typ.
func (r *fsRegistry) Suggest(typ string) []string {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ == "" {
		return nil
	}

	matches := fuzzy.Find(typ, r.Types())
	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// HasFile reports whether name is a regular file in the registry.
func (r *fsRegistry) HasFile(name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(r.fsys, name)
	return err == nil && !info.IsDir()
}

// CopyFile writes the registry file name to dst, failing if dst exists.
func (r *fsRegistry) CopyFile(name, dst string) error {
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return f.Close()
}

// validTypeName rejects names that could escape the registry root.
func validTypeName(typ string) bool {
	if typ == "" || strings.ContainsAny(typ, `/\`) || typ == "." || typ == ".." {
		return false
	}
	return fs.ValidPath(path.Clean(typ))
}

func decodeJSON(data []byte) (*Document, error) {
	if err := validateJSON(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &doc, nil
}

func decodeYAML(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	asJSON, err := toJSON(raw)
	if err != nil {
		return nil, err
	}
	if err := validateJSON(asJSON); err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &doc, nil
}
