package lemmy

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed data/*.json
var bundleFS embed.FS

// ErrResourceNotFound reports that a language code has no bundled data.
// Errors returned for unknown codes match it under errors.Is.
var ErrResourceNotFound = errors.New("resource bundle not found")

// ResourceNotFoundError is returned by Load and LoadFrom when the
// requested language code has no bundle. It is the only failure mode a
// caller needs to distinguish: per-token lemmatization never fails.
type ResourceNotFoundError struct {
	// Language is the code that was requested.
	Language string
	// Available lists the codes that do have bundles, when known.
	Available []string
}

func (e *ResourceNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no resource bundle for language %q", e.Language)
	}
	return fmt.Sprintf("no resource bundle for language %q (available: %s)",
		e.Language, strings.Join(e.Available, ", "))
}

func (e *ResourceNotFoundError) Unwrap() error { return ErrResourceNotFound }

// Load returns the embedded resource bundle for the given language code.
// Unknown codes fail with a *ResourceNotFoundError.
func Load(lang string) (*Bundle, error) {
	data, err := bundleFS.ReadFile("data/" + lang + ".json")
	if err != nil {
		return nil, &ResourceNotFoundError{Language: lang, Available: LanguageCodes()}
	}
	b, err := ParseBundle(data)
	if err != nil {
		return nil, fmt.Errorf("load bundle %s: %w", lang, err)
	}
	return b, nil
}

// LoadFrom reads <dir>/<lang>.json, for bundles trained outside this
// package. A missing file fails with a *ResourceNotFoundError; a present
// but malformed file fails with a parse error.
func LoadFrom(dir, lang string) (*Bundle, error) {
	data, err := os.ReadFile(filepath.Join(dir, lang+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ResourceNotFoundError{Language: lang}
		}
		return nil, fmt.Errorf("load bundle %s: %w", lang, err)
	}
	b, err := ParseBundle(data)
	if err != nil {
		return nil, fmt.Errorf("load bundle %s: %w", lang, err)
	}
	return b, nil
}

// LanguageCodes returns the sorted language codes with embedded bundles.
func LanguageCodes() []string {
	entries, err := fs.ReadDir(bundleFS, "data")
	if err != nil {
		return nil
	}
	var codes []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".json") {
			codes = append(codes, strings.TrimSuffix(name, ".json"))
		}
	}
	sort.Strings(codes)
	return codes
}

// Languages returns a map of embedded language codes to language names.
func Languages() map[string]string {
	out := make(map[string]string)
	for _, code := range LanguageCodes() {
		b, err := Load(code)
		if err != nil {
			continue
		}
		name := b.Name
		if name == "" {
			name = code
		}
		out[code] = name
	}
	return out
}
