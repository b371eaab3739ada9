package lemmy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	for _, lang := range []string{"da", "sv", "en"} {
		b, err := Load(lang)
		if err != nil {
			t.Fatalf("Load(%q): %v", lang, err)
		}
		if b.Language != lang {
			t.Errorf("Load(%q).Language = %q", lang, b.Language)
		}
		if b.ExceptionCount() == 0 || b.RuleCount() == 0 {
			t.Errorf("Load(%q): bundle is empty (%d exceptions, %d rules)",
				lang, b.ExceptionCount(), b.RuleCount())
		}
	}
}

func TestLoadUnknownLanguage(t *testing.T) {
	_, err := Load("xx")
	if err == nil {
		t.Fatal("Load(xx) succeeded, want ResourceNotFoundError")
	}
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Load(xx) error does not match ErrResourceNotFound: %v", err)
	}
	var nf *ResourceNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Load(xx) error is %T, want *ResourceNotFoundError", err)
	}
	if nf.Language != "xx" {
		t.Errorf("Language = %q, want %q", nf.Language, "xx")
	}
	if len(nf.Available) == 0 {
		t.Error("Available is empty, want the embedded codes")
	}
}

func TestLoadFromRoundTrip(t *testing.T) {
	dir := t.TempDir()
	doc := `{
		"language": "nb",
		"name": "Norwegian Bokmål",
		"exceptions": {"NOUN": {"bøker": ["bok"]}},
		"rules": {"VERB": {"et": ["e"]}}
	}`
	if err := os.WriteFile(filepath.Join(dir, "nb.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadFrom(dir, "nb")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	eng := New(b)
	if got := eng.LemmatizeToken(POSNoun, "bøker"); got != "bok" {
		t.Errorf("LemmatizeToken(NOUN, bøker) = %q, want %q", got, "bok")
	}
	if got := eng.LemmatizeToken(POSVerb, "kastet"); got != "kaste" {
		t.Errorf("LemmatizeToken(VERB, kastet) = %q, want %q", got, "kaste")
	}
}

func TestLoadFromMissing(t *testing.T) {
	_, err := LoadFrom(t.TempDir(), "zz")
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("LoadFrom on missing file: error = %v, want ErrResourceNotFound", err)
	}
}

func TestLoadFromMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFrom(dir, "bad")
	if err == nil {
		t.Fatal("LoadFrom on malformed file succeeded")
	}
	if errors.Is(err, ErrResourceNotFound) {
		t.Error("malformed bundle must fail with a parse error, not not-found")
	}
}

func TestParseBundleValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing language", `{"rules": {}}`},
		{"empty exception form", `{"language": "xx", "exceptions": {"NOUN": {"": ["a"]}}}`},
		{"empty candidate list", `{"language": "xx", "exceptions": {"NOUN": {"a": []}}}`},
		{"empty candidate string", `{"language": "xx", "exceptions": {"NOUN": {"a": [""]}}}`},
		{"empty replacement list", `{"language": "xx", "rules": {"VERB": {"ed": []}}}`},
		{"unknown folding mode", `{"language": "xx", "folding": "title"}`},
		{"not json", `[:`},
	}
	for _, tt := range tests {
		if _, err := ParseBundle([]byte(tt.doc)); err == nil {
			t.Errorf("%s: ParseBundle accepted invalid input", tt.name)
		}
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	want := map[string]string{"da": "Danish", "sv": "Swedish", "en": "English"}
	for code, name := range want {
		if langs[code] != name {
			t.Errorf("Languages()[%q] = %q, want %q", code, langs[code], name)
		}
	}
}

func TestLanguageCodes(t *testing.T) {
	codes := LanguageCodes()
	if len(codes) < 3 {
		t.Fatalf("LanguageCodes() = %v, want at least da/en/sv", codes)
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("LanguageCodes() not sorted: %v", codes)
		}
	}
}
