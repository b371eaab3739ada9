// Command server exposes the lemmy lemmatizer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/lemmatize?pos=<tag>&form=<word>
//	POST /api/pipe       body: {"tokens":[{"text":"...","pos":"...","lemma":"..."}]}
//	GET  /api/languages
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/lemmy-nlp/lemmy"
)

// ---- JSON response types ------------------------------------------------

type lemmatizeResponse struct {
	Form       string   `json:"form"`
	POS        string   `json:"pos"`
	Candidates []string `json:"candidates"`
	Lemma      string   `json:"lemma"`
}

type tokenJSON struct {
	Text  string `json:"text"`
	POS   string `json:"pos"`
	Lemma string `json:"lemma,omitempty"`
}

type pipeRequest struct {
	Tokens []tokenJSON `json:"tokens"`
}

type pipeResponse struct {
	Tokens []tokenJSON `json:"tokens"`
}

type languagesResponse struct {
	Languages map[string]string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- host-document shim -------------------------------------------------

// jsonToken adapts a tokenJSON record to the lemmy.Token interface.
type jsonToken struct {
	rec *tokenJSON
}

func (t jsonToken) Text() string      { return t.rec.Text }
func (t jsonToken) POS() string       { return t.rec.POS }
func (t jsonToken) Lemma() string     { return t.rec.Lemma }
func (t jsonToken) SetLemma(s string) { t.rec.Lemma = s }

// jsonDoc adapts a token record slice to the lemmy.Document interface.
type jsonDoc struct {
	recs []tokenJSON
}

func (d jsonDoc) Tokens() []lemmy.Token {
	out := make([]lemmy.Token, len(d.recs))
	for i := range d.recs {
		out[i] = jsonToken{rec: &d.recs[i]}
	}
	return out
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleLemmatize(eng *lemmy.Lemmatizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		form := r.URL.Query().Get("form")
		if form == "" {
			writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
			return
		}
		pos := lemmy.PartOfSpeech(r.URL.Query().Get("pos"))

		candidates := eng.Lemmatize(pos, form)
		writeJSON(w, http.StatusOK, lemmatizeResponse{
			Form:       form,
			POS:        string(pos),
			Candidates: candidates,
			Lemma:      lemmy.Disambiguate(form, candidates),
		})
	}
}

func handlePipe(comp *lemmy.Component) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body pipeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'tokens' array")
			return
		}

		doc := jsonDoc{recs: body.Tokens}
		comp.Process(doc)
		writeJSON(w, http.StatusOK, pipeResponse{Tokens: doc.recs})
	}
}

func handleLanguages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, languagesResponse{Languages: lemmy.Languages()})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	lang := flag.String("lang", "da", "language code of the bundle to serve")
	dataDir := flag.String("data", "", "optional directory of trained bundles (default: embedded)")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	var (
		bundle *lemmy.Bundle
		err    error
	)
	if *dataDir != "" {
		bundle, err = lemmy.LoadFrom(*dataDir, *lang)
	} else {
		bundle, err = lemmy.Load(*lang)
	}
	if err != nil {
		var nf *lemmy.ResourceNotFoundError
		if errors.As(err, &nf) {
			log.Fatalf("unsupported language: %v", nf)
		}
		log.Fatalf("failed to load bundle: %v", err)
	}
	log.Printf("loaded %s bundle (%d exceptions, %d rules)",
		bundle.Language, bundle.ExceptionCount(), bundle.RuleCount())

	eng := lemmy.New(bundle)
	comp := lemmy.NewComponent(eng)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/lemmatize", handleLemmatize(eng))
	mux.HandleFunc("/api/pipe", handlePipe(comp))
	mux.HandleFunc("/api/languages", handleLanguages())

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
