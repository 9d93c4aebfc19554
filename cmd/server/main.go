// Command server exposes the word realiser as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/realise?base=<word>[&category=noun][&number=plural][&gender=feminine]
//	POST /api/realise          body: {"base":"...","category":"...","features":{...}}
//	GET  /api/word?base=<word>
//	GET  /api/languages
package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	realiser "github.com/mot-juste/realiser"
)

// ---- JSON response types ------------------------------------------------

type realiseResponse struct {
	Base     string               `json:"base"`
	Realised string               `json:"realised"`
	Word     *realiser.WordRecord `json:"word,omitempty"`
}

type realiseRequest struct {
	Base     string         `json:"base"`
	Category string         `json:"category,omitempty"`
	Features map[string]any `json:"features,omitempty"`
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// realiseStatus maps realization failures onto HTTP statuses.
func realiseStatus(err error) int {
	var unknownWord *realiser.UnknownWordError
	var unsupported *realiser.UnsupportedCategoryError
	switch {
	case errors.As(err, &unknownWord):
		return http.StatusNotFound
	case errors.As(err, &unsupported):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// queryFeatures converts known query parameters into a feature set.
func queryFeatures(r *http.Request) realiser.FeatureSet {
	features := realiser.FeatureSet{}
	q := r.URL.Query()
	for _, key := range []string{
		realiser.FeatureNumber,
		realiser.FeatureGender,
		realiser.FeatureDiscourseFunction,
	} {
		if v := q.Get(key); v != "" {
			features[key] = v
		}
	}
	for _, key := range []string{
		realiser.FeatureComparative,
		realiser.FeatureSuperlative,
		realiser.FeatureNonMorphological,
	} {
		if v, err := strconv.ParseBool(q.Get(key)); err == nil && v {
			features[key] = true
		}
	}
	return features
}

// ---- handlers -----------------------------------------------------------

func handleRealise(rs *realiser.Realiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var base string
		var category realiser.Category
		var features realiser.FeatureSet

		switch r.Method {
		case http.MethodGet:
			base = r.URL.Query().Get("base")
			category, _ = realiser.ParseCategory(r.URL.Query().Get("category"))
			features = queryFeatures(r)
		case http.MethodPost:
			var body realiseRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeError(w, http.StatusBadRequest, "body must be JSON")
				return
			}
			base = body.Base
			category, _ = realiser.ParseCategory(body.Category)
			features = realiser.FeatureSet(body.Features)
		default:
			writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
			return
		}

		if base == "" {
			writeError(w, http.StatusBadRequest, "missing 'base'")
			return
		}

		result, err := rs.RealiseWord(base, category, features)
		if err != nil {
			log.Warn().Err(err).Str("base", base).Msg("realise failed")
			writeError(w, realiseStatus(err), err.Error())
			return
		}
		if result == nil {
			// Elided word: nothing to realize.
			writeJSON(w, http.StatusOK, realiseResponse{Base: base})
			return
		}

		resp := realiseResponse{Base: base, Realised: result.Value}
		if src := result.Source(); src != nil && src.BaseWord() != nil {
			rec := src.BaseWord().Record()
			resp.Word = &rec
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleWord(rs *realiser.Realiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		base := r.URL.Query().Get("base")
		if base == "" {
			writeError(w, http.StatusBadRequest, "missing 'base' query parameter")
			return
		}
		category, _ := realiser.ParseCategory(r.URL.Query().Get("category"))
		word, err := rs.Lexicon().First(base, category)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, word.Record())
	}
}

func handleLanguages(rs *realiser.Realiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, languagesResponse{Languages: rs.Registry().Languages()})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Info().Str("path", cfg.LexiconPath).Msg("loading lexicon")
	lex, err := realiser.LoadLexicon(cfg.LexiconPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load lexicon")
	}
	log.Info().Int("entries", lex.Len()).Str("language", lex.Language()).Msg("lexicon loaded")

	rs := realiser.New(lex, realiser.DefaultRegistry())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/realise", handleRealise(rs))
	mux.HandleFunc("/api/word", handleWord(rs))
	mux.HandleFunc("/api/languages", handleLanguages(rs))

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)

	log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
