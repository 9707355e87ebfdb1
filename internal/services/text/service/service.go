// Package service runs the text engines behind the ports used by the API and the CLI
package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"linguaforge/internal/core/detect"
	"linguaforge/internal/core/normalize"
	"linguaforge/internal/core/registry"
	"linguaforge/internal/core/script"
	"linguaforge/internal/core/tokenize"
	"linguaforge/internal/core/translit"
	perr "linguaforge/internal/platform/errors"
	"linguaforge/internal/platform/logger"
	"linguaforge/internal/services/text/domain"
)

// Service defines the text service contract
type Service interface {
	domain.ServicePort
	domain.CatalogPort
}

// Svc implements Service on top of the stateless core engines
type Svc struct {
	log *logger.Logger
	det *detect.Detector
	tok *tokenize.Tokenizer
	tr  *translit.Transliterator
	nrm *normalize.Normalizer
}

var _ Service = (*Svc)(nil)

// New constructs the text service. A nil log uses the "text" component logger
func New(log *logger.Logger) *Svc {
	if log == nil {
		log = logger.Named("text")
	}
	det := detect.New()
	return &Svc{
		log: log,
		det: det,
		tok: tokenize.New(det),
		tr:  translit.New(),
		nrm: normalize.New(),
	}
}

// Script classifies the dominant script
func (s *Svc) Script(_ context.Context, in domain.ScriptInput) (domain.ScriptResult, error) {
	counts := script.Counts(in.Text)
	if counts == nil {
		counts = []script.Count{}
	}
	out := domain.ScriptResult{Text: in.Text, Script: script.Classify(in.Text), Counts: counts}
	s.log.Debug().
		Int("runes", utf8.RuneCountInString(in.Text)).
		Str("script", out.Script).
		Msg("script classified")
	return out, nil
}

// Detect ranks candidate languages, TopK zero means one
func (s *Svc) Detect(_ context.Context, in domain.DetectInput) ([]detect.Result, error) {
	k := in.TopK
	if k == 0 {
		k = 1
	}
	if k < 1 || k > domain.MaxTopK {
		return nil, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "top_k must be between 1 and %d", domain.MaxTopK),
			"top_k",
		)
	}
	out := s.det.DetectMultiple(in.Text, k)
	s.log.Debug().
		Int("runes", utf8.RuneCountInString(in.Text)).
		Int("top_k", k).
		Str("language", out[0].Language.Code).
		Float64("confidence", out[0].Confidence).
		Msg("language detected")
	return out, nil
}

// Tokenize splits text, detecting the language when none is given
func (s *Svc) Tokenize(_ context.Context, in domain.TokenizeInput) (tokenize.Result, error) {
	out := s.tok.Tokenize(in.Text, in.Language)
	s.log.Debug().
		Str("requested", in.Language).
		Str("language", out.Language.Code).
		Int("tokens", len(out.Tokens)).
		Msg("text tokenized")
	return out, nil
}

// Transliterate converts between scripts. Unsupported pairs become
// invalid argument errors naming the offending side
func (s *Svc) Transliterate(_ context.Context, in domain.TransliterateInput) (translit.Result, error) {
	out, err := s.tr.Transliterate(in.Text, in.From, in.To)
	if err != nil {
		var upe *translit.UnsupportedPairError
		if errors.As(err, &upe) {
			return translit.Result{}, perr.WithField(
				perr.Wrap(err, perr.ErrorCodeInvalidArgument, "unsupported script pair"),
				pairField(upe.Source, upe.Target),
			)
		}
		return translit.Result{}, perr.Wrap(err, perr.ErrorCodeUnknown, "transliterate")
	}
	s.log.Debug().
		Str("from", in.From).
		Str("to", in.To).
		Int("runes", utf8.RuneCountInString(in.Text)).
		Msg("text transliterated")
	return out, nil
}

// pairField blames "from" unless the source names a supported source script
func pairField(source, target string) string {
	for _, p := range translit.SupportedPairs() {
		if _, err := translit.ParsePair(source, p.Target()); err == nil {
			return "to"
		}
	}
	return "from"
}

// Normalize canonicalizes text for a language
func (s *Svc) Normalize(_ context.Context, in domain.NormalizeInput) (domain.NormalizeResult, error) {
	if in.Language == "" {
		return domain.NormalizeResult{}, perr.WithField(
			perr.New(perr.ErrorCodeValidation, "language is required"),
			"language",
		)
	}
	out := s.nrm.Normalize(in.Text, in.Language)
	_, known := registry.Lookup(in.Language)
	s.log.Debug().
		Str("language", in.Language).
		Bool("registered", known).
		Int("in_bytes", len(in.Text)).
		Int("out_bytes", len(out)).
		Msg("text normalized")
	return domain.NormalizeResult{Text: in.Text, Language: in.Language, Normalized: out}, nil
}
