package service

import (
	"context"
	"strings"

	"linguaforge/internal/core/registry"
	perr "linguaforge/internal/platform/errors"
	"linguaforge/internal/services/text/domain"
)

// Languages lists the registry, optionally narrowed by script and family.
// An unknown script or family yields an empty list, not an error
func (s *Svc) Languages(_ context.Context, in domain.LanguagesInput) ([]domain.Language, error) {
	script, family := strings.TrimSpace(in.Script), strings.TrimSpace(in.Family)

	var out []domain.Language
	switch {
	case script == "" && family == "":
		return registry.All(), nil
	case script == "":
		out = registry.ByFamily(family)
	default:
		for _, l := range registry.ByScript(script) {
			if family == "" || strings.EqualFold(l.Family, family) {
				out = append(out, l)
			}
		}
	}
	if out == nil {
		out = []domain.Language{}
	}
	return out, nil
}

// Language looks up one code without the English fallback
func (s *Svc) Language(_ context.Context, code string) (domain.Language, error) {
	l, ok := registry.Lookup(code)
	if !ok {
		return domain.Language{}, perr.WithField(perr.NotFoundf("unknown language code %q", code), "code")
	}
	return l, nil
}

// Scripts reports the scripts used by registered languages with counts
func (s *Svc) Scripts(_ context.Context) ([]domain.ScriptCount, error) {
	return registry.Scripts(), nil
}

// Families lists the distinct language families, sorted
func (s *Svc) Families(_ context.Context) ([]string, error) {
	return registry.Families(), nil
}
