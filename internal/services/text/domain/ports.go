package domain

import (
	"context"

	"linguaforge/internal/core/detect"
	"linguaforge/internal/core/tokenize"
	"linguaforge/internal/core/translit"
)

// ServicePort is consumed by the HTTP handlers and the CLI
type ServicePort interface {
	Script(ctx context.Context, in ScriptInput) (ScriptResult, error)
	Detect(ctx context.Context, in DetectInput) ([]detect.Result, error)
	Tokenize(ctx context.Context, in TokenizeInput) (tokenize.Result, error)
	Transliterate(ctx context.Context, in TransliterateInput) (translit.Result, error)
	Normalize(ctx context.Context, in NormalizeInput) (NormalizeResult, error)
}

// CatalogPort exposes the language registry
type CatalogPort interface {
	Languages(ctx context.Context, in LanguagesInput) ([]Language, error)
	Language(ctx context.Context, code string) (Language, error)
	Scripts(ctx context.Context) ([]ScriptCount, error)
	Families(ctx context.Context) ([]string, error)
}
