// Package domain holds DTOs for the text service and its transports
package domain

import (
	"linguaforge/internal/core/registry"
	"linguaforge/internal/core/script"
)

// MaxTopK bounds how many candidates one detect call may ask for
const MaxTopK = 100

// ScriptInput asks for the dominant script of a text
type ScriptInput struct {
	Text string `json:"text" example:"नमस्ते दुनिया"`
}

// ScriptResult is the classification with its per-script tally
type ScriptResult struct {
	Text   string         `json:"text"`
	Script string         `json:"script" example:"Devanagari"`
	Counts []script.Count `json:"counts"`
}

// DetectInput asks for up to TopK candidate languages, zero means one
type DetectInput struct {
	Text string `json:"text" example:"the cat and the dog"`
	TopK int    `json:"top_k,omitempty" validate:"omitempty,min=1,max=100" example:"3"`
}

// TokenizeInput splits a text, an empty Language runs detection first
type TokenizeInput struct {
	Text     string `json:"text" example:"Hello, world!"`
	Language string `json:"language,omitempty" example:"en"`
}

// TransliterateInput converts between two script names, matched case-insensitively
type TransliterateInput struct {
	Text string `json:"text" example:"नमस्ते"`
	From string `json:"from" validate:"required" example:"Devanagari"`
	To   string `json:"to" validate:"required" example:"Latin"`
}

// NormalizeInput normalizes a text for one language
type NormalizeInput struct {
	Text     string `json:"text" example:"  हाँ   जी  "`
	Language string `json:"language" validate:"required" example:"hi"`
}

// NormalizeResult pairs the input with its normalized form
type NormalizeResult struct {
	Text       string `json:"text"`
	Language   string `json:"language"`
	Normalized string `json:"normalized"`
}

// LanguagesInput filters the registry listing. Empty filters match everything,
// both filters must match when set
type LanguagesInput struct {
	Script string `json:"script,omitempty" example:"Devanagari"`
	Family string `json:"family,omitempty" example:"Dravidian"`
}

// Language is re-exported so transports need not import the registry
type Language = registry.Language

// ScriptCount is re-exported for the same reason
type ScriptCount = registry.ScriptCount
