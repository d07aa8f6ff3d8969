// Package llm abstracts the text-generation providers used for deal
// narratives. The engine never depends on this package; narrative generation
// is a display-layer concern.
package llm

import (
	"context"
	"fmt"
)

// Provider is the interface all text-generation backends implement.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// NewProvider selects a provider by name. "gemini" uses the unified GenAI
// SDK; "gemini-legacy" keeps the older generative-ai-go client for
// deployments that have not migrated yet.
func NewProvider(name string) (Provider, error) {
	switch name {
	case "", "gemini":
		return &GeminiProvider{}, nil
	case "gemini-legacy":
		return &GeminiLegacyProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", name)
	}
}
