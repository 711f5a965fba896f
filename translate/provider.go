// Package translate implements AI-powered translation of Dev UI
// resource entries using HTTP API-based providers: Google AI (Gemini),
// Groq, Ollama, and custom OpenAI-compatible endpoints.
package translate

import (
	"fmt"
	"time"
)

// Provider IDs.
const (
	ProviderGoogle       = "google"
	ProviderGroq         = "groq"
	ProviderOllama       = "ollama"
	ProviderCustomOpenAI = "custom-openai"
)

// Provider holds the configuration for an AI translation service.
type Provider struct {
	// ID is the provider identifier (google, groq, ollama, custom-openai).
	ID string
	// Name is the display name.
	Name string
	// BaseURL is the API base URL.
	BaseURL string
	// APIKey is the authentication key (empty for local services).
	APIKey string
	// Model is the model identifier.
	Model string
	// Timeout is the request timeout.
	Timeout time.Duration
}

// DefaultProviders returns the pre-configured provider definitions.
func DefaultProviders() map[string]Provider {
	return map[string]Provider{
		ProviderGoogle: {
			ID:      ProviderGoogle,
			Name:    "Google AI (Gemini)",
			BaseURL: "https://generativelanguage.googleapis.com",
			Model:   "gemini-2.0-flash",
			Timeout: 120 * time.Second,
		},
		ProviderGroq: {
			ID:      ProviderGroq,
			Name:    "Groq",
			BaseURL: "https://api.groq.com/openai/v1",
			Model:   "llama-3.3-70b-versatile",
			Timeout: 60 * time.Second,
		},
		ProviderOllama: {
			ID:      ProviderOllama,
			Name:    "Ollama",
			BaseURL: "http://localhost:11434/v1",
			Model:   "llama3.2",
			Timeout: 120 * time.Second,
		},
		ProviderCustomOpenAI: {
			ID:      ProviderCustomOpenAI,
			Name:    "Custom OpenAI",
			Timeout: 60 * time.Second,
		},
	}
}

// Resolve builds a ready-to-use Provider from an ID plus overrides, and
// validates that the combination can actually make requests.
func Resolve(id, apiKey, model, baseURL string) (Provider, error) {
	prov, ok := DefaultProviders()[id]
	if !ok {
		return Provider{}, fmt.Errorf("unknown provider %q (valid: google, groq, ollama, custom-openai)", id)
	}

	if apiKey != "" {
		prov.APIKey = apiKey
	}
	if model != "" {
		prov.Model = model
	}
	if baseURL != "" {
		prov.BaseURL = baseURL
	}

	switch prov.ID {
	case ProviderGoogle, ProviderGroq:
		if prov.APIKey == "" {
			return Provider{}, fmt.Errorf("%s requires an API key (set one with the auth command)", prov.Name)
		}
	case ProviderCustomOpenAI:
		if prov.BaseURL == "" {
			return Provider{}, fmt.Errorf("%s requires a base URL", prov.Name)
		}
		if prov.Model == "" {
			return Provider{}, fmt.Errorf("%s requires a model", prov.Name)
		}
	}
	return prov, nil
}
