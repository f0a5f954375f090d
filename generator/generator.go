// Package generator selects an image generation backend from configured
// credentials and dispatches requests to it.
//
// Selection happens once, at construction, in fixed priority order: an
// OpenAI key wins over a Gemini key, and with no credentials the mock
// backend serves requests. There is no retry and no fallback between
// backends; a failure from the selected backend surfaces to the caller.
package generator

import (
	"context"
	"time"

	"github.com/spetersoncode/imagify"
	"github.com/spetersoncode/imagify/provider/google"
	"github.com/spetersoncode/imagify/provider/mock"
	"github.com/spetersoncode/imagify/provider/openai"
)

// Config holds credentials and overrides for the available backends.
// Only configure keys for backends you intend to use; presence of a key
// is what enables a backend.
type Config struct {
	// OpenAIKey enables the OpenAI backend.
	OpenAIKey string
	// GeminiKey enables the Gemini backend when no OpenAI key is set.
	GeminiKey string

	// OpenAIBaseURL overrides the OpenAI API base URL.
	OpenAIBaseURL string
	// GeminiBaseURL overrides the Gemini API base URL.
	GeminiBaseURL string

	// OpenAIModel overrides the default OpenAI image model.
	OpenAIModel string
	// GeminiModel overrides the default Gemini image model.
	GeminiModel string

	// MockDelay overrides the mock backend's artificial latency.
	// Zero keeps the mock default.
	MockDelay time.Duration
}

// Select returns the backend that will serve generation requests for the
// given credentials. It is pure and deterministic.
func Select(openaiKey, geminiKey string) imagify.Provider {
	switch {
	case openaiKey != "":
		return imagify.ProviderOpenAI
	case geminiKey != "":
		return imagify.ProviderGemini
	default:
		return imagify.ProviderMock
	}
}

// Generator dispatches image generation to the backend selected from its
// configuration.
type Generator struct {
	provider imagify.Provider
	backend  imagify.ImageProvider
}

// New creates a Generator, building the selected backend's client once.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	provider := Select(cfg.OpenAIKey, cfg.GeminiKey)

	var backend imagify.ImageProvider
	switch provider {
	case imagify.ProviderOpenAI:
		var opts []openai.ClientOption
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
		}
		if cfg.OpenAIModel != "" {
			opts = append(opts, openai.WithModel(cfg.OpenAIModel))
		}
		backend = openai.New(cfg.OpenAIKey, opts...)

	case imagify.ProviderGemini:
		var opts []google.ClientOption
		if cfg.GeminiBaseURL != "" {
			opts = append(opts, google.WithBaseURL(cfg.GeminiBaseURL))
		}
		if cfg.GeminiModel != "" {
			opts = append(opts, google.WithModel(cfg.GeminiModel))
		}
		client, err := google.New(ctx, cfg.GeminiKey, opts...)
		if err != nil {
			return nil, err
		}
		backend = client

	default:
		var opts []mock.ClientOption
		if cfg.MockDelay > 0 {
			opts = append(opts, mock.WithDelay(cfg.MockDelay))
		}
		backend = mock.New(opts...)
	}

	return &Generator{provider: provider, backend: backend}, nil
}

// NewWithBackend creates a Generator around an already-built backend.
// Intended for tests and custom ImageProvider implementations.
func NewWithBackend(provider imagify.Provider, backend imagify.ImageProvider) *Generator {
	return &Generator{provider: provider, backend: backend}
}

// Provider returns the backend selected at construction.
func (g *Generator) Provider() imagify.Provider {
	return g.provider
}

// GenerateImage delegates to the selected backend unchanged.
func (g *Generator) GenerateImage(ctx context.Context, prompt string, opts ...imagify.ImageOption) (*imagify.Result, error) {
	return g.backend.GenerateImage(ctx, prompt, opts...)
}

var _ imagify.ImageProvider = (*Generator)(nil)
