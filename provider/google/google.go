package google

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/spetersoncode/imagify"
	"google.golang.org/genai"
)

// DefaultImageModel is used when no model is configured or requested.
const DefaultImageModel = "gemini-2.0-flash-exp-image-generation"

// Client wraps the Google GenAI SDK to implement imagify.ImageProvider.
type Client struct {
	client  *genai.Client
	model   string
	baseURL string
}

// New creates a new Gemini client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	c := &Client{model: DefaultImageModel}
	for _, opt := range opts {
		opt(c)
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if c.baseURL != "" {
		cfg.HTTPOptions.BaseURL = c.baseURL
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.client = client
	return c, nil
}

// ClientOption configures the Google client.
type ClientOption func(*Client)

// WithModel sets the default image model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// GenerateImage generates an image from a text prompt using Gemini's
// multimodal generateContent endpoint. The prompt is wrapped in an image
// generation instruction and the response is requested with both text and
// image modalities; the first inline image part becomes the result, encoded
// as a data URI. Size, quality, and style options are not supported by
// this endpoint and are ignored.
func (c *Client) GenerateImage(ctx context.Context, prompt string, opts ...imagify.ImageOption) (*imagify.Result, error) {
	options := imagify.ApplyImageOptions(opts...)

	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	contents := genai.Text(fmt.Sprintf("Generate an image of: %s", prompt))
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"Text", "Image"},
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		var apierr genai.APIError
		if errors.As(err, &apierr) {
			return nil, imagify.NewHTTPStatusError(imagify.ProviderGemini, apierr.Code, err)
		}
		return nil, imagify.NewNetworkError(imagify.ProviderGemini, err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			uri := fmt.Sprintf("data:%s;base64,%s",
				part.InlineData.MIMEType,
				base64.StdEncoding.EncodeToString(part.InlineData.Data))
			return &imagify.Result{
				ImageURL: uri,
				// Gemini does not revise prompts.
				RevisedPrompt: prompt,
				Provider:      imagify.ProviderGemini,
			}, nil
		}
	}

	return nil, imagify.NewNoImageError(imagify.ProviderGemini)
}

var _ imagify.ImageProvider = (*Client)(nil)
