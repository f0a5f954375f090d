package openai

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spetersoncode/imagify"
)

// DefaultImageModel is used when no model is configured or requested.
const DefaultImageModel = "dall-e-3"

// Client wraps the OpenAI SDK to implement imagify.ImageProvider.
type Client struct {
	client  *openai.Client
	model   string
	baseURL string
	reqOpts []option.RequestOption
}

// New creates a new OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{model: DefaultImageModel}
	for _, opt := range opts {
		opt(c)
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if c.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(c.baseURL))
	}
	reqOpts = append(reqOpts, c.reqOpts...)

	client := openai.NewClient(reqOpts...)
	c.client = &client
	return c
}

// ClientOption configures the OpenAI client.
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

// WithRequestOptions appends raw SDK request options, applied after the
// API key and base URL.
func WithRequestOptions(opts ...option.RequestOption) ClientOption {
	return func(c *Client) {
		c.reqOpts = append(c.reqOpts, opts...)
	}
}

// GenerateImage generates an image from a text prompt using DALL-E.
// It issues a single images/generations call with n=1 and requests the
// URL response format.
func (c *Client) GenerateImage(ctx context.Context, prompt string, opts ...imagify.ImageOption) (*imagify.Result, error) {
	options := imagify.ApplyImageOptions(opts...)

	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	size := options.Size
	if size == "" {
		size = imagify.ImageSize1024x1024
	}

	params := openai.ImageGenerateParams{
		Model:          openai.ImageModel(model),
		Prompt:         prompt,
		N:              openai.Int(1),
		Size:           openai.ImageGenerateParamsSize(size),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	}
	if options.Quality != "" {
		params.Quality = openai.ImageGenerateParamsQuality(options.Quality)
	}
	if options.Style != "" {
		params.Style = openai.ImageGenerateParamsStyle(options.Style)
	}

	resp, err := c.client.Images.Generate(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return nil, imagify.NewHTTPStatusError(imagify.ProviderOpenAI, apierr.StatusCode, err)
		}
		return nil, imagify.NewNetworkError(imagify.ProviderOpenAI, err)
	}

	if len(resp.Data) == 0 {
		return nil, imagify.NewMalformedResponseError(imagify.ProviderOpenAI, "openai response contained no image data")
	}
	img := resp.Data[0]
	if img.URL == "" {
		return nil, imagify.NewMalformedResponseError(imagify.ProviderOpenAI, "openai response image had no url")
	}

	return &imagify.Result{
		ImageURL:      img.URL,
		RevisedPrompt: img.RevisedPrompt,
		Provider:      imagify.ProviderOpenAI,
	}, nil
}

var _ imagify.ImageProvider = (*Client)(nil)
