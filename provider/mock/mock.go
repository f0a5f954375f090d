// Package mock provides a credential-free image backend for demos and tests.
//
// It never contacts an AI service: after a short artificial delay it
// returns a placeholder image URL from Lorem Picsum sized to the requested
// dimensions.
package mock

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spetersoncode/imagify"
)

// DefaultDelay approximates real backend latency.
const DefaultDelay = 2 * time.Second

// Client implements imagify.ImageProvider without any network backend.
type Client struct {
	delay time.Duration
	randN func(n int) int
}

// New creates a new mock client.
func New(opts ...ClientOption) *Client {
	c := &Client{
		delay: DefaultDelay,
		randN: rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the mock client.
type ClientOption func(*Client)

// WithDelay overrides the artificial latency. A zero delay disables it.
func WithDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.delay = d
	}
}

// WithRand overrides the random source used to pick placeholder images.
func WithRand(randN func(n int) int) ClientOption {
	return func(c *Client) {
		c.randN = randN
	}
}

// GenerateImage returns a placeholder image sized to the requested
// dimensions. It fails only on a malformed size or a canceled context.
func (c *Client) GenerateImage(ctx context.Context, prompt string, opts ...imagify.ImageOption) (*imagify.Result, error) {
	options := imagify.ApplyImageOptions(opts...)

	size := options.Size
	if size == "" {
		size = imagify.ImageSize1024x1024
	}
	width, height, err := size.Dimensions()
	if err != nil {
		return nil, imagify.NewBadRequestError(imagify.ProviderMock, err.Error())
	}

	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	// Lorem Picsum serves a stable image per id.
	id := c.randN(1000) + 400

	return &imagify.Result{
		ImageURL:      fmt.Sprintf("https://picsum.photos/id/%d/%d/%d", id, width, height),
		RevisedPrompt: prompt,
		Provider:      imagify.ProviderMock,
		IsMock:        true,
	}, nil
}

var _ imagify.ImageProvider = (*Client)(nil)
