package imagify

import (
	"fmt"
	"strconv"
	"strings"
)

// ImageOptions contains configuration for an image generation request.
type ImageOptions struct {
	Model   string
	Size    ImageSize
	Quality ImageQuality
	Style   ImageStyle
}

// ImageOption is a functional option for configuring image generation requests.
type ImageOption func(*ImageOptions)

// WithImageModel sets the model to use for image generation.
func WithImageModel(model string) ImageOption {
	return func(o *ImageOptions) {
		o.Model = model
	}
}

// WithImageSize sets the dimensions for generated images.
func WithImageSize(size ImageSize) ImageOption {
	return func(o *ImageOptions) {
		o.Size = size
	}
}

// WithImageQuality sets the quality level for generated images.
// Supported values: "standard", "hd"
func WithImageQuality(q ImageQuality) ImageOption {
	return func(o *ImageOptions) {
		o.Quality = q
	}
}

// WithImageStyle sets the visual style for generated images.
// Supported values: "vivid", "natural"
func WithImageStyle(s ImageStyle) ImageOption {
	return func(o *ImageOptions) {
		o.Style = s
	}
}

// ApplyImageOptions applies functional options to an ImageOptions struct.
func ApplyImageOptions(opts ...ImageOption) *ImageOptions {
	o := &ImageOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Dimensions parses the size into its width and height components.
func (s ImageSize) Dimensions() (width, height int, err error) {
	w, h, ok := strings.Cut(string(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid image size %q: expected {width}x{height}", s)
	}
	width, err = strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid image size %q: %w", s, err)
	}
	height, err = strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid image size %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid image size %q: dimensions must be positive", s)
	}
	return width, height, nil
}

// Settings is a snapshot of the user-facing generation configuration.
// It is recorded with every history entry.
type Settings struct {
	Size    ImageSize    `json:"size"`
	Style   ImageStyle   `json:"style"`
	Quality ImageQuality `json:"quality"`
}

// DefaultSettings returns the default generation configuration.
func DefaultSettings() Settings {
	return Settings{
		Size:    ImageSize1024x1024,
		Style:   ImageStyleVivid,
		Quality: ImageQualityStandard,
	}
}

// Options converts the settings into functional options for GenerateImage.
func (s Settings) Options() []ImageOption {
	return []ImageOption{
		WithImageSize(s.Size),
		WithImageStyle(s.Style),
		WithImageQuality(s.Quality),
	}
}
