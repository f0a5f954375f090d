package imagify

import "context"

// ImageProvider defines the interface for AI image generation backends.
type ImageProvider interface {
	// GenerateImage creates an image from a text prompt.
	GenerateImage(ctx context.Context, prompt string, opts ...ImageOption) (*Result, error)
}

// Result represents a normalized response from an image generation backend.
// A nil error from GenerateImage guarantees ImageURL is non-empty.
type Result struct {
	// ImageURL points at the generated image. It is either an HTTPS URL
	// or a data URI for backends that return inline image bytes.
	ImageURL string
	// RevisedPrompt contains the prompt that was actually used.
	// DALL-E 3 rewrites prompts for better results; other backends
	// echo the original prompt.
	RevisedPrompt string
	// Provider identifies the backend that produced the image.
	Provider Provider
	// IsMock is true when the image came from the mock backend.
	IsMock bool
}

// ImageSize represents predefined image dimensions in "{width}x{height}" form.
type ImageSize string

const (
	ImageSize1024x1024 ImageSize = "1024x1024"
	ImageSize1024x1792 ImageSize = "1024x1792" // Portrait
	ImageSize1792x1024 ImageSize = "1792x1024" // Landscape
)

// ImageQuality specifies the quality level for generated images.
// Note: Only supported by DALL-E 3.
type ImageQuality string

const (
	ImageQualityStandard ImageQuality = "standard"
	ImageQualityHD       ImageQuality = "hd"
)

// ImageStyle specifies the visual style for generated images.
// Note: Only supported by DALL-E 3.
type ImageStyle string

const (
	ImageStyleVivid   ImageStyle = "vivid"
	ImageStyleNatural ImageStyle = "natural"
)
