// Package openai provides DALL-E image generation via the official OpenAI SDK.
//
// # Usage
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"))
//
//	result, err := client.GenerateImage(ctx, "A futuristic city at sunset",
//	    imagify.WithImageSize(imagify.ImageSize1792x1024),
//	    imagify.WithImageQuality(imagify.ImageQualityHD),
//	)
//
// DALL-E 3 rewrites prompts for better results; the rewritten prompt is
// returned in Result.RevisedPrompt.
package openai
