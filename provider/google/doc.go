// Package google provides Gemini image generation via the Google GenAI SDK.
//
// Unlike DALL-E, the Gemini multimodal endpoint returns image bytes inline
// rather than a hosted URL, so results carry a data URI in
// Result.ImageURL.
//
// # Usage
//
//	client, err := google.New(ctx, os.Getenv("GEMINI_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.GenerateImage(ctx, "A watercolor lighthouse")
package google
