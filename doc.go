// Package imagify is a multi-provider AI image generation library for Go.
//
// It normalizes several image generation backends behind a single
// [ImageProvider] interface, validates prompts before they are sent
// anywhere, and tracks a local credit balance and a bounded generation
// history around each request.
//
// # Quick Start
//
//	gen, err := generator.New(ctx, generator.Config{
//	    OpenAIKey: os.Getenv("OPENAI_API_KEY"),
//	    GeminiKey: os.Getenv("GEMINI_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ledger := session.NewCreditLedger(session.DefaultCredits)
//	history := store.NewHistoryStore(nil)
//
//	sess := session.New(gen, ledger, history)
//	outcome := sess.Run(ctx, "a red fox in snow")
//	if outcome.Success {
//	    fmt.Println(outcome.Entry.ImageURL)
//	}
//
// # Backend Selection
//
// The generator picks exactly one backend per configuration: OpenAI when
// an OpenAI key is configured, otherwise Gemini when a Gemini key is
// configured, otherwise a mock backend that needs no credentials. There
// is no fallback between backends; a failure from the selected backend
// surfaces to the caller.
//
// # Subpackages
//
//   - provider/openai: DALL-E image generation via the official OpenAI SDK
//   - provider/google: Gemini multimodal image generation via the GenAI SDK
//   - provider/mock: credential-free placeholder images for demos and tests
//   - generator: backend selection and uniform dispatch
//   - store: history persistence with pluggable adapters
//   - session: credit accounting and the generation use case
package imagify
