// Command imagify generates an image from a text prompt using whichever
// backend is enabled by the configured credentials.
//
// Configuration comes from the environment (a .env file is loaded when
// present):
//
//	OPENAI_API_KEY     enables the OpenAI backend
//	GEMINI_API_KEY     enables the Gemini backend
//	OPENAI_BASE_URL    overrides the OpenAI API base URL
//	GEMINI_BASE_URL    overrides the Gemini API base URL
//	OPENAI_IMAGE_MODEL overrides the OpenAI image model
//	GEMINI_IMAGE_MODEL overrides the Gemini image model
//	IMAGIFY_STATE_FILE overrides the history file location
//
// With no keys configured, placeholder images from the mock backend are
// returned so the tool works out of the box.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/imagify"
	"github.com/spetersoncode/imagify/generator"
	"github.com/spetersoncode/imagify/session"
	"github.com/spetersoncode/imagify/store"
)

func main() {
	godotenv.Load()

	prompt := flag.String("prompt", "", "text prompt to generate an image from (required)")
	size := flag.String("size", string(imagify.ImageSize1024x1024), "image size: 1024x1024, 1024x1792, or 1792x1024")
	style := flag.String("style", string(imagify.ImageStyleVivid), "image style: vivid or natural")
	quality := flag.String("quality", string(imagify.ImageQualityStandard), "image quality: standard or hd")
	out := flag.String("out", "", "download the generated image to this file")
	showHistory := flag.Bool("history", false, "print generation history and exit")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()

	adapter := store.NewFileAdapter(stateFile())
	history := store.NewHistoryStore(adapter)
	history.Reload(ctx)

	if *showHistory {
		printHistory(history)
		return
	}

	if *prompt == "" {
		flag.Usage()
		os.Exit(2)
	}

	gen, err := generator.New(ctx, generator.Config{
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		OpenAIModel:   os.Getenv("OPENAI_IMAGE_MODEL"),
		GeminiModel:   os.Getenv("GEMINI_IMAGE_MODEL"),
	})
	if err != nil {
		slog.Error("failed to build generator", "error", err)
		os.Exit(1)
	}

	ledger := session.NewCreditLedger(session.DefaultCredits)
	sess := session.New(gen, ledger, history, session.WithSettings(imagify.Settings{
		Size:    imagify.ImageSize(*size),
		Style:   imagify.ImageStyle(*style),
		Quality: imagify.ImageQuality(*quality),
	}))

	fmt.Printf("Generating with %s backend...\n", sess.Provider())

	outcome := sess.Run(ctx, *prompt)
	if !outcome.Success {
		slog.Error("generation failed", "kind", outcome.Kind, "error", outcome.Err)
		os.Exit(1)
	}

	entry := outcome.Entry
	fmt.Printf("Image: %s\n", truncate(entry.ImageURL, 120))
	if entry.RevisedPrompt != "" && entry.RevisedPrompt != entry.Prompt {
		fmt.Printf("Revised prompt: %s\n", entry.RevisedPrompt)
	}
	if entry.IsMock {
		fmt.Println("Note: mock backend used; set OPENAI_API_KEY or GEMINI_API_KEY for real generations.")
	}
	fmt.Printf("Credits remaining: %d\n", ledger.Balance())

	if *out != "" {
		if err := imagify.DownloadImage(ctx, http.DefaultClient, entry.ImageURL, *out); err != nil {
			slog.Error("download failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Saved to %s\n", *out)
	}
}

// stateFile resolves the history file path, defaulting under the user's
// home directory.
func stateFile() string {
	if path := os.Getenv("IMAGIFY_STATE_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "imagify_state.json"
	}
	return filepath.Join(home, ".imagify", "state.json")
}

func printHistory(history *store.HistoryStore) {
	entries := history.Entries()
	if len(entries) == 0 {
		fmt.Println("No generations yet.")
		return
	}
	for i, e := range entries {
		mock := ""
		if e.IsMock {
			mock = " (mock)"
		}
		fmt.Printf("%2d. %s%s\n    %s\n    %s\n",
			i+1, e.Timestamp.Local().Format("2006-01-02 15:04:05"), mock,
			e.Prompt, truncate(e.ImageURL, 100))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
