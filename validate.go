package imagify

import (
	"strings"
	"unicode/utf8"
)

// MaxPromptLength is the maximum accepted prompt length in characters.
const MaxPromptLength = 1000

// deniedTerms are rejected anywhere in a prompt, case-insensitively.
var deniedTerms = []string{"violence", "hate", "explicit", "nsfw"}

// ValidationResult reports the outcome of prompt validation.
type ValidationResult struct {
	Valid bool
	Err   string // user-facing message, empty when Valid
}

// ValidatePrompt checks a prompt against length and content rules.
// Rules are evaluated in order and the first failure wins. The function
// is pure: it has no side effects and is deterministic.
func ValidatePrompt(prompt string) ValidationResult {
	if strings.TrimSpace(prompt) == "" {
		return ValidationResult{Err: "Prompt cannot be empty"}
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return ValidationResult{Err: "Prompt is too long (max 1000 characters)"}
	}

	lower := strings.ToLower(prompt)
	for _, term := range deniedTerms {
		if strings.Contains(lower, term) {
			return ValidationResult{Err: "Prompt contains inappropriate content"}
		}
	}

	return ValidationResult{Valid: true}
}
