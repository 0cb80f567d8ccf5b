package driven

import "context"

// LLMService generates text for the HR assistant. It is optional: with
// no service configured the assistant answers with fixed fallback text.
// Adapters exist for OpenAI, Anthropic and Ollama.
type LLMService interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName identifies the model in logs and settings output.
	ModelName() string

	// Ping checks reachability and credentials without generating.
	Ping(ctx context.Context) error

	Close() error
}

// GenerateOptions tune one Generate call. Zero values leave the
// provider defaults in place.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float64
}

// AssistantSystemPrompt frames every generation request sent by an adapter.
const AssistantSystemPrompt = "You are the writing assistant of a company HR department. " +
	"Reply with the requested text only, without preamble."
