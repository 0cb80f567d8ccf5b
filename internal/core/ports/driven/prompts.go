package driven

// PromptStore provides access to assistant prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible default
	// or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used by the assistant.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptAnnouncement drafts a company announcement.
	// The template expects %s (tone) and %s (topic) placeholders.
	PromptAnnouncement = "announcement"

	// PromptEmail drafts an email to an employee.
	// The template expects %s (recipient), %s (subject) and %s (key points).
	PromptEmail = "email"

	// PromptLeaveTrends summarises leave history in one sentence.
	// The template expects a %s placeholder for the history text.
	PromptLeaveTrends = "leave_trends"
)
