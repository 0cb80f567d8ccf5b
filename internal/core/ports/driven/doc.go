// Package driven holds the interfaces the core calls out through.
//
// Required: KeyValueStore (SQLite or memory), Persistence (the HR
// collections and their seeds over a KeyValueStore), ConfigStore and Clock.
//
// Optional, may be nil: LLMService (the assistant falls back to fixed
// text), PromptStore (built-in prompts are used) and PayslipRenderer
// (payslip export is unavailable).
package driven
