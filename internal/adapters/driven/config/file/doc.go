// Package file provides file-based implementations of driven port interfaces.
// These adapters keep user-editable state under ~/.hrcentral.
//
// Adapters:
//   - ConfigStore: TOML settings file with dot-notation keys
//   - PromptStore: assistant prompt templates, one text file per prompt
package file
