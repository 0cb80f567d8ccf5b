package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/hrcentral-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

var _ driven.PromptStore = (*PromptStore)(nil)

const (
	promptExt    = ".txt"
	promptReadme = "README.md"
)

// defaultPrompts seeds new prompt files and stands in for missing ones.
//
//nolint:lll // prompt text stays on one line
var defaultPrompts = map[string]string{
	driven.PromptAnnouncement: `Write a short, %s company announcement about: %s. Keep it under 100 words.`,
	driven.PromptEmail:        `Draft an email to employee %s. Subject: %s. Key points to cover: %s. Format it clearly.`,
	driven.PromptLeaveTrends:  `Analyze this leave history data and provide a 1-sentence summary of any trends or concerns (e.g. lots of sick leave on Fridays): %s`,
}

// promptArgs documents the placeholders of each template, in order.
var promptArgs = map[string]string{
	driven.PromptAnnouncement: "company announcement; tone, topic",
	driven.PromptEmail:        "employee email; recipient, subject, key points",
	driven.PromptLeaveTrends:  "one-sentence leave analysis; leave history",
}

// PromptStore serves assistant prompt templates from editable files in
// a directory. The directory and default files are created on first use.
type PromptStore struct {
	dir string

	setup    sync.Once
	setupErr error

	mu    sync.RWMutex
	cache map[string]string
}

// NewPromptStore returns a store over promptDir, or ~/.hrcentral/prompts
// when promptDir is empty. Nothing is written until the first Load.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(dir, "prompts")
	}
	return &PromptStore{dir: promptDir, cache: map[string]string{}}, nil
}

// Dir returns the prompt directory.
func (s *PromptStore) Dir() string {
	return s.dir
}

// Load returns the template called name. A missing, empty or unreadable
// file falls back to the built-in default; names without a default are
// an error in that case.
func (s *PromptStore) Load(name string) (string, error) {
	s.setup.Do(s.initialise)

	if prompt, ok := s.cached(name); ok {
		return prompt, nil
	}

	def, hasDefault := defaultPrompts[name]
	if s.setupErr != nil {
		if hasDefault {
			return def, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.setupErr)
	}

	prompt, err := s.read(name)
	if err != nil {
		if hasDefault {
			logger.Debug("prompts: using default %s: %v", name, err)
			return def, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.cache[name]; ok {
		return prev, nil
	}
	s.cache[name] = prompt
	return prompt, nil
}

// Reload drops cached templates so the next Load reads the files again.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	clear(s.cache)
	s.mu.Unlock()
}

func (s *PromptStore) cached(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prompt, ok := s.cache[name]
	return prompt, ok
}

func (s *PromptStore) read(name string) (string, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return "", err
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", fmt.Errorf("%s%s is empty", name, promptExt)
	}
	return prompt, nil
}

func (s *PromptStore) path(name string) string {
	return filepath.Join(s.dir, name+promptExt)
}

// Watch drops the cache whenever a template file changes, until ctx is
// done. Long-running commands use it to pick up edits without a restart.
func (s *PromptStore) Watch(ctx context.Context) error {
	s.setup.Do(s.initialise)
	if s.setupErr != nil {
		return s.setupErr
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create prompt watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	logger.Debug("prompts: watching %s", s.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isPromptChange(event) {
				logger.Debug("prompts: %s changed, reloading", filepath.Base(event.Name))
				s.Reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("prompt watcher: %v", err)
		}
	}
}

// isPromptChange reports whether event alters a template file. Chmod
// alone does not count.
func isPromptChange(event fsnotify.Event) bool {
	return filepath.Ext(event.Name) == promptExt &&
		event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// initialise creates the directory, any missing default files and the
// README. Existing files are never overwritten.
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		s.setupErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	for name, content := range defaultPrompts {
		if err := writeIfMissing(s.path(name), content); err != nil {
			s.setupErr = fmt.Errorf("create default prompt %q: %w", name, err)
			return
		}
	}
	s.setupErr = writeIfMissing(filepath.Join(s.dir, promptReadme), readme())
}

func writeIfMissing(path, content string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}
	return os.WriteFile(path, []byte(content), 0600)
}

// readme describes every template file and its placeholders.
func readme() string {
	names := make([]string, 0, len(promptArgs))
	for name := range promptArgs {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("# HR Central Prompts\n\n")
	b.WriteString("Templates used by `hrcentral assistant`.\n\n## Files\n\n")
	for _, name := range names {
		fmt.Fprintf(&b, "- `%s%s`: %s\n", name, promptExt, promptArgs[name])
	}
	b.WriteString("\n## Customisation\n\n")
	b.WriteString("Edit a file to change how the assistant writes. Keep the `%s` placeholders\n")
	b.WriteString("in the order listed above. Delete a file to restore its default on next use.\n")
	return b.String()
}
