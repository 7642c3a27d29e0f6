/*
PURPOSE:
  Loads the OpenAI API key from a .env style credential store.
  Creates the store interactively on first run.

REQUIREMENTS:
  User-specified:
  - If the store is missing, prompt for the key and persist it.
  - If the key is empty after loading, fail hard (Configuration error).
  - Never prompt when a non-empty store already exists.

  Implementation-discovered:
  - godotenv parses the store; the value is returned explicitly rather
    than exported into the process environment, so there is no ambient
    mutable global holding the secret.
  - Prompt I/O is injected (io.Reader/io.Writer) so tests never touch stdin.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (invoke command)
  - Feeds: internal/engine.New (explicit key parameter)

ERROR HANDLING:
  - ErrEmptyKey wraps every "credential absent or empty" failure so callers
    can test for the Configuration error kind with errors.Is.

IMPLEMENTATION RULES:
  - Store format is a single line: OPENAI_API_KEY=<value>
  - The store is written 0600; it holds a plaintext secret.

USAGE:
  key, err := credential.New(cfg.EnvPath()).Ensure()

SELF-HEALING INSTRUCTIONS:
  - If the store becomes corrupt, delete it and re-run to be prompted again.

RELATED FILES:
  - internal/cli/invoke.go

MAINTENANCE:
  - Update Key if the store ever needs to carry more than one credential.
*/

package credential

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Key is the single credential the store carries.
const Key = "OPENAI_API_KEY"

// ErrEmptyKey reports a missing or empty API key after the store was loaded.
var ErrEmptyKey = errors.New("OpenAI API key not found")

// Loader reads (and on first run creates) the credential store.
type Loader struct {
	Path string
	In   io.Reader
	Out  io.Writer
}

// New returns a Loader prompting on stdin/stdout.
func New(path string) *Loader {
	return &Loader{Path: path, In: os.Stdin, Out: os.Stdout}
}

// Ensure returns a non-empty API key from the store, prompting for and
// persisting one if the store does not exist yet.
func (l *Loader) Ensure() (string, error) {
	if _, err := os.Stat(l.Path); errors.Is(err, os.ErrNotExist) {
		if err := l.create(); err != nil {
			return "", err
		}
	}

	env, err := godotenv.Read(l.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read credential store %s: %w", l.Path, err)
	}

	key := strings.TrimSpace(env[Key])
	if key == "" {
		return "", fmt.Errorf("%w in %s", ErrEmptyKey, l.Path)
	}
	return key, nil
}

func (l *Loader) create() error {
	fmt.Fprintf(l.Out, "[!] No %s file found. Let's create one.\n", l.Path)
	fmt.Fprint(l.Out, "Enter your OpenAI API key: ")

	reader := bufio.NewReader(l.In)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read API key from input: %w", err)
	}

	value := strings.TrimSpace(line)
	content := fmt.Sprintf("%s=%s\n", Key, value)
	if err := os.WriteFile(l.Path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write credential store %s: %w", l.Path, err)
	}
	return nil
}
