package changelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"
)

// ErrFilesystem is wrapped by every error returned from UpdateFile.
var ErrFilesystem = errors.New("changelog file unavailable")

// Merge places section on top of the existing changelog content.
// When the first line of existing is exactly the top-level heading, that
// line is dropped and leading whitespace is stripped from the rest; any
// other content is kept unchanged below the new section.
func Merge(section, existing string) string {
	return section + stripHeading(existing)
}

// stripHeading removes a leading "# Changelog" line.
func stripHeading(content string) string {
	first, rest, _ := strings.Cut(content, "\n")
	if strings.TrimSuffix(first, "\r") != Heading {
		return content
	}
	return strings.TrimLeftFunc(rest, unicode.IsSpace)
}

// UpdateFile writes section to path, keeping any previous content below it.
// The file is read and rewritten whole; there is no locking and no backup.
func UpdateFile(path, section string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: reading %s: %w", ErrFilesystem, path, err)
		}
		logDebug("[changelog] %s does not exist, creating", path)
		return writeFile(path, section)
	}

	logDebug("[changelog] merging into existing %s (%d bytes)", path, len(existing))
	return writeFile(path, Merge(section, string(existing)))
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrFilesystem, path, err)
	}
	return nil
}

// debugLogger is a function that logs debug messages when debug mode is enabled.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for changelog file operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}
