// Package vocab loads the allow-list of valid configuration strings
// from a newline-delimited text file.
package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Set holds the loaded vocabulary. Immutable after Load.
type Set map[string]struct{}

// Load reads a vocabulary file with one token per line.
// Tokens are whitespace-trimmed, blank lines are skipped.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open field names file (%s): %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	set := make(Set)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read field names file (%s): %w", path, err)
	}

	return set, nil
}

// Contains reports whether token is part of the vocabulary.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}
