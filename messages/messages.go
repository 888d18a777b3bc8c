// Package messages supplies the one-liners shown under each progress bar.
package messages

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed messages.txt
var bundled string

// Fallback is shown when there is nothing else to say.
const Fallback = "Loading..."

// Bundled returns the messages compiled into the binary.
func Bundled() []string {
	return Parse(bundled)
}

// Load reads one message per line from path.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	msgs := Parse(string(data))
	if len(msgs) == 0 {
		return nil, fmt.Errorf("no messages in %s", path)
	}
	return msgs, nil
}

// Parse splits text into trimmed, non-empty lines.
func Parse(text string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Pick returns a uniformly chosen message. intn is e.g. rand.IntN.
func Pick(msgs []string, intn func(int) int) string {
	if len(msgs) == 0 {
		return Fallback
	}
	return msgs[intn(len(msgs))]
}
