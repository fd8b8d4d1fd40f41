package pipeline

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Decoder order matters: latin-1 accepts any byte sequence, so it acts as the
// catch-all after a strict utf-8 attempt.
var sourceEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", unicode.UTF8},
	{"latin-1", charmap.ISO8859_1},
	{"cp1252", charmap.Windows1252},
}

// ReadSalesLines reads the input file, trying each supported encoding in
// turn. The header row and blank lines are dropped; the remaining lines are
// returned trimmed, in file order.
func ReadSalesLines(path string) ([]string, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sales data %q: %w", path, err)
	}

	text, err := decodeWithFallback(blob)
	if err != nil {
		return nil, fmt.Errorf("read sales data %q: %w", path, err)
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == 0 {
			continue // header
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func decodeWithFallback(blob []byte) (string, error) {
	for _, candidate := range sourceEncodings {
		if candidate.name == "utf-8" {
			if utf8.Valid(blob) {
				return string(blob), nil
			}
			continue
		}
		decoded, err := candidate.enc.NewDecoder().Bytes(blob)
		if err != nil {
			continue
		}
		return string(decoded), nil
	}
	return "", fmt.Errorf("unable to decode with supported encodings")
}
