package aitext

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedOutputError reports model text that could not be coerced into the
// required JSON shape. The raw text is kept for diagnostics; it is never
// replaced by a synthetic best guess.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// ExtractJSONArray recovers a JSON array of objects from raw model text.
// It strips a wrapping code fence regardless of the language tag, then, if the
// remainder is still not a clean array, slices from the first '[' to the last
// ']' to discard conversational preamble and postamble. A parse failure fails
// the whole call; there is no partial recovery.
func ExtractJSONArray(text string) ([]json.RawMessage, error) {
	candidate := stripCodeFence(strings.TrimSpace(text))

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &elements); err == nil {
		return elements, nil
	}

	first := strings.Index(candidate, "[")
	last := strings.LastIndex(candidate, "]")
	if first == -1 || last == -1 || last <= first {
		return nil, &MalformedOutputError{Raw: text, Err: fmt.Errorf("no JSON array found")}
	}

	sliced := candidate[first : last+1]
	if err := json.Unmarshal([]byte(sliced), &elements); err != nil {
		return nil, &MalformedOutputError{Raw: text, Err: err}
	}
	return elements, nil
}

// stripCodeFence removes one wrapping ``` block if present. The opening fence
// may carry any language tag ("```json", "```JSON", bare "```").
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	newline := strings.Index(s, "\n")
	closing := strings.LastIndex(s, "```")
	if newline == -1 || closing <= newline {
		return s
	}
	return strings.TrimSpace(s[newline+1 : closing])
}
