package aitext

import "strings"

// ExtractSections recovers the content of each bold markdown header from the
// model's free-form text. Every label in orderedLabels is present in the
// result; a header the model omitted maps to the empty string.
//
// The search cursor only moves forward: each header is looked up after the
// position of the previous one, so a label word that happens to appear inside
// an earlier section's body is never mistaken for a header. Callers must pass
// labels in the order the prompt asked for them.
func ExtractSections(text string, orderedLabels []string) map[string]string {
	sections := make(map[string]string, len(orderedLabels))

	type hit struct {
		label string
		start int // content start, just past the header marker
	}
	var hits []hit

	cursor := 0
	for _, label := range orderedLabels {
		sections[label] = ""
		marker := "**" + label + ":**"
		idx := strings.Index(text[cursor:], marker)
		if idx == -1 {
			continue
		}
		start := cursor + idx + len(marker)
		hits = append(hits, hit{label: label, start: start})
		cursor = start
	}

	for i, h := range hits {
		end := len(text)
		if i+1 < len(hits) {
			// The next found header begins at its content start minus its
			// marker length; recompute from the raw positions instead.
			next := hits[i+1]
			end = next.start - len("**"+next.label+":**")
		}
		sections[h.label] = strings.TrimSpace(text[h.start:end])
	}

	return sections
}

// FirstLine reduces a section to its first non-empty line, trimmed.
func FirstLine(section string) string {
	for _, line := range strings.Split(section, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Block returns the whole section trimmed.
func Block(section string) string {
	return strings.TrimSpace(section)
}

// Lines splits a section into list items: one per non-empty line, with any
// leading bullet marker stripped.
func Lines(section string) []string {
	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, bullet := range []string{"- ", "* ", "• "} {
			if strings.HasPrefix(line, bullet) {
				line = strings.TrimSpace(strings.TrimPrefix(line, bullet))
				break
			}
		}
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
