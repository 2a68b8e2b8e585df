package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeStructured extracts a JSON object from free-text model output and
// unmarshals it into target. The model may wrap the object in code fences or
// surround it with commentary; both are tolerated. Callers that gate a
// decision on the result must substitute their own conservative default when
// an error is returned — the error never propagates past the agent layer.
func DecodeStructured(response string, target interface{}) error {
	jsonStr, ok := extractJSONObject(response)
	if !ok {
		return fmt.Errorf("no JSON object found in response")
	}

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSONObject locates the first balanced top-level {...} span in text.
// A naive first-{-to-last-} slice can capture trailing garbage when the model
// appends commentary after the object, so braces are counted instead, with
// string literals and escapes skipped.
func extractJSONObject(text string) (string, bool) {
	text = stripCodeFences(strings.TrimSpace(text))

	start := strings.Index(text, "{")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

// stripCodeFences removes a leading ``` or ```json line and a trailing ```
// line if present.
func stripCodeFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	// Drop the opening fence line, including any language tag.
	if idx := strings.Index(text, "\n"); idx != -1 {
		text = text[idx+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}

	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSpace(strings.TrimSuffix(text, "```"))
	}

	return text
}
