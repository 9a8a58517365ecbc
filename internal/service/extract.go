package service

import (
	"strings"

	"edumotion/internal/domain"
)

// StripCodeFences removes markdown code-fence wrappers (``` or ```json)
// around the given text. Applying it twice yields the same result.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		start := 3
		// The opening fence may carry a language tag on the same line.
		if nl := strings.Index(s[start:], "\n"); nl != -1 {
			start += nl + 1
		}
		if end := strings.LastIndex(s[start:], "```"); end != -1 {
			s = s[start : start+end]
		} else {
			s = s[start:]
		}
	}

	return strings.TrimSpace(s)
}

// ExtractQuizJSON pulls the quiz JSON array out of free-form model text.
// The fallback chain is the contract: strip fences, then take the first
// syntactically complete top-level array, else hand back the whole cleaned
// text for the caller's parser to judge.
//
// This is the single place raw model output is turned into candidate JSON;
// swapping in a structured-output mode later only touches this function.
func ExtractQuizJSON(raw string) (string, error) {
	cleaned := StripCodeFences(raw)
	if cleaned == "" {
		return "", domain.NewQuizFormatError("model returned an empty response", raw, nil)
	}

	if arr, ok := firstJSONArray(cleaned); ok {
		return arr, nil
	}
	return cleaned, nil
}

// firstJSONArray scans for the first complete top-level JSON array,
// tracking bracket depth and skipping string literals.
func firstJSONArray(s string) (string, bool) {
	start := strings.Index(s, "[")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
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
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
