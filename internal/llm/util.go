// Package llm - util.go provides shared utilities for model response processing.
package llm

import "strings"

// CleanJSONBlock strips markdown code fences from model output. Models
// routinely wrap JSON in ```json fences even when the prompt forbids it,
// which would otherwise fail the augmentation parsers.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")

	// Drop a leading language tag such as "json" or "javascript".
	i := 0
	for i < len(text) && isTagByte(text[i]) {
		i++
	}
	if i < 20 {
		text = strings.TrimPrefix(text[i:], "\n")
	}

	if end := strings.LastIndex(text, "```"); end >= 0 {
		text = text[:end]
	}
	return strings.TrimSpace(text)
}

func isTagByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
