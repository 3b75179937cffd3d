package util

import (
	"encoding/json"
	"strings"
)

// ExtractJSON decodes the substring between the first '{' and the last '}'
// of an LLM reply into v. It reports false when either brace is missing or
// the span does not decode; it never returns an error past this boundary.
//
// This is a best-effort heuristic, not a parser. It does not check brace
// balance, so a reply with two top-level objects, or prose containing a '}'
// after the real JSON, selects a span that fails to decode. Known limitation.
func ExtractJSON(content string, v any) bool {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return false
	}
	return json.Unmarshal([]byte(content[start:end+1]), v) == nil
}
