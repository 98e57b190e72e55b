package entities

import (
	"bytes"
	"encoding/json"
)

// NormalizeActionItems converts a stored action_items payload into a native
// slice. The column may hold a JSON array of items or a JSON string that
// itself encodes such an array; both decode to the same shape here. Any
// payload that decodes to neither yields an empty slice, never an error, and
// the function is idempotent over re-serialized output.
func NormalizeActionItems(raw []byte) []ActionItem {
	items := make([]ActionItem, 0)

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return items
	}

	// String encoding: unwrap the JSON string, then decode its content.
	if trimmed[0] == '"' {
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return items
		}
		trimmed = bytes.TrimSpace([]byte(encoded))
		if len(trimmed) == 0 {
			return items
		}
	}

	var decoded []ActionItem
	if err := json.Unmarshal(trimmed, &decoded); err != nil || decoded == nil {
		return items
	}
	return decoded
}
