package analysis

import (
	"fmt"
	"time"
)

// BuildPrompt constructs the analysis instruction for the model. Pure string
// construction: the transcript is embedded verbatim without truncation, and
// today's date anchors the resolution of relative deadlines.
func BuildPrompt(transcript string, today time.Time) string {
	return fmt.Sprintf(`You are an expert meeting analyst. Your task is to analyze the following meeting transcript and provide a concise summary and a list of action items in a valid JSON format with two keys: "summary" and "action_items".
- The "summary" should be a brief paragraph capturing the key decisions and outcomes of the meeting.
- The "action_items" should be a list of JSON objects. Each object must have the following keys: "task", "owner", "deadline", and "completed".
- Infer the owner and deadline from the context. If a deadline is relative (e.g., "by Friday"), convert it to a specific date. Assume today's date is %s.
- If any information (like owner or deadline) is not mentioned, set the value to "Not specified".
- The "completed" key should always be `+"`false`"+`.
Here is the transcript:
---
%s
---
`, today.Format("2006-01-02"), transcript)
}
