package slack

// Message is a Block Kit webhook payload
type Message struct {
	Blocks []Block `json:"blocks"`
}

// Block is a single Block Kit block
type Block struct {
	Type string      `json:"type"`
	Text *TextObject `json:"text,omitempty"`
}

// TextObject is a Block Kit text object
type TextObject struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// Header builds a header block with plain text
func Header(text string) Block {
	return Block{
		Type: "header",
		Text: &TextObject{Type: "plain_text", Text: text, Emoji: true},
	}
}

// Section builds a section block with mrkdwn text
func Section(markdown string) Block {
	return Block{
		Type: "section",
		Text: &TextObject{Type: "mrkdwn", Text: markdown},
	}
}

// Divider builds a divider block
func Divider() Block {
	return Block{Type: "divider"}
}
