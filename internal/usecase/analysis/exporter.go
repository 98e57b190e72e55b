package analysis

import (
	"fmt"
	"strings"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/slack"
)

const (
	exportTitle      = "🤖 AI Meeting Summary"
	noActionItemsMsg = "_No action items identified._"
)

// BuildSlackMessage renders a normalized analysis result into Slack Block
// Kit blocks: header, quoted summary, divider, bulleted action items.
func BuildSlackMessage(result *entities.AnalysisResult) slack.Message {
	summary := "No summary available."
	items := []entities.ActionItem{}
	if result != nil {
		if result.Summary != "" {
			summary = result.Summary
		}
		items = result.ActionItems
	}

	// Quote every line of the summary with Slack's blockquote markdown
	quoted := ">" + strings.ReplaceAll(summary, "\n", "\n> ")

	itemsText := noActionItemsMsg
	if len(items) > 0 {
		var b strings.Builder
		for _, item := range items {
			owner := item.Owner
			if owner == "" {
				owner = entities.NotSpecified
			}
			b.WriteString(fmt.Sprintf("• *%s* - Owner: %s", item.Task, owner))
			if item.Deadline != "" {
				b.WriteString(fmt.Sprintf(", Deadline: %s", item.Deadline))
			}
			b.WriteString("\n")
		}
		itemsText = b.String()
	}

	return slack.Message{
		Blocks: []slack.Block{
			slack.Header(exportTitle),
			slack.Section("*Summary:*\n" + quoted),
			slack.Divider(),
			slack.Section("*Action Items:*\n" + itemsText),
		},
	}
}
