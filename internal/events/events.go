package events

import "context"

// Content-change event types, pushed to connected editor sessions.
const (
	EventCampaignChanged = "campaign_changed"
	EventIssueChanged    = "issue_changed"
	EventBlockChanged    = "block_changed"
)

// StreamContent is the pub/sub channel all content-change events go through.
const StreamContent = "events:content"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
