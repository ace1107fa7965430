package feed

import "context"

// Item is one entry of the activity feed.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Source produces feed items.
type Source interface {
	Items(ctx context.Context) ([]Item, error)
}

// StaticSource serves a fixed list of items.
type StaticSource struct {
	items []Item
}

// NewStaticSource returns a source serving items, or the default feed when
// items is empty.
func NewStaticSource(items ...Item) *StaticSource {
	if len(items) == 0 {
		items = DefaultItems()
	}
	return &StaticSource{items: append([]Item(nil), items...)}
}

// Items returns a copy of the configured items.
func (s *StaticSource) Items(ctx context.Context) ([]Item, error) {
	return append([]Item(nil), s.items...), nil
}

// DefaultItems is the built-in feed.
func DefaultItems() []Item {
	return []Item{
		{
			ID:          "1",
			Title:       "Latest Development Updates",
			Description: "New features being added to the task management system",
			URL:         "https://example.com/updates",
		},
		{
			ID:          "2",
			Title:       "Team Activity Feed",
			Description: "Recent actions by team members on various tasks",
			URL:         "https://example.com/activity",
		},
		{
			ID:          "3",
			Title:       "System Notifications",
			Description: "Important alerts about system maintenance and updates",
			URL:         "https://example.com/notifications",
		},
	}
}
