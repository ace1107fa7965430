package feed_test

import (
	"context"
	"testing"

	"github.com/phrazzld/taskboard/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSource_Default(t *testing.T) {
	items, err := feed.NewStaticSource().Items(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Latest Development Updates", items[0].Title)
	assert.Equal(t, "https://example.com/notifications", items[2].URL)
}

func TestStaticSource_ReturnsCopies(t *testing.T) {
	src := feed.NewStaticSource(feed.Item{ID: "x", Title: "custom"})

	first, err := src.Items(context.Background())
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := src.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "custom", second[0].Title)
}
