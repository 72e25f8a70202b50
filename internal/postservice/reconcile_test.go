package postservice

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okuznetsov/blogware/internal/common"
)

func textItem(id uuid.UUID, order int, text string, style TextStyle) *TextItem {
	return &TextItem{ItemMeta: ItemMeta{ID: id, Order: order}, Text: text, Style: style}
}

func imageItem(id uuid.UUID, order int, fileName string) *ImageItem {
	return &ImageItem{ItemMeta: ItemMeta{ID: id, Order: order}, FileName: fileName}
}

func TestReconcileItemsUpdatesExisting(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()

	existing := []PostItem{
		textItem(id1, 0, "old heading", TextStyleHeading),
		imageItem(id2, 1, "old.png"),
	}

	submitted := []ItemInput{
		{ID: &id2, Kind: ItemKindImage, FileName: "new.png", Alt: "alt"},
		{ID: &id1, Kind: ItemKindText, Text: "new heading", Style: TextStyleParagraph},
	}

	items, err := reconcileItems(existing, submitted, uuid.New)
	require.NoError(t, err)
	require.Len(t, items, 2)

	img, ok := items[0].(*ImageItem)
	require.True(t, ok)
	assert.Equal(t, id2, img.ID)
	assert.Equal(t, 0, img.Order)
	assert.Equal(t, "new.png", img.FileName)
	assert.Equal(t, "alt", img.Alt)

	text, ok := items[1].(*TextItem)
	require.True(t, ok)
	assert.Equal(t, id1, text.ID)
	assert.Equal(t, 1, text.Order)
	assert.Equal(t, "new heading", text.Text)
	assert.Equal(t, TextStyleParagraph, text.Style)
}

func TestReconcileItemsInsertsNewItems(t *testing.T) {
	id1 := uuid.New()

	existing := []PostItem{textItem(id1, 0, "keep me", TextStyleParagraph)}

	submitted := []ItemInput{
		{Kind: ItemKindText, Text: "fresh", Style: TextStyleHeading},
		{ID: &id1, Kind: ItemKindText, Text: "keep me", Style: TextStyleParagraph},
		{Kind: ItemKindImage, FileName: "pic.png"},
	}

	items, err := reconcileItems(existing, submitted, uuid.New)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// new items get fresh non-nil ids distinct from the kept one
	assert.NotEqual(t, uuid.Nil, items[0].Meta().ID)
	assert.NotEqual(t, uuid.Nil, items[2].Meta().ID)
	assert.NotEqual(t, id1, items[0].Meta().ID)
	assert.NotEqual(t, items[0].Meta().ID, items[2].Meta().ID)

	assert.Equal(t, id1, items[1].Meta().ID)

	for i, item := range items {
		assert.Equal(t, i, item.Meta().Order)
	}
}

func TestReconcileItemsDeletesOmitted(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()
	id3 := uuid.New()

	existing := []PostItem{
		textItem(id1, 0, "a", TextStyleParagraph),
		textItem(id2, 1, "b", TextStyleParagraph),
		imageItem(id3, 2, "c.png"),
	}

	submitted := []ItemInput{
		{ID: &id3, Kind: ItemKindImage, FileName: "c.png"},
	}

	items, err := reconcileItems(existing, submitted, uuid.New)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id3, items[0].Meta().ID)
	assert.Equal(t, 0, items[0].Meta().Order)
}

func TestReconcileItemsEmptySubmissionDeletesAll(t *testing.T) {
	existing := []PostItem{
		textItem(uuid.New(), 0, "a", TextStyleParagraph),
		textItem(uuid.New(), 1, "b", TextStyleHeading),
	}

	items, err := reconcileItems(existing, nil, uuid.New)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReconcileItemsUnknownIDFails(t *testing.T) {
	stranger := uuid.New()

	existing := []PostItem{textItem(uuid.New(), 0, "a", TextStyleParagraph)}
	submitted := []ItemInput{{ID: &stranger, Kind: ItemKindText, Text: "b", Style: TextStyleParagraph}}

	_, err := reconcileItems(existing, submitted, uuid.New)
	assert.ErrorIs(t, err, ErrItemNotInPost)
}

func TestReconcileItemsDuplicateIDFails(t *testing.T) {
	id1 := uuid.New()

	existing := []PostItem{textItem(id1, 0, "a", TextStyleParagraph)}
	submitted := []ItemInput{
		{ID: &id1, Kind: ItemKindText, Text: "b", Style: TextStyleParagraph},
		{ID: &id1, Kind: ItemKindText, Text: "c", Style: TextStyleParagraph},
	}

	_, err := reconcileItems(existing, submitted, uuid.New)

	var validationErr common.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestReconcileItemsKindChangeFails(t *testing.T) {
	id1 := uuid.New()

	existing := []PostItem{textItem(id1, 0, "a", TextStyleParagraph)}
	submitted := []ItemInput{{ID: &id1, Kind: ItemKindImage, FileName: "a.png"}}

	_, err := reconcileItems(existing, submitted, uuid.New)

	var validationErr common.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestReconcileItemsCountInvariant(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()

	existing := []PostItem{
		textItem(id1, 0, "a", TextStyleParagraph),
		imageItem(id2, 1, "b.png"),
	}

	submitted := []ItemInput{
		{ID: &id1, Kind: ItemKindText, Text: "a", Style: TextStyleParagraph},
		{Kind: ItemKindImage, FileName: "new.png"},
		{Kind: ItemKindText, Text: "tail", Style: TextStyleHeading},
	}

	items, err := reconcileItems(existing, submitted, uuid.New)
	require.NoError(t, err)

	// result length equals the submitted length regardless of how many
	// existing items were dropped
	assert.Len(t, items, len(submitted))
}
