package postservice

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/okuznetsov/blogware/internal/common"
)

// reconcileItems merges the submitted item list into the post's existing
// items. Submitted items carrying an id update the matching existing item in
// place and keep its identity; items without an id become new items with
// fresh ids; existing items absent from the submission are dropped. The
// result is ordered exactly as submitted, with Order set to the dense index.
//
// A submitted id that does not belong to the post fails with
// ErrItemNotInPost. The same id submitted twice fails validation, as does an
// attempt to change the kind of an existing item.
func reconcileItems(existing []PostItem, submitted []ItemInput, newID func() uuid.UUID) ([]PostItem, error) {
	byID := make(map[uuid.UUID]PostItem, len(existing))
	for _, item := range existing {
		byID[item.Meta().ID] = item
	}

	seen := make(map[uuid.UUID]bool, len(submitted))
	items := make([]PostItem, 0, len(submitted))

	for i, in := range submitted {
		if in.ID == nil {
			items = append(items, newItem(in, newID(), i))
			continue
		}

		id := *in.ID
		if seen[id] {
			return nil, common.NewValidationError(fmt.Sprintf("items[%d].id", i), fmt.Sprintf("item %s is submitted more than once", id), nil)
		}
		seen[id] = true

		current, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("item %s does not belong to the post: %w", id, ErrItemNotInPost)
		}

		switch item := current.(type) {
		case *TextItem:
			if in.Kind != ItemKindText {
				return nil, common.NewValidationError(fmt.Sprintf("items[%d].kind", i), "the kind of an existing item cannot be changed", nil)
			}
			item.Text = in.Text
			item.Style = in.Style
			item.Order = i
			items = append(items, item)
		case *ImageItem:
			if in.Kind != ItemKindImage {
				return nil, common.NewValidationError(fmt.Sprintf("items[%d].kind", i), "the kind of an existing item cannot be changed", nil)
			}
			item.Alt = in.Alt
			item.Description = in.Description
			item.FileName = in.FileName
			item.Order = i
			items = append(items, item)
		}
	}

	return items, nil
}
