package postservice

import (
	"github.com/google/uuid"
)

type ItemKind string

const (
	ItemKindText  ItemKind = "text"
	ItemKindImage ItemKind = "image"
)

type TextStyle string

const (
	TextStyleHeading   TextStyle = "heading"
	TextStyleParagraph TextStyle = "paragraph"
)

// ItemMeta carries the identity and position every post item has regardless
// of its kind. Order is a dense zero-based index within the post.
type ItemMeta struct {
	ID    uuid.UUID
	Order int
}

// PostItem is a closed sum: a post item is a TextItem or an ImageItem,
// nothing else. The unexported method keeps the set of variants sealed so
// every consumption site can type-switch exhaustively.
type PostItem interface {
	Meta() *ItemMeta
	Kind() ItemKind
	sealed()
}

type TextItem struct {
	ItemMeta
	Text  string
	Style TextStyle
}

func (t *TextItem) Meta() *ItemMeta { return &t.ItemMeta }
func (t *TextItem) Kind() ItemKind  { return ItemKindText }
func (*TextItem) sealed()           {}

type ImageItem struct {
	ItemMeta
	Alt         string
	Description string
	FileName    string
}

func (i *ImageItem) Meta() *ItemMeta { return &i.ItemMeta }
func (i *ImageItem) Kind() ItemKind  { return ItemKindImage }
func (*ImageItem) sealed()           {}

// ItemInput is the submitted form of a post item: a kind discriminator plus
// the union of variant fields. A nil ID means a new item; a non-nil ID must
// refer to an item already on the post.
type ItemInput struct {
	ID          *uuid.UUID `json:"id"`
	Kind        ItemKind   `json:"kind"`
	Text        string     `json:"text,omitempty"`
	Style       TextStyle  `json:"style,omitempty"`
	Alt         string     `json:"alt,omitempty"`
	Description string     `json:"description,omitempty"`
	FileName    string     `json:"file_name,omitempty"`
}

// newItem builds the variant entity for a submitted item. Callers validate
// the kind before this point.
func newItem(in ItemInput, id uuid.UUID, order int) PostItem {
	meta := ItemMeta{ID: id, Order: order}

	switch in.Kind {
	case ItemKindImage:
		return &ImageItem{
			ItemMeta:    meta,
			Alt:         in.Alt,
			Description: in.Description,
			FileName:    in.FileName,
		}
	default:
		return &TextItem{
			ItemMeta: meta,
			Text:     in.Text,
			Style:    in.Style,
		}
	}
}
