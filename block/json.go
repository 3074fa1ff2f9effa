package block

import (
	"github.com/segmentio/encoding/json"
)

type jsonBlock struct {
	Name         *string        `json:"name"`
	Attributes   map[string]any `json:"attributes"`
	Children     []*Block       `json:"children"`
	InnerContent string         `json:"innerContent"`
}

// MarshalJSON encodes
//
//	{"name": string|null, "attributes": object|null, "children": [...], "innerContent": string}
//
// where innerContent is the inner HTML.
func (b *Block) MarshalJSON() ([]byte, error) {
	jb := jsonBlock{
		Attributes:   b.Attrs,
		Children:     b.Children,
		InnerContent: b.InnerHTML(),
	}
	if !b.IsFreeform() {
		jb.Name = &b.Name
	}
	if jb.Children == nil {
		jb.Children = []*Block{}
	}
	return json.Marshal(jb)
}
