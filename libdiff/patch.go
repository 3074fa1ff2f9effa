package libdiff

import (
	"fmt"

	"github.com/signadot/blockdoc/block"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/segmentio/encoding/json"
)

// Flatten encodes blocks as one JSON object keyed by block path:
//
//	{"$[0]": {"html": "..."}, "$[1]": {"name": "core/group", "attrs": {...}, "html": "..."}, ...}
//
// name is absent for freeform text and attrs when the block has none.
func Flatten(blocks []*block.Block) ([]byte, error) {
	res := map[string]map[string]any{}
	block.Walk(blocks, func(p block.Path, b *block.Block) bool {
		e := map[string]any{"html": b.InnerHTML()}
		if !b.IsFreeform() {
			e["name"] = b.Name
		}
		if b.Attrs != nil {
			e["attrs"] = b.Attrs
		}
		res[p.String()] = e
		return true
	})
	return json.Marshal(res)
}

// Patch returns the JSON merge patch (RFC 7386) from the flattened form
// of from to that of to.
func Patch(from, to []*block.Block) ([]byte, error) {
	a, err := Flatten(from)
	if err != nil {
		return nil, err
	}
	b, err := Flatten(to)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("error creating merge patch: %w", err)
	}
	return patch, nil
}

// Apply applies a patch made by Patch to the flattened form of blocks.
func Apply(blocks []*block.Block, patch []byte) ([]byte, error) {
	a, err := Flatten(blocks)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.MergePatch(a, patch)
	if err != nil {
		return nil, fmt.Errorf("error applying merge patch: %w", err)
	}
	return res, nil
}
