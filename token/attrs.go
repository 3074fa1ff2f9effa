package token

import (
	"github.com/segmentio/encoding/json"
)

// DecodeAttrs decodes an attribute payload. Anything that is not a JSON
// object yields nil; decoding never fails the scan.
func DecodeAttrs(payload string) map[string]any {
	if payload == "" {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return nil
	}
	return m
}
