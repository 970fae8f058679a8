// Package stream extracts the routing discriminator from raw wire messages
// and maps it to application-defined tags.
//
// Routing decisions only need the top-level "stream" field, so this package
// reads it with gjson instead of unmarshalling the whole envelope; a large
// initial-load payload costs the same to classify as a one-line event.
//
// Extraction never fails: a message that is not JSON, has no stream field, or
// carries a non-string stream value classifies to the caller's fallback tag.
// A malformed push message must never take down the client's update loop.
package stream

import (
	"github.com/tidwall/gjson"
)

// ExtractName returns the top-level stream name of a raw message. The second
// return value is false when the message is not valid JSON, the stream field
// is absent, or its value is not a string.
func ExtractName(raw []byte) (string, bool) {
	if !gjson.ValidBytes(raw) {
		return "", false
	}
	value := gjson.GetBytes(raw, "stream")
	if value.Type != gjson.String {
		return "", false
	}
	return value.String(), true
}

// Classify maps a raw message to an application tag. The classifier is
// applied to the extracted stream name; messages with no extractable stream
// name yield fallback. The classifier must be total over strings; this
// package does not validate it.
func Classify[T any](raw []byte, classify func(name string) T, fallback T) T {
	name, ok := ExtractName(raw)
	if !ok {
		return fallback
	}
	return classify(name)
}
