package events

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The backends are inconsistent about response envelopes: most routes return
// bare JSON, some wrap the payload in {"content": ...} (paging leftovers),
// a few in {"data": ...}. Shapes are tried in a fixed priority order and the
// first structurally valid one wins.

type listEnvelope struct {
	Content []json.RawMessage `json:"content"`
	Data    []json.RawMessage `json:"data"`
}

// unwrapList extracts the record array from a list response body.
func unwrapList(body []byte) ([]json.RawMessage, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(body, &arr); err == nil {
		return arr, nil
	}
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Content != nil {
			return env.Content, nil
		}
		if env.Data != nil {
			return env.Data, nil
		}
	}
	return nil, fmt.Errorf("unrecognized list response shape: %s", snippet(body))
}

type objectEnvelope struct {
	Content json.RawMessage `json:"content"`
	Data    json.RawMessage `json:"data"`
}

// unwrapObject extracts a single record from a response body that may be the
// record itself or an envelope around it.
func unwrapObject(body []byte) (json.RawMessage, error) {
	var env objectEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unrecognized object response shape: %s", snippet(body))
	}
	if isObject(env.Content) {
		return env.Content, nil
	}
	if isObject(env.Data) {
		return env.Data, nil
	}
	if isObject(body) {
		return body, nil
	}
	return nil, fmt.Errorf("unrecognized object response shape: %s", snippet(body))
}

func isObject(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

// snippet truncates a response body for error messages.
func snippet(body []byte) string {
	const max = 200
	s := string(bytes.TrimSpace(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
