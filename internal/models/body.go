package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrBodyNotObject is returned for a POST body that is valid JSON but not an object.
var ErrBodyNotObject = errors.New("request body must be a JSON object")

// RequestBody is a decoded POST body. Field values stay raw JSON so that
// type coercion is left to the database.
type RequestBody map[string]json.RawMessage

// ParseRequestBody decodes a POST body. An empty body decodes as {}.
func ParseRequestBody(raw []byte) (RequestBody, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return RequestBody{}, nil
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrBodyNotObject
	}

	var body RequestBody
	if err := json.Unmarshal(trimmed, &body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrBodyNotObject
		}
		return nil, fmt.Errorf("invalid JSON in request body: %w", err)
	}
	return body, nil
}

// Action returns the "action" field. A missing or non-string action yields
// ok == false and never matches a write action.
func (b RequestBody) Action() (action string, ok bool) {
	raw, present := b["action"]
	if !present || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", false
	}
	if err := json.Unmarshal(raw, &action); err != nil {
		return "", false
	}
	return action, true
}

// Text returns a field as the text sent to the database. Strings are
// unquoted, other scalars keep their JSON spelling and JSON null becomes nil.
// present reports whether the key exists at all.
func (b RequestBody) Text(key string) (value *string, present bool) {
	raw, present := b[key]
	if !present {
		return nil, false
	}

	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, true
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		s = string(trimmed)
	}
	return &s, true
}

// TextOr is Text with fallback used only when the key is absent.
func (b RequestBody) TextOr(key, fallback string) *string {
	value, present := b.Text(key)
	if !present {
		return &fallback
	}
	return value
}

// MealTime returns the meal's time, or now formatted as HH:MM when absent.
func (b RequestBody) MealTime(now time.Time) *string {
	return b.TextOr("time", now.Format(MealTimeLayout))
}
