package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrQuestionContentMissing = errors.New("question_text or question_body is required")
	ErrQuestionBodyInvalid    = errors.New(`question_body must be an object with a string "text" field`)
)

// QuestionContent is either plain text or a structured document carrying a
// "text" key. The zero value is an empty plain text.
type QuestionContent struct {
	plain string
	doc   map[string]any
}

func PlainText(text string) QuestionContent {
	return QuestionContent{plain: text}
}

// Structured wraps a document; it must hold a string "text" entry.
func Structured(doc map[string]any) (QuestionContent, error) {
	if doc == nil {
		return QuestionContent{}, ErrQuestionBodyInvalid
	}
	if _, ok := doc["text"].(string); !ok {
		return QuestionContent{}, ErrQuestionBodyInvalid
	}
	cp := make(map[string]any, len(doc))
	for k, v := range doc {
		cp[k] = v
	}
	return QuestionContent{doc: cp}, nil
}

func (c QuestionContent) IsStructured() bool {
	return c.doc != nil
}

// Text is the display string.
func (c QuestionContent) Text() string {
	if c.doc != nil {
		s, _ := c.doc["text"].(string)
		return s
	}
	return c.plain
}

// Document returns the structured form; plain text becomes {"text": ...}.
func (c QuestionContent) Document() map[string]any {
	if c.doc == nil {
		return map[string]any{"text": c.plain}
	}
	out := make(map[string]any, len(c.doc))
	for k, v := range c.doc {
		out[k] = v
	}
	return out
}

func (c QuestionContent) MarshalDocument() ([]byte, error) {
	return json.Marshal(c.Document())
}

// ParseQuestionContent normalizes request input. A non-null body wins over
// text; text may itself be a JSON string or a structured object.
func ParseQuestionContent(text, body json.RawMessage) (QuestionContent, error) {
	if !isNullJSON(body) {
		return structuredFromRaw(body)
	}
	if isNullJSON(text) {
		return QuestionContent{}, ErrQuestionContentMissing
	}

	var s string
	if err := json.Unmarshal(text, &s); err == nil {
		return PlainText(s), nil
	}
	return structuredFromRaw(text)
}

func structuredFromRaw(raw json.RawMessage) (QuestionContent, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return QuestionContent{}, ErrQuestionBodyInvalid
	}
	return Structured(doc)
}

// decodeDocument keeps numbers as json.Number so re-encoding reproduces
// them exactly.
func decodeDocument(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after document")
	}
	return doc, nil
}

// contentFromDocument reads a stored body; ok is false when the row should
// fall back to the legacy text column.
func contentFromDocument(raw []byte) (QuestionContent, bool) {
	if isNullJSON(raw) {
		return QuestionContent{}, false
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return QuestionContent{}, false
	}
	c, err := Structured(doc)
	if err != nil {
		return QuestionContent{}, false
	}
	return c, true
}

func isNullJSON(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
