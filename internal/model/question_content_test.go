package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gorm.io/datatypes"
)

func TestParseQuestionContent(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		body       string
		wantText   string
		structured bool
		wantErr    error
	}{
		{name: "plain string", text: `"2+2=?"`, wantText: "2+2=?"},
		{name: "empty string is allowed", text: `""`, wantText: ""},
		{name: "body wins over text", text: `"old"`, body: `{"text":"Q1"}`, wantText: "Q1", structured: true},
		{name: "structured text field", text: `{"text":"from text"}`, wantText: "from text", structured: true},
		{name: "null body falls back to text", text: `"plain"`, body: `null`, wantText: "plain"},
		{name: "neither present", wantErr: ErrQuestionContentMissing},
		{name: "both null", text: `null`, body: `null`, wantErr: ErrQuestionContentMissing},
		{name: "body without text", body: `{"title":"x"}`, wantErr: ErrQuestionBodyInvalid},
		{name: "body with non string text", body: `{"text":5}`, wantErr: ErrQuestionBodyInvalid},
		{name: "text is a number", text: `42`, wantErr: ErrQuestionBodyInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var text, body json.RawMessage
			if tt.text != "" {
				text = json.RawMessage(tt.text)
			}
			if tt.body != "" {
				body = json.RawMessage(tt.body)
			}
			got, err := ParseQuestionContent(text, body)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Text() != tt.wantText {
				t.Errorf("Text() = %q, want %q", got.Text(), tt.wantText)
			}
			if got.IsStructured() != tt.structured {
				t.Errorf("IsStructured() = %v, want %v", got.IsStructured(), tt.structured)
			}
		})
	}
}

func TestQuestionSetContentWritesBothColumns(t *testing.T) {
	var q Question
	if err := q.SetContent(PlainText("2+2=?")); err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	if q.QuestionText != "2+2=?" {
		t.Errorf("legacy column = %q", q.QuestionText)
	}
	var doc map[string]any
	if err := json.Unmarshal(q.QuestionBody, &doc); err != nil {
		t.Fatalf("body is not json: %v", err)
	}
	if doc["text"] != "2+2=?" {
		t.Errorf("body text = %v", doc["text"])
	}
}

func TestQuestionContentPrefersStructuredBody(t *testing.T) {
	tests := []struct {
		name   string
		column string
		body   datatypes.JSON
		want   string
	}{
		{name: "structured wins", column: "legacy", body: datatypes.JSON(`{"text":"Q1"}`), want: "Q1"},
		{name: "no body", column: "legacy", want: "legacy"},
		{name: "null body", column: "legacy", body: datatypes.JSON(`null`), want: "legacy"},
		{name: "body without text", column: "legacy", body: datatypes.JSON(`{"img":"x"}`), want: "legacy"},
		{name: "broken body", column: "legacy", body: datatypes.JSON(`{`), want: "legacy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{QuestionText: tt.column, QuestionBody: tt.body}
			if got := q.Content().Text(); got != tt.want {
				t.Errorf("Content().Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredKeepsExtraKeys(t *testing.T) {
	c, err := Structured(map[string]any{"text": "Q", "hint": "think"})
	if err != nil {
		t.Fatalf("Structured: %v", err)
	}
	doc := c.Document()
	if doc["hint"] != "think" {
		t.Errorf("extra key lost: %v", doc)
	}
	doc["text"] = "mutated"
	if c.Text() != "Q" {
		t.Errorf("Document() must return a copy")
	}
}

func TestQuestionBodyKeepsLargeNumbers(t *testing.T) {
	body := json.RawMessage(`{"text":"Q","seed":12345678901234567890,"nonce":9007199254740993}`)
	c, err := ParseQuestionContent(nil, body)
	if err != nil {
		t.Fatalf("ParseQuestionContent: %v", err)
	}

	var q Question
	if err := q.SetContent(c); err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	stored := string(q.QuestionBody)
	for _, want := range []string{`"seed":12345678901234567890`, `"nonce":9007199254740993`} {
		if !strings.Contains(stored, want) {
			t.Errorf("stored body %s lost %s", stored, want)
		}
	}

	encoded, err := json.Marshal(q.Content().Document())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(encoded), `"nonce":9007199254740993`) {
		t.Errorf("read-back body %s lost precision", encoded)
	}
}

func TestGenerateSessionCode(t *testing.T) {
	code := GenerateSessionCode()
	if len(code) != SessionCodeLength {
		t.Fatalf("len = %d", len(code))
	}
	for _, r := range code {
		found := false
		for _, a := range sessionCodeAlphabet {
			if r == a {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("unexpected rune %q in %q", r, code)
		}
	}
}
