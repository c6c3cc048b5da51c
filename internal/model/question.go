package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question keeps its text twice: QuestionText is the legacy plain column,
// QuestionBody the structured {"text": ...} document. Use Content/SetContent
// rather than touching the columns directly.
type Question struct {
	ID           string         `gorm:"column:question_id;primaryKey;type:varchar(36)" json:"question_id"`
	SessionID    string         `gorm:"column:session_id;type:varchar(36);not null;index" json:"session_id"`
	QuestionText string         `gorm:"column:question_text;type:text" json:"-"`
	QuestionBody datatypes.JSON `gorm:"column:question_body" json:"-"`
	Position     int            `gorm:"column:position;not null;default:0" json:"position"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

func (q *Question) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == "" {
		q.ID = GenerateUUID()
	}
	return
}

// Content reads the question text, preferring the structured body.
func (q *Question) Content() QuestionContent {
	if c, ok := contentFromDocument(q.QuestionBody); ok {
		return c
	}
	return PlainText(q.QuestionText)
}

// SetContent writes both representations.
func (q *Question) SetContent(c QuestionContent) error {
	doc, err := c.MarshalDocument()
	if err != nil {
		return err
	}
	q.QuestionText = c.Text()
	q.QuestionBody = datatypes.JSON(doc)
	return nil
}
