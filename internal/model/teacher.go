package model

import (
	"time"

	"gorm.io/gorm"
)

// Teacher owns sessions. Both profile fields are optional.
type Teacher struct {
	ID          string    `gorm:"column:teacher_id;primaryKey;type:varchar(36)" json:"teacher_id"`
	DisplayName *string   `gorm:"column:display_name;type:varchar(255)" json:"display_name"`
	Email       *string   `gorm:"column:email;type:varchar(255);index" json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Teacher) TableName() string {
	return "teachers"
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = GenerateUUID()
	}
	return
}
