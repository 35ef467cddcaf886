package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactEnquiry is a quote request submitted through the contact form.
// Email and Message are optional but always stored as columns; an absent
// value is persisted as the empty string, never omitted. Status is written
// as "new" on creation and is not updated by this application.
type ContactEnquiry struct {
	gorm.Model
	Reference   string `gorm:"size:36;uniqueIndex"`
	Name        string `gorm:"size:100;not null"`
	Phone       string `gorm:"size:40;not null"`
	Suburb      string `gorm:"size:100;not null"`
	Email       string `gorm:"size:255"`
	ProjectType string `gorm:"size:30;not null"` // pergola, decking, weatherboard, other
	Message     string `gorm:"type:text"`
	Status      string `gorm:"size:20;default:new"`
}

// TableName 返回自定义表名，保持与既有数据一致。
func (ContactEnquiry) TableName() string {
	return "contact_enquiries"
}

// BeforeCreate assigns the public reference used in confirmations and logs.
func (e *ContactEnquiry) BeforeCreate(tx *gorm.DB) error {
	if e.Reference == "" {
		e.Reference = uuid.New().String()
	}
	return nil
}
