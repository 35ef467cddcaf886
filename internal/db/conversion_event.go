package db

import "gorm.io/gorm"

// ConversionEvent records a best-effort conversion for a submitted enquiry.
// Rows are written fire-and-forget; a write failure never affects the
// submission that produced it.
type ConversionEvent struct {
	gorm.Model
	EnquiryReference string `gorm:"size:36;index"`
	SendTo           string `gorm:"size:100"`
}

func (ConversionEvent) TableName() string {
	return "conversion_events"
}
