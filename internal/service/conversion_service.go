package service

import (
	"github.com/myhomesite/internal/db"
	"gorm.io/gorm"
)

// ConversionService records conversion events for submitted enquiries.
// It is the injected best-effort tracker: a missing service is a no-op and a
// failed write changes nothing about the submission that triggered it.
type ConversionService struct {
	db     *gorm.DB
	sendTo string
}

// NewConversionService creates a ConversionService. sendTo is the ad-platform
// conversion label attached to each event, and may be empty.
func NewConversionService(gdb *gorm.DB, sendTo string) *ConversionService {
	return &ConversionService{db: gdb, sendTo: sendTo}
}

// TrackConversion stores one event for the enquiry, swallowing any error.
func (s *ConversionService) TrackConversion(enquiry *db.ContactEnquiry) {
	if s == nil || s.db == nil || enquiry == nil {
		return
	}

	event := db.ConversionEvent{
		EnquiryReference: enquiry.Reference,
		SendTo:           s.sendTo,
	}
	// Best effort only; a missed event is not worth surfacing anywhere.
	_ = s.db.Create(&event).Error
}
