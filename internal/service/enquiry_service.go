package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/myhomesite/internal/db"
	"github.com/myhomesite/internal/mailer"
	"gorm.io/gorm"
)

var (
	ErrEnquiryNameRequired   = errors.New("enquiry name is required")
	ErrEnquiryPhoneRequired  = errors.New("enquiry phone is required")
	ErrEnquirySuburbRequired = errors.New("enquiry suburb is required")
	ErrEnquiryProjectInvalid = errors.New("enquiry project type is invalid")
	ErrEnquiryNotFound       = errors.New("enquiry not found")
)

// Project types accepted by the quote form.
const (
	ProjectTypePergola      = "pergola"
	ProjectTypeDecking      = "decking"
	ProjectTypeWeatherboard = "weatherboard"
	ProjectTypeOther        = "other"
)

// EnquiryStatusNew is the status every enquiry carries at creation. Nothing
// in this application moves an enquiry out of it.
const EnquiryStatusNew = "new"

// EnquiryNotifier delivers the owner notification for a persisted enquiry.
type EnquiryNotifier interface {
	Enabled() bool
	NotifyEnquiry(details mailer.EnquiryDetails) (string, error)
}

// ConversionTracker records a conversion event. Implementations must be safe
// to call fire-and-forget; the pipeline ignores everything about the call.
type ConversionTracker interface {
	TrackConversion(enquiry *db.ContactEnquiry)
}

// EnquiryInput represents fields accepted from the quote form.
type EnquiryInput struct {
	Name        string
	Phone       string
	Suburb      string
	Email       string
	ProjectType string
	Message     string
}

// EnquiryFilter describes filters for the admin enquiry list.
type EnquiryFilter struct {
	Status  string
	Page    int
	PerPage int
}

// EnquiryListResult aggregates paginated enquiry results.
type EnquiryListResult struct {
	Items      []db.ContactEnquiry
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// EnquiryService runs the submission pipeline: persist, notify, track.
// Persistence failure aborts the pipeline before the notifier is touched;
// a notify failure after a successful persist is logged and swallowed, so
// callers observe exactly two outcomes.
type EnquiryService struct {
	db       *gorm.DB
	notifier EnquiryNotifier
	tracker  ConversionTracker
}

// NewEnquiryService creates an EnquiryService. Both collaborators may be nil:
// a nil notifier or tracker degrades that step to a no-op.
func NewEnquiryService(gdb *gorm.DB, notifier EnquiryNotifier, tracker ConversionTracker) *EnquiryService {
	return &EnquiryService{db: gdb, notifier: notifier, tracker: tracker}
}

// Submit validates and persists an enquiry, then notifies and tracks.
func (s *EnquiryService) Submit(input EnquiryInput) (*db.ContactEnquiry, error) {
	if err := validateEnquiryInput(input); err != nil {
		return nil, err
	}

	enquiry := &db.ContactEnquiry{
		Name:        strings.TrimSpace(input.Name),
		Phone:       strings.TrimSpace(input.Phone),
		Suburb:      strings.TrimSpace(input.Suburb),
		Email:       strings.TrimSpace(input.Email),
		ProjectType: normalizeProjectType(input.ProjectType),
		Message:     strings.TrimSpace(input.Message),
		Status:      EnquiryStatusNew,
	}

	if err := s.db.Create(enquiry).Error; err != nil {
		log.Printf("[ENQUIRY] submit failed: database error: %v", err)
		return nil, fmt.Errorf("save enquiry: %w", err)
	}

	log.Printf("[ENQUIRY] saved: ref=%s project=%s suburb=%s", enquiry.Reference, enquiry.ProjectType, enquiry.Suburb)

	s.notify(enquiry)

	if s.tracker != nil {
		s.tracker.TrackConversion(enquiry)
	}

	return enquiry, nil
}

// notify delivers the owner email. The enquiry is already durable at this
// point, so delivery failure is logged and otherwise invisible to the caller.
func (s *EnquiryService) notify(enquiry *db.ContactEnquiry) {
	if s.notifier == nil {
		return
	}
	if !s.notifier.Enabled() {
		log.Printf("[ENQUIRY] notification skipped (mailer disabled): ref=%s", enquiry.Reference)
		return
	}

	id, err := s.notifier.NotifyEnquiry(mailer.EnquiryDetails{
		Name:        enquiry.Name,
		Phone:       enquiry.Phone,
		Suburb:      enquiry.Suburb,
		Email:       enquiry.Email,
		ProjectType: enquiry.ProjectType,
		Message:     enquiry.Message,
	})
	if err != nil {
		log.Printf("[ENQUIRY] warning: notification failed for ref=%s: %v", enquiry.Reference, err)
		return
	}
	log.Printf("[ENQUIRY] notification sent: ref=%s emailId=%s", enquiry.Reference, id)
}

// List returns enquiries for the admin view, newest first.
func (s *EnquiryService) List(filter EnquiryFilter) (EnquiryListResult, error) {
	result := EnquiryListResult{
		Page:    normalizePage(filter.Page),
		PerPage: normalizePerPage(filter.PerPage, 20),
	}

	query := s.db.Model(&db.ContactEnquiry{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&result.Total).Error; err != nil {
		return result, err
	}

	result.TotalPages = calculateTotalPages(result.Total, result.PerPage)
	offset := (result.Page - 1) * result.PerPage

	if err := query.Order("created_at desc").
		Limit(result.PerPage).
		Offset(offset).
		Find(&result.Items).Error; err != nil {
		return result, err
	}

	return result, nil
}

// Get fetches an enquiry by id.
func (s *EnquiryService) Get(id uint) (*db.ContactEnquiry, error) {
	var enquiry db.ContactEnquiry
	if err := s.db.First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

func validateEnquiryInput(input EnquiryInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrEnquiryNameRequired
	}
	if strings.TrimSpace(input.Phone) == "" {
		return ErrEnquiryPhoneRequired
	}
	if strings.TrimSpace(input.Suburb) == "" {
		return ErrEnquirySuburbRequired
	}
	if !validProjectType(normalizeProjectType(input.ProjectType)) {
		return ErrEnquiryProjectInvalid
	}
	return nil
}

func normalizeProjectType(projectType string) string {
	return strings.ToLower(strings.TrimSpace(projectType))
}

func validProjectType(projectType string) bool {
	switch projectType {
	case ProjectTypePergola, ProjectTypeDecking, ProjectTypeWeatherboard, ProjectTypeOther:
		return true
	}
	return false
}
