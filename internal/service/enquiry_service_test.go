package service

import (
	"errors"
	"testing"

	"github.com/myhomesite/internal/db"
	"github.com/myhomesite/internal/mailer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeNotifier struct {
	enabled bool
	fail    bool
	calls   int
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) NotifyEnquiry(details mailer.EnquiryDetails) (string, error) {
	f.calls++
	if f.fail {
		return "", errors.New("provider unreachable")
	}
	return "email-123", nil
}

type fakeTracker struct {
	calls int
}

func (f *fakeTracker) TrackConversion(enquiry *db.ContactEnquiry) { f.calls++ }

func setupEnquiryTestDB(t *testing.T, migrateEnquiries bool) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	models := []interface{}{&db.ConversionEvent{}}
	if migrateEnquiries {
		models = append(models, &db.ContactEnquiry{})
	}
	if err := gdb.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		gdb.Migrator().DropTable(&db.ContactEnquiry{}, &db.ConversionEvent{})
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func validInput() EnquiryInput {
	return EnquiryInput{
		Name:        "Sarah Mitchell",
		Phone:       "0435 761 255",
		Suburb:      "Ringwood",
		ProjectType: "decking",
	}
}

func TestSubmitPersistsWithNewStatus(t *testing.T) {
	gdb, cleanup := setupEnquiryTestDB(t, true)
	defer cleanup()

	notifier := &fakeNotifier{enabled: true}
	tracker := &fakeTracker{}
	svc := NewEnquiryService(gdb, notifier, tracker)

	input := validInput()
	input.Message = "Looking at a merbau deck out back"
	enquiry, err := svc.Submit(input)
	if err != nil {
		t.Fatalf("failed to submit enquiry: %v", err)
	}

	if enquiry.Status != EnquiryStatusNew {
		t.Fatalf("expected status %q, got %q", EnquiryStatusNew, enquiry.Status)
	}
	if enquiry.Reference == "" {
		t.Fatalf("expected a reference to be assigned")
	}
	if enquiry.Email != "" {
		t.Fatalf("expected absent email stored as empty string, got %q", enquiry.Email)
	}

	var stored db.ContactEnquiry
	if err := gdb.First(&stored, enquiry.ID).Error; err != nil {
		t.Fatalf("expected enquiry persisted: %v", err)
	}

	if notifier.calls != 1 {
		t.Fatalf("expected notifier called once, got %d", notifier.calls)
	}
	if tracker.calls != 1 {
		t.Fatalf("expected tracker called once, got %d", tracker.calls)
	}
}

func TestSubmitValidation(t *testing.T) {
	gdb, cleanup := setupEnquiryTestDB(t, true)
	defer cleanup()

	notifier := &fakeNotifier{enabled: true}
	svc := NewEnquiryService(gdb, notifier, nil)

	tests := []struct {
		name    string
		mutate  func(*EnquiryInput)
		wantErr error
	}{
		{"missing name", func(in *EnquiryInput) { in.Name = "  " }, ErrEnquiryNameRequired},
		{"missing phone", func(in *EnquiryInput) { in.Phone = "" }, ErrEnquiryPhoneRequired},
		{"missing suburb", func(in *EnquiryInput) { in.Suburb = "" }, ErrEnquirySuburbRequired},
		{"bad project type", func(in *EnquiryInput) { in.ProjectType = "carport" }, ErrEnquiryProjectInvalid},
		{"empty project type", func(in *EnquiryInput) { in.ProjectType = "" }, ErrEnquiryProjectInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			if _, err := svc.Submit(input); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if notifier.calls != 0 {
		t.Fatalf("expected no notifications for invalid input, got %d", notifier.calls)
	}
}

func TestSubmitPersistFailureSkipsNotify(t *testing.T) {
	gdb, cleanup := setupEnquiryTestDB(t, false)
	defer cleanup()

	notifier := &fakeNotifier{enabled: true}
	tracker := &fakeTracker{}
	svc := NewEnquiryService(gdb, notifier, tracker)

	if _, err := svc.Submit(validInput()); err == nil {
		t.Fatalf("expected error when enquiry table is missing")
	}

	if notifier.calls != 0 {
		t.Fatalf("expected notifier never invoked after persist failure, got %d calls", notifier.calls)
	}
	if tracker.calls != 0 {
		t.Fatalf("expected tracker never invoked after persist failure, got %d calls", tracker.calls)
	}
}

func TestSubmitNotifyFailureStillSucceeds(t *testing.T) {
	gdb, cleanup := setupEnquiryTestDB(t, true)
	defer cleanup()

	notifier := &fakeNotifier{enabled: true, fail: true}
	svc := NewEnquiryService(gdb, notifier, &fakeTracker{})

	enquiry, err := svc.Submit(validInput())
	if err != nil {
		t.Fatalf("notify failure must not fail the submission: %v", err)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected notifier attempted once, got %d", notifier.calls)
	}
	if enquiry.Status != EnquiryStatusNew {
		t.Fatalf("expected persisted status new, got %q", enquiry.Status)
	}
}

func TestSubmitWithoutCollaborators(t *testing.T) {
	gdb, cleanup := setupEnquiryTestDB(t, true)
	defer cleanup()

	svc := NewEnquiryService(gdb, nil, nil)
	if _, err := svc.Submit(validInput()); err != nil {
		t.Fatalf("nil notifier and tracker must degrade to no-ops: %v", err)
	}
}

func TestSubmitDisabledNotifierIsSkipped(t *testing.T) {
	gdb, cleanup := setupEnquiryTestDB(t, true)
	defer cleanup()

	notifier := &fakeNotifier{enabled: false}
	svc := NewEnquiryService(gdb, notifier, nil)

	if _, err := svc.Submit(validInput()); err != nil {
		t.Fatalf("failed to submit enquiry: %v", err)
	}
	if notifier.calls != 0 {
		t.Fatalf("disabled notifier must not be invoked, got %d calls", notifier.calls)
	}
}

func TestListEnquiriesNewestFirst(t *testing.T) {
	gdb, cleanup := setupEnquiryTestDB(t, true)
	defer cleanup()

	svc := NewEnquiryService(gdb, nil, nil)
	for _, suburb := range []string{"Ringwood", "Brunswick", "Footscray"} {
		input := validInput()
		input.Suburb = suburb
		if _, err := svc.Submit(input); err != nil {
			t.Fatalf("failed to seed enquiry: %v", err)
		}
	}

	result, err := svc.List(EnquiryFilter{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("failed to list enquiries: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("expected total 3, got %d", result.Total)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items on first page, got %d", len(result.Items))
	}
	if result.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", result.TotalPages)
	}
}
