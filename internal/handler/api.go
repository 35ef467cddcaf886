package handler

import (
	"github.com/myhomesite/internal/config"
	"github.com/myhomesite/internal/mailer"
	"github.com/myhomesite/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	enquiries *service.EnquiryService
	galleries *service.GalleryService
	settings  *service.SiteSettingService
	mail      *mailer.Resend

	enquiryTo       string
	enquiryFrom     string
	conversionLabel string
	uploadDir       string
	uploadURL       string
}

// NewAPI constructs a handler set with shared services wired per config.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	mail := mailer.NewResend(cfg.ResendAPIKey)
	if cfg.ResendBaseURL != "" {
		mail.SetBaseURL(cfg.ResendBaseURL)
	}

	notifier := mailer.NewEnquiryMailer(mail, cfg.EnquiryTo, cfg.EnquiryFrom)
	tracker := service.NewConversionService(gdb, cfg.ConversionLabel)

	return &API{
		db:              gdb,
		enquiries:       service.NewEnquiryService(gdb, notifier, tracker),
		galleries:       service.NewGalleryService(gdb),
		settings:        service.NewSiteSettingService(gdb),
		mail:            mail,
		enquiryTo:       cfg.EnquiryTo,
		enquiryFrom:     cfg.EnquiryFrom,
		conversionLabel: cfg.ConversionLabel,
		uploadDir:       cfg.UploadDir,
		uploadURL:       cfg.UploadURLPath,
	}
}
