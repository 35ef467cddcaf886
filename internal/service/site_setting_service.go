package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/myhomesite/internal/db"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	aboutMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
	)
	aboutSanitizer = bluemonday.UGCPolicy()
)

// Defaults shown until the owner edits the settings.
const (
	DefaultBusinessPhone = "0435 761 255"
	DefaultBusinessEmail = "info@myhomeconstruction.com.au"
	DefaultServiceArea   = "Melbourne Metro & Surrounding Suburbs"
	DefaultAboutMarkdown = "For over a decade, My Home Constructions has been enhancing Melbourne " +
		"homes with premium craftsmanship and personalised service.\n\n" +
		"Every pergola, deck, and weatherboard project is approached with the same " +
		"dedication to quality and attention to detail."
)

// SiteSettings 描述后台可配置的站点信息。
type SiteSettings struct {
	BusinessPhone string
	BusinessEmail string
	ServiceArea   string
	AboutMarkdown string
}

// SiteSettingsInput 用于更新站点设置。
type SiteSettingsInput struct {
	BusinessPhone string
	BusinessEmail string
	ServiceArea   string
	AboutMarkdown string
}

// SiteSettingService 提供站点设置的读取与更新能力。
type SiteSettingService struct {
	db *gorm.DB
}

// NewSiteSettingService 构造 SiteSettingService。
func NewSiteSettingService(gdb *gorm.DB) *SiteSettingService {
	return &SiteSettingService{db: gdb}
}

var settingKeys = []string{
	db.SettingKeyBusinessPhone,
	db.SettingKeyBusinessEmail,
	db.SettingKeyServiceArea,
	db.SettingKeyAboutMarkdown,
}

// GetSettings 读取站点设置，如未设置将返回默认值。
func (s *SiteSettingService) GetSettings() (SiteSettings, error) {
	result := SiteSettings{
		BusinessPhone: DefaultBusinessPhone,
		BusinessEmail: DefaultBusinessEmail,
		ServiceArea:   DefaultServiceArea,
		AboutMarkdown: DefaultAboutMarkdown,
	}

	var records []db.SiteSetting
	if err := s.db.Where("key IN ?", settingKeys).Find(&records).Error; err != nil {
		return result, fmt.Errorf("load site settings: %w", err)
	}

	for _, record := range records {
		value := strings.TrimSpace(record.Value)
		if value == "" {
			continue
		}
		switch record.Key {
		case db.SettingKeyBusinessPhone:
			result.BusinessPhone = value
		case db.SettingKeyBusinessEmail:
			result.BusinessEmail = value
		case db.SettingKeyServiceArea:
			result.ServiceArea = value
		case db.SettingKeyAboutMarkdown:
			result.AboutMarkdown = record.Value
		}
	}

	return result, nil
}

// UpdateSettings 保存站点设置，空字段回退默认值。
func (s *SiteSettingService) UpdateSettings(input SiteSettingsInput) (SiteSettings, error) {
	sanitized := SiteSettings{
		BusinessPhone: strings.TrimSpace(input.BusinessPhone),
		BusinessEmail: strings.TrimSpace(input.BusinessEmail),
		ServiceArea:   strings.TrimSpace(input.ServiceArea),
		AboutMarkdown: strings.TrimSpace(input.AboutMarkdown),
	}

	if sanitized.BusinessPhone == "" {
		sanitized.BusinessPhone = DefaultBusinessPhone
	}
	if sanitized.BusinessEmail == "" {
		sanitized.BusinessEmail = DefaultBusinessEmail
	}
	if sanitized.ServiceArea == "" {
		sanitized.ServiceArea = DefaultServiceArea
	}
	if sanitized.AboutMarkdown == "" {
		sanitized.AboutMarkdown = DefaultAboutMarkdown
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := upsertSetting(tx, db.SettingKeyBusinessPhone, sanitized.BusinessPhone); err != nil {
			return err
		}
		if err := upsertSetting(tx, db.SettingKeyBusinessEmail, sanitized.BusinessEmail); err != nil {
			return err
		}
		if err := upsertSetting(tx, db.SettingKeyServiceArea, sanitized.ServiceArea); err != nil {
			return err
		}
		if err := upsertSetting(tx, db.SettingKeyAboutMarkdown, sanitized.AboutMarkdown); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return SiteSettings{}, fmt.Errorf("update site settings: %w", err)
	}

	return sanitized, nil
}

// AboutHTML renders the configured about copy to sanitized HTML for the page.
func (s *SiteSettingService) AboutHTML(settings SiteSettings) template.HTML {
	var buf bytes.Buffer
	if err := aboutMarkdown.Convert([]byte(settings.AboutMarkdown), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(settings.AboutMarkdown))
	}
	return template.HTML(aboutSanitizer.SanitizeBytes(buf.Bytes()))
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	setting := db.SiteSetting{Key: key, Value: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}
