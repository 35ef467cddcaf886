package db

import "gorm.io/gorm"

// SiteSetting 存储后台可配置的站点级键值对。
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeyBusinessPhone 表示对外展示的联系电话。
	SettingKeyBusinessPhone = "business_phone"
	// SettingKeyBusinessEmail 表示对外展示的联系邮箱。
	SettingKeyBusinessEmail = "business_email"
	// SettingKeyServiceArea 表示服务区域文案。
	SettingKeyServiceArea = "service_area"
	// SettingKeyAboutMarkdown 表示关于我们的 Markdown 文案。
	SettingKeyAboutMarkdown = "about_markdown"
)
