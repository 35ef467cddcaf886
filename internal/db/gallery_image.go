package db

import "gorm.io/gorm"

// GalleryImage 定义施工案例图片模型
type GalleryImage struct {
	gorm.Model
	Title        string `gorm:"size:150"`
	Description  string `gorm:"type:text"`
	ImageURL     string `gorm:"size:500;not null"`
	ImageWidth   int
	ImageHeight  int
	Category     string `gorm:"size:50"` // pergola, decking, weatherboard, other
	DisplayOrder int    `gorm:"default:0;index"`
}

// TableName 返回自定义表名，避免冲突
func (GalleryImage) TableName() string {
	return "gallery_images"
}
