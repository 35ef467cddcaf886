package service

import (
	"errors"
	"strings"

	"github.com/myhomesite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound        = errors.New("gallery image not found")
	ErrGalleryImageMissing    = errors.New("gallery image is required")
	ErrGalleryCategoryInvalid = errors.New("gallery category is invalid")
)

// GalleryService handles gallery reads for the public page and CRUD for the
// admin side. Public rendering only ever uses ListOrdered.
type GalleryService struct {
	db *gorm.DB
}

// GalleryInput represents fields accepted when creating or updating a gallery image.
type GalleryInput struct {
	Title        string
	Description  string
	ImageURL     string
	ImageWidth   int
	ImageHeight  int
	Category     string
	DisplayOrder int
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// ListOrdered returns every gallery image ascending by display order.
// Ties keep whatever order the store returns them in.
func (s *GalleryService) ListOrdered() ([]db.GalleryImage, error) {
	var items []db.GalleryImage
	if err := s.db.Order("display_order asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a gallery image by id.
func (s *GalleryService) Get(id uint) (*db.GalleryImage, error) {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new gallery image.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryImage, error) {
	if err := validateGalleryInput(input); err != nil {
		return nil, err
	}

	displayOrder := input.DisplayOrder
	if displayOrder == 0 {
		order, err := s.nextDisplayOrder()
		if err != nil {
			return nil, err
		}
		displayOrder = order
	}

	item := db.GalleryImage{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		ImageWidth:   input.ImageWidth,
		ImageHeight:  input.ImageHeight,
		Category:     normalizeGalleryCategory(input.Category),
		DisplayOrder: displayOrder,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing gallery image.
func (s *GalleryService) Update(id uint, input GalleryInput) (*db.GalleryImage, error) {
	if err := validateGalleryInput(input); err != nil {
		return nil, err
	}

	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.ImageWidth = input.ImageWidth
	item.ImageHeight = input.ImageHeight
	item.Category = normalizeGalleryCategory(input.Category)
	item.DisplayOrder = input.DisplayOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a gallery image.
func (s *GalleryService) Delete(id uint) error {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGalleryNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}

func validateGalleryInput(input GalleryInput) error {
	if strings.TrimSpace(input.ImageURL) == "" {
		return ErrGalleryImageMissing
	}
	category := normalizeGalleryCategory(input.Category)
	if category != "" && !validProjectType(category) {
		return ErrGalleryCategoryInvalid
	}
	return nil
}

func normalizeGalleryCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePerPage(perPage, fallback int) int {
	if perPage <= 0 {
		return fallback
	}
	return perPage
}

func calculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	if total == 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func (s *GalleryService) nextDisplayOrder() (int, error) {
	var maxOrder int
	if err := s.db.Model(&db.GalleryImage{}).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}
