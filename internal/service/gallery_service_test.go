package service

import (
	"testing"

	"github.com/myhomesite/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGalleryTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.GalleryImage{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		gdb.Migrator().DropTable(&db.GalleryImage{})
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestGalleryCreateAssignsDisplayOrder(t *testing.T) {
	gdb, cleanup := setupGalleryTestDB(t)
	defer cleanup()

	svc := NewGalleryService(gdb)
	if _, err := svc.Create(GalleryInput{}); err == nil {
		t.Fatalf("expected error for missing image URL")
	}

	first, err := svc.Create(GalleryInput{
		Title:    "Merbau Deck",
		ImageURL: "https://example.com/deck.jpg",
		Category: "decking",
	})
	if err != nil {
		t.Fatalf("failed to create gallery image: %v", err)
	}
	if first.DisplayOrder == 0 {
		t.Fatalf("expected display order to be assigned")
	}

	second, err := svc.Create(GalleryInput{
		Title:    "Colorbond Pergola",
		ImageURL: "https://example.com/pergola.jpg",
		Category: "pergola",
	})
	if err != nil {
		t.Fatalf("failed to create second image: %v", err)
	}
	if second.DisplayOrder <= first.DisplayOrder {
		t.Fatalf("expected display order %d > %d", second.DisplayOrder, first.DisplayOrder)
	}
}

func TestGalleryCreateRejectsUnknownCategory(t *testing.T) {
	gdb, cleanup := setupGalleryTestDB(t)
	defer cleanup()

	svc := NewGalleryService(gdb)
	if _, err := svc.Create(GalleryInput{
		ImageURL: "https://example.com/x.jpg",
		Category: "landscaping",
	}); err != ErrGalleryCategoryInvalid {
		t.Fatalf("expected ErrGalleryCategoryInvalid, got %v", err)
	}
}

func TestGalleryListOrderedAscending(t *testing.T) {
	gdb, cleanup := setupGalleryTestDB(t)
	defer cleanup()

	svc := NewGalleryService(gdb)
	orders := []int{30, 10, 20}
	for i, order := range orders {
		if _, err := svc.Create(GalleryInput{
			Title:        []string{"Third", "First", "Second"}[i],
			ImageURL:     "https://example.com/img.jpg",
			DisplayOrder: order,
		}); err != nil {
			t.Fatalf("failed to seed image: %v", err)
		}
	}

	items, err := svc.ListOrdered()
	if err != nil {
		t.Fatalf("failed to list images: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if items[i].Title != want {
			t.Fatalf("expected item %d to be %q, got %q", i, want, items[i].Title)
		}
	}
}

func TestGalleryListOrderedEmpty(t *testing.T) {
	gdb, cleanup := setupGalleryTestDB(t)
	defer cleanup()

	items, err := NewGalleryService(gdb).ListOrdered()
	if err != nil {
		t.Fatalf("failed to list images: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestGalleryUpdateAndDelete(t *testing.T) {
	gdb, cleanup := setupGalleryTestDB(t)
	defer cleanup()

	svc := NewGalleryService(gdb)
	item, err := svc.Create(GalleryInput{
		Title:    "Before",
		ImageURL: "https://example.com/before.jpg",
	})
	if err != nil {
		t.Fatalf("failed to create gallery image: %v", err)
	}

	updated, err := svc.Update(item.ID, GalleryInput{
		Title:        "After",
		ImageURL:     "https://example.com/after.jpg",
		Category:     "weatherboard",
		DisplayOrder: 7,
	})
	if err != nil {
		t.Fatalf("failed to update gallery image: %v", err)
	}
	if updated.Title != "After" || updated.DisplayOrder != 7 {
		t.Fatalf("expected updated fields to persist")
	}

	if err := svc.Delete(item.ID); err != nil {
		t.Fatalf("failed to delete gallery image: %v", err)
	}
	if _, err := svc.Get(item.ID); err != ErrGalleryNotFound {
		t.Fatalf("expected ErrGalleryNotFound after delete, got %v", err)
	}

	if err := svc.Delete(9999); err != ErrGalleryNotFound {
		t.Fatalf("expected ErrGalleryNotFound for unknown id, got %v", err)
	}
}
