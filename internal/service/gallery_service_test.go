package service

import (
	"errors"
	"testing"
	"time"

	"github.com/wakepress/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGalleryTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.GalleryItem{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestGalleryCreateAndList(t *testing.T) {
	gdb, cleanup := setupGalleryTestDB(t)
	defer cleanup()

	svc := NewGalleryService(gdb)

	if _, err := svc.Create(GalleryInput{}); !errors.Is(err, ErrGalleryFieldsMissing) {
		t.Fatalf("expected ErrGalleryFieldsMissing, got %v", err)
	}

	older := db.GalleryItem{Title: "Older", Category: "Projects", Link: "https://example.com/1"}
	older.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := gdb.Create(&older).Error; err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}

	item, err := svc.Create(GalleryInput{
		Title:     "Newer",
		Category:  "Badges and Certifications",
		Link:      "https://example.com/2",
		BadgeName: "Go Expert",
	})
	if err != nil {
		t.Fatalf("failed to create gallery item: %v", err)
	}
	if item.BadgeName != "Go Expert" {
		t.Fatalf("expected badge name to persist, got %q", item.BadgeName)
	}

	items, err := svc.ListNewestFirst()
	if err != nil {
		t.Fatalf("failed to list gallery items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Newer" {
		t.Fatalf("expected newest item first, got %q", items[0].Title)
	}
}

func TestGalleryDelete(t *testing.T) {
	gdb, cleanup := setupGalleryTestDB(t)
	defer cleanup()

	svc := NewGalleryService(gdb)

	keep, err := svc.Create(GalleryInput{Title: "Keep", Category: "Projects"})
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	remove, err := svc.Create(GalleryInput{Title: "Remove", Category: "Projects"})
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	if err := svc.Delete(remove.ID + 100); !errors.Is(err, ErrGalleryNotFound) {
		t.Fatalf("expected ErrGalleryNotFound for unknown id, got %v", err)
	}

	items, err := svc.ListNewestFirst()
	if err != nil {
		t.Fatalf("failed to list items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("failed delete must leave the collection unchanged, got %d items", len(items))
	}

	if err := svc.Delete(remove.ID); err != nil {
		t.Fatalf("failed to delete item: %v", err)
	}

	items, err = svc.ListNewestFirst()
	if err != nil {
		t.Fatalf("failed to list items: %v", err)
	}
	if len(items) != 1 || items[0].ID != keep.ID {
		t.Fatalf("expected exactly the kept item to remain, got %+v", items)
	}
}
