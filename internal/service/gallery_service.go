package service

import (
	"errors"
	"strings"

	"github.com/wakepress/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound      = errors.New("gallery item not found")
	ErrGalleryFieldsMissing = errors.New("gallery item is missing required fields")
)

// GalleryService handles gallery item CRUD.
type GalleryService struct {
	db *gorm.DB
}

// GalleryInput represents fields accepted when creating a gallery item.
type GalleryInput struct {
	Title     string
	Category  string
	Image     string
	Link      string
	BadgeName string
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// ListNewestFirst returns all gallery items ordered by creation time descending.
func (s *GalleryService) ListNewestFirst() ([]db.GalleryItem, error) {
	var items []db.GalleryItem
	if err := s.db.Order("created_at desc").Order("id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new gallery item.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryItem, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Category) == "" {
		return nil, ErrGalleryFieldsMissing
	}

	item := db.GalleryItem{
		Title:     strings.TrimSpace(input.Title),
		Category:  strings.TrimSpace(input.Category),
		Image:     input.Image,
		Link:      strings.TrimSpace(input.Link),
		BadgeName: strings.TrimSpace(input.BadgeName),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a gallery item by id.
func (s *GalleryService) Delete(id uint) error {
	var item db.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGalleryNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}
