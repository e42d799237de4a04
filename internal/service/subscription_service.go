package service

import (
	"errors"
	"strings"

	"github.com/wakepress/internal/db"
	"gorm.io/gorm"
)

var (
	ErrAlreadySubscribed = errors.New("email is already subscribed")
	ErrEmailMissing      = errors.New("email is required")
)

// SubscriptionService manages the newsletter subscriber list.
type SubscriptionService struct {
	db *gorm.DB
}

// NewSubscriptionService creates a SubscriptionService instance.
func NewSubscriptionService(gdb *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: gdb}
}

// Subscribe records a new subscriber. The unique index on email is the
// duplicate guard: a concurrent or repeated subscribe for the same
// address surfaces as ErrAlreadySubscribed, not as a second row.
func (s *SubscriptionService) Subscribe(email string) (*db.Subscription, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailMissing
	}

	subscription := db.Subscription{Email: email}
	if err := s.db.Create(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}
	return &subscription, nil
}

// ListEmails returns every subscriber address.
func (s *SubscriptionService) ListEmails() ([]string, error) {
	var emails []string
	if err := s.db.Model(&db.Subscription{}).
		Order("id asc").
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
