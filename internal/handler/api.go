package handler

import (
	"github.com/sirupsen/logrus"
	"github.com/wakepress/internal/config"
	"github.com/wakepress/internal/mailer"
	"github.com/wakepress/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db            *gorm.DB
	articles      *service.ArticleService
	subscriptions *service.SubscriptionService
	galleries     *service.GalleryService
	mail          *mailer.Mailer
	cfg           config.AppConfig
	log           *logrus.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, mail *mailer.Mailer, cfg config.AppConfig, log *logrus.Logger) *API {
	if log == nil {
		log = logrus.New()
	}

	return &API{
		db:            gdb,
		articles:      service.NewArticleService(gdb),
		subscriptions: service.NewSubscriptionService(gdb),
		galleries:     service.NewGalleryService(gdb),
		mail:          mail,
		cfg:           cfg,
		log:           log,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
