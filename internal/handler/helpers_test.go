package handler_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/wakepress/internal/config"
	"github.com/wakepress/internal/db"
	"github.com/wakepress/internal/handler"
	"github.com/wakepress/internal/mailer"
	"github.com/wakepress/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ginOnce sync.Once

type recordingSender struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failAll bool
}

func (r *recordingSender) Send(msg mailer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.New("transport unavailable")
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingSender) messages() []mailer.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]mailer.Message, len(r.sent))
	copy(out, r.sent)
	return out
}

type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
	sender *recordingSender
	mail   *mailer.Mailer
	cfg    config.AppConfig
}

func setupTestServer(t *testing.T, mutate func(*config.AppConfig)) (*testServer, func()) {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Subscription{}, &db.Article{}, &db.GalleryItem{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	cfg := config.AppConfig{
		ListenAddr:    ":0",
		DatabasePath:  "file::memory:",
		SessionSecret: "test-secret",
		GinMode:       gin.TestMode,
		UploadDir:     t.TempDir(),
		UploadURLPath: "/uploads",
		TemplateGlob:  "../../web/template/*.html",
		SiteBaseURL:   "https://site.test",
		SiteName:      "Africa Wake Up",
		SiteAuthor:    "Deon Gewers",
		MailSender:    "owner@site.test",
		ContactInbox:  "owner@site.test",
	}
	if mutate != nil {
		mutate(&cfg)
	}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	sender := &recordingSender{}
	mail := mailer.New(sender, cfg.MailSender, cfg.SiteName, cfg.SiteAuthor, log)

	api := handler.NewAPI(gdb, mail, cfg, log)
	engine := router.New(api, cfg)

	ts := &testServer{engine: engine, db: gdb, sender: sender, mail: mail, cfg: cfg}
	return ts, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func seedArticle(t *testing.T, gdb *gorm.DB, title, category string, createdAt time.Time) db.Article {
	t.Helper()

	article := db.Article{
		Title:       title,
		Description: "description of " + title,
		Author:      "Deon Gewers",
		Category:    category,
		Date:        createdAt,
		Comments:    5,
		Content:     "Hello **world** from " + title,
	}
	article.CreatedAt = createdAt
	if err := gdb.Create(&article).Error; err != nil {
		t.Fatalf("failed to seed article %q: %v", title, err)
	}
	return article
}

func seedGalleryItem(t *testing.T, gdb *gorm.DB, title string, createdAt time.Time) db.GalleryItem {
	t.Helper()

	item := db.GalleryItem{
		Title:    title,
		Category: "Projects",
		Link:     "https://example.com/" + title,
	}
	item.CreatedAt = createdAt
	if err := gdb.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed gallery item %q: %v", title, err)
	}
	return item
}

func seedSubscriber(t *testing.T, gdb *gorm.DB, email string) {
	t.Helper()

	if err := gdb.Create(&db.Subscription{Email: email}).Error; err != nil {
		t.Fatalf("failed to seed subscriber %q: %v", email, err)
	}
}
