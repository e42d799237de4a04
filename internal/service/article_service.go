package service

import (
	"errors"
	"strings"
	"time"

	"github.com/wakepress/internal/db"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound      = errors.New("article not found")
	ErrArticleFieldsMissing = errors.New("article is missing required fields")
)

const (
	// ArticlePageSize is the fixed number of articles per paginated request.
	ArticlePageSize = 4

	// Comment counters start at a fixed seed value; nothing increments them.
	initialCommentCount = 5
)

// ArticleService wraps article related database operations.
type ArticleService struct {
	db *gorm.DB
}

// ArticleInput represents fields accepted when publishing an article.
type ArticleInput struct {
	Title       string
	Description string
	Category    string
	Content     string
	Image       string
	Author      string
}

// ArticlePage aggregates one page of articles with pagination counters.
type ArticlePage struct {
	Articles   []db.Article
	Total      int64
	TotalPages int
	Page       int
}

// CategoryGroup holds the articles of one category, in input order.
type CategoryGroup struct {
	Category string
	Articles []db.Article
}

// NewArticleService creates an ArticleService instance.
func NewArticleService(gdb *gorm.DB) *ArticleService {
	return &ArticleService{db: gdb}
}

// Create persists a new article. The publication date is stamped now and
// the comment counter starts at its fixed seed.
func (s *ArticleService) Create(input ArticleInput) (*db.Article, error) {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Category) == "" ||
		strings.TrimSpace(input.Content) == "" {
		return nil, ErrArticleFieldsMissing
	}

	article := db.Article{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Content:     input.Content,
		Image:       input.Image,
		Author:      input.Author,
		Date:        time.Now(),
		Comments:    initialCommentCount,
	}

	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Get fetches an article by id.
func (s *ArticleService) Get(id uint) (*db.Article, error) {
	var article db.Article
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// ListAll returns every article, newest first.
func (s *ArticleService) ListAll() ([]db.Article, error) {
	var articles []db.Article
	if err := s.db.Order("created_at desc").Order("id desc").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Page returns one fixed-size page of articles, newest first. Pages past
// the end of the collection come back empty with correct counters.
func (s *ArticleService) Page(page int) (ArticlePage, error) {
	result := ArticlePage{Page: normalizePage(page)}

	if err := s.db.Model(&db.Article{}).Count(&result.Total).Error; err != nil {
		return result, err
	}
	result.TotalPages = calculateTotalPages(result.Total, ArticlePageSize)

	offset := (result.Page - 1) * ArticlePageSize
	if err := s.db.Order("created_at desc").Order("id desc").
		Limit(ArticlePageSize).
		Offset(offset).
		Find(&result.Articles).Error; err != nil {
		return result, err
	}

	return result, nil
}

// CategorizeArticles partitions articles by category, preserving each
// article's relative order and first-seen order of the categories.
func CategorizeArticles(articles []db.Article) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[string]int)

	for _, article := range articles {
		at, seen := index[article.Category]
		if !seen {
			at = len(groups)
			index[article.Category] = at
			groups = append(groups, CategoryGroup{Category: article.Category})
		}
		groups[at].Articles = append(groups[at].Articles, article)
	}

	return groups
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func calculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
