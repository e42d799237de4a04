package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/wakepress/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts article markdown into sanitized HTML for templates.
func renderMarkdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// ShowHome renders the homepage with all articles and gallery items, newest first.
func (a *API) ShowHome(c *gin.Context) {
	articles, err := a.articles.ListAll()
	if err != nil {
		a.log.WithError(err).Error("failed to load articles for homepage")
		a.renderErrorPage(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	galleryItems, err := a.galleries.ListNewestFirst()
	if err != nil {
		a.log.WithError(err).Error("failed to load gallery for homepage")
		a.renderErrorPage(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":        a.cfg.SiteName,
		"articles":     articles,
		"galleryItems": galleryItems,
	})
}

// ShowArticle renders a single article. A malformed id and a missing
// record are distinct 404s rather than a 500.
func (a *API) ShowArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderErrorPage(c, http.StatusNotFound, "Invalid article ID")
		return
	}

	article, err := a.articles.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			a.renderErrorPage(c, http.StatusNotFound, "Article not found")
			return
		}
		a.log.WithError(err).Error("failed to fetch article")
		a.renderErrorPage(c, http.StatusInternalServerError, "Internal Server Error. Failed to fetch article.")
		return
	}

	c.HTML(http.StatusOK, "article.html", gin.H{
		"title":   article.Title,
		"article": article,
		"content": renderMarkdown(article.Content),
	})
}

// ShowThankYou renders the thank-you page with articles grouped by category.
func (a *API) ShowThankYou(c *gin.Context) {
	articles, err := a.articles.ListAll()
	if err != nil {
		a.log.WithError(err).Error("failed to load articles for thank-you page")
		a.renderErrorPage(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "thank.html", gin.H{
		"title":               a.cfg.SiteName,
		"categorizedArticles": service.CategorizeArticles(articles),
	})
}
