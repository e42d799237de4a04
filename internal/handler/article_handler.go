package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wakepress/internal/mailer"
	"github.com/wakepress/internal/service"
)

// ListArticlePage returns one page of articles as JSON with pagination
// counters. A missing or non-numeric page falls back to 1; pages past
// the end return an empty list with correct totals.
func (a *API) ListArticlePage(c *gin.Context) {
	page := parsePositiveInt(c.Param("page"), 1)

	result, err := a.articles.Page(page)
	if err != nil {
		a.log.WithError(err).Error("failed to fetch paginated articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":    result.Articles,
		"totalPages":  result.TotalPages,
		"currentPage": result.Page,
	})
}

// ShowArticleForm renders the blank article submission page.
func (a *API) ShowArticleForm(c *gin.Context) {
	c.HTML(http.StatusOK, "article_form.html", gin.H{
		"title": a.cfg.SiteName,
	})
}

// ShowUploadForm renders the article upload page.
func (a *API) ShowUploadForm(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html", gin.H{
		"title": a.cfg.SiteName,
	})
}

// UploadArticle publishes a new article from the multipart form and
// broadcasts it to every subscriber. Broadcast sends are fire-and-forget:
// they never fail the request or roll back the article.
func (a *API) UploadArticle(c *gin.Context) {
	imagePath, err := a.saveUpload(c, "image")
	if err != nil {
		a.log.WithError(err).Error("failed to store uploaded image")
		a.renderErrorPage(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	article, err := a.articles.Create(service.ArticleInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Content:     c.PostForm("content"),
		Image:       imagePath,
		Author:      a.cfg.SiteAuthor,
	})
	if err != nil {
		if errors.Is(err, service.ErrArticleFieldsMissing) {
			a.renderErrorPage(c, http.StatusBadRequest, "Title, description, category and content are required")
			return
		}
		a.log.WithError(err).Error("failed to save article")
		a.renderErrorPage(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	recipients, err := a.subscriptions.ListEmails()
	if err != nil {
		// The article is already published; a broken subscriber query
		// only suppresses the announcement.
		a.log.WithError(err).Error("failed to load subscribers for broadcast")
	} else {
		a.mail.BroadcastArticle(recipients, mailer.ArticleAnnouncement{
			Title:       article.Title,
			Category:    article.Category,
			Description: article.Description,
			Link:        a.articleLink(c.Request.Host, article.ID),
		})
	}

	c.Redirect(http.StatusFound, "/")
}

// SendConfirmationEmail re-sends the welcome email for an existing article's audience.
func (a *API) SendConfirmationEmail(c *gin.Context) {
	id, err := parseUintParam(c, "articleId")
	if err != nil {
		respondError(c, http.StatusNotFound, "Invalid article ID")
		return
	}

	if _, err := a.articles.Get(id); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, "Article not found")
			return
		}
		a.log.WithError(err).Error("failed to fetch article for confirmation email")
		respondError(c, http.StatusInternalServerError, "Error sending confirmation email.")
		return
	}

	var payload struct {
		Email string `json:"email" form:"email" binding:"required,email"`
	}
	if err := c.ShouldBind(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid email address.")
		return
	}

	if err := a.mail.SendConfirmation(payload.Email); err != nil {
		a.log.WithError(err).Error("failed to send confirmation email")
		respondError(c, http.StatusInternalServerError, "Error sending confirmation email.")
		return
	}

	respondOK(c, "Confirmation email sent successfully.")
}

// articleLink builds the public deep link used in broadcast bodies.
func (a *API) articleLink(host string, id uint) string {
	if host == "" {
		return fmt.Sprintf("%s/article/%d", a.cfg.SiteBaseURL, id)
	}
	return fmt.Sprintf("https://%s/article/%d", host, id)
}
