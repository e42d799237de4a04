package router

import (
	"html/template"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/wakepress/internal/config"
	"github.com/wakepress/internal/handler"
)

// New 配置 Gin 引擎和路由
func New(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("wakepress_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
	})
	r.LoadHTMLGlob(cfg.TemplateGlob)

	// 上传文件按永久缓存策略对外提供
	uploads := r.Group(cfg.UploadURLPath, func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
	})
	uploads.Static("/", cfg.UploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 公共页面路由
	r.GET("/", api.ShowHome)
	r.GET("/articles/:page", api.ListArticlePage)
	r.GET("/article", api.ShowArticleForm)
	r.GET("/article/:id", api.ShowArticle)
	r.GET("/thank", api.ShowThankYou)

	r.POST("/subscribe", api.Subscribe)
	r.POST("/contact", api.Contact)
	r.POST("/send-confirmation-email/:articleId", api.SendConfirmationEmail)

	r.GET("/login", api.ShowLoginPage)
	r.POST("/login", api.Login)
	r.GET("/logout", api.Logout)

	// 需要认证的管理路由（未配置管理员口令时保持开放）
	admin := r.Group("")
	admin.Use(api.AuthRequired())
	{
		admin.GET("/upload", api.ShowUploadForm)
		admin.POST("/upload-article", api.UploadArticle)
		admin.GET("/addgallery", api.ShowGalleryAdmin)
		admin.POST("/addgallery", api.CreateGalleryItem)
		admin.POST("/delete/:id", api.DeleteGalleryItem)
	}

	return r
}
