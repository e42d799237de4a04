package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const sessionAdminKey = "admin"

// authEnabled reports whether the admin gate is configured. With no
// ADMIN_PASSWORD hash set the site keeps its original open trust
// boundary and the mutation endpoints are public.
func (a *API) authEnabled() bool {
	return a.cfg.AdminPassword != ""
}

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": a.cfg.SiteName,
	})
}

// Login 处理管理员登录请求
func (a *API) Login(c *gin.Context) {
	password := c.PostForm("password")

	if err := bcrypt.CompareHashAndPassword([]byte(a.cfg.AdminPassword), []byte(password)); err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title": a.cfg.SiteName,
			"error": "Incorrect password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAdminKey, true)
	if err := session.Save(); err != nil {
		a.log.WithError(err).Error("failed to save admin session")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"title": a.cfg.SiteName,
			"error": "Failed to save session",
		})
		return
	}

	c.Redirect(http.StatusFound, "/addgallery")
}

// Logout 处理管理员登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

// AuthRequired 是一个简单的认证中间件
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authEnabled() {
			c.Next()
			return
		}

		session := sessions.Default(c)
		if admin, ok := session.Get(sessionAdminKey).(bool); !ok || !admin {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
