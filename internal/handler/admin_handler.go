package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/myhomesite/internal/db"
	"github.com/myhomesite/internal/service"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 处理管理员登录请求
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	var user db.User
	if err := a.db.Where("username = ?", payload.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged in", "username": user.Username})
}

// Logout 处理管理员登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

type settingsPayload struct {
	BusinessPhone string `json:"business_phone"`
	BusinessEmail string `json:"business_email"`
	ServiceArea   string `json:"service_area"`
	AboutMarkdown string `json:"about_markdown"`
}

// GetSiteSettings returns the editable site settings.
func (a *API) GetSiteSettings(c *gin.Context) {
	settings, err := a.settings.GetSettings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business_phone": settings.BusinessPhone,
		"business_email": settings.BusinessEmail,
		"service_area":   settings.ServiceArea,
		"about_markdown": settings.AboutMarkdown,
	})
}

// UpdateSiteSettings saves the editable site settings.
func (a *API) UpdateSiteSettings(c *gin.Context) {
	var payload settingsPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	settings, err := a.settings.UpdateSettings(service.SiteSettingsInput{
		BusinessPhone: payload.BusinessPhone,
		BusinessEmail: payload.BusinessEmail,
		ServiceArea:   payload.ServiceArea,
		AboutMarkdown: payload.AboutMarkdown,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Settings saved",
		"business_phone": settings.BusinessPhone,
		"business_email": settings.BusinessEmail,
		"service_area":   settings.ServiceArea,
		"about_markdown": settings.AboutMarkdown,
	})
}
