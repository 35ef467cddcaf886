package router

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/myhomesite/internal/config"
	"github.com/myhomesite/internal/db"
	"github.com/myhomesite/internal/handler"
)

// Setup 配置 Gin 引擎和路由
func Setup(cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("myhome_session", store))

	// 加载模板并添加自定义函数；glob 无匹配时跳过（JSON-only 场景）
	if matches, _ := filepath.Glob(cfg.TemplateGlob); len(matches) > 0 {
		r.SetFuncMap(template.FuncMap{
			"add": func(a, b int) int {
				return a + b
			},
		})
		r.LoadHTMLGlob(cfg.TemplateGlob)
	}

	// 静态文件服务
	r.Static("/static", cfg.StaticDir)

	api := handler.NewAPI(db.DB, cfg)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// 公开路由
	r.GET("/", api.ShowHome)
	r.GET("/api/gallery", api.GetGalleryImages)
	r.POST("/api/enquiries", api.SubmitEnquiry)

	// 邮件中继：与静态托管共用时需要宽松的跨域策略
	relay := r.Group("/api/send-contact-email")
	relay.Use(cors.New(cors.Config{
		AllowOrigins:              []string{"*"},
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type", "Authorization", "X-Client-Info", "Apikey"},
		OptionsResponseStatusCode: http.StatusOK,
	}))
	relay.POST("", api.SendContactEmail)
	relay.OPTIONS("", api.RelayPreflight)

	// 后台管理路由
	admin := r.Group("/admin/api")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/enquiries", api.ListEnquiries)
			auth.GET("/gallery", api.GetGalleryImages)
			auth.POST("/gallery", api.CreateGalleryImage)
			auth.PUT("/gallery/:id", api.UpdateGalleryImage)
			auth.DELETE("/gallery/:id", api.DeleteGalleryImage)
			auth.POST("/uploads", api.UploadGalleryImage)
			auth.GET("/settings", api.GetSiteSettings)
			auth.PUT("/settings", api.UpdateSiteSettings)
		}
	}

	return r
}
