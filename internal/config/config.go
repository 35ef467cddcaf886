package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	TemplateGlob  string
	StaticDir     string
	UploadDir     string
	UploadURLPath string
	AdminUsername string
	AdminPassword string

	// Resend credentials for the enquiry notification path. An empty API key
	// disables sending without affecting page render.
	ResendAPIKey  string
	ResendBaseURL string
	EnquiryFrom   string
	EnquiryTo     string

	// Google Ads conversion label forwarded to the page for the optional
	// client-side tracking hook.
	ConversionLabel string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "myhome.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "myhome-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	templateGlob := strings.TrimSpace(os.Getenv("TEMPLATE_GLOB"))
	if templateGlob == "" {
		templateGlob = "web/template/*.html"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "web/static"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "web/static/uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/static/uploads"
	}

	enquiryFrom := strings.TrimSpace(os.Getenv("ENQUIRY_FROM_EMAIL"))
	if enquiryFrom == "" {
		enquiryFrom = "onboarding@resend.dev"
	}

	enquiryTo := strings.TrimSpace(os.Getenv("ENQUIRY_TO_EMAIL"))
	if enquiryTo == "" {
		enquiryTo = "info@myhomeconstruction.com.au"
	}

	return AppConfig{
		ListenAddr:      listenAddr,
		Port:            port,
		DatabasePath:    databasePath,
		SessionSecret:   sessionSecret,
		GinMode:         ginMode,
		TemplateGlob:    templateGlob,
		StaticDir:       staticDir,
		UploadDir:       uploadDir,
		UploadURLPath:   uploadURLPath,
		AdminUsername:   strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPassword:   strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		ResendAPIKey:    strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		ResendBaseURL:   strings.TrimSpace(os.Getenv("RESEND_BASE_URL")),
		EnquiryFrom:     enquiryFrom,
		EnquiryTo:       enquiryTo,
		ConversionLabel: strings.TrimSpace(os.Getenv("CONVERSION_LABEL")),
	}
}
