package config

import (
	"github.com/zeromicro/go-zero/rest"
)

// Config holds the server configuration.
type Config struct {
	rest.RestConf

	Session  SessionConfig  `json:",optional"`
	Database DatabaseConfig `json:",optional"`
	Uploads  UploadsConfig  `json:",optional"`
	Render   RenderConfig   `json:",optional"`
	Delivery DeliveryConfig `json:",optional"`
	SMTP     SMTPConfig     `json:",optional"`
}

// SessionConfig holds session cookie and CSRF token settings.
type SessionConfig struct {
	Secret       string `json:",optional"`
	TTL          string `json:",default=24h"`
	SecureCookie bool   `json:",default=false"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	Path string `json:",default=./.data/mailcraft.db"`
}

// UploadsConfig holds image upload settings.
type UploadsConfig struct {
	Dir string `json:",default=./.data/uploads"`
}

// RenderConfig holds MJML renderer settings.
type RenderConfig struct {
	Cache      bool `json:",default=true"`
	CacheLimit int  `json:",default=512"`
	Debug      bool `json:",default=false"`
}

// DeliveryConfig holds test-send delivery settings.
type DeliveryConfig struct {
	Workers      int    `json:",default=2"`
	MaxRetries   int    `json:",default=3"`
	RetryBackoff string `json:",default=5m"`
	MaxBackoff   string `json:",default=4h"`
	RateLimit    int    `json:",default=60"`
}

// SMTPConfig holds SMTP email delivery settings.
type SMTPConfig struct {
	Host      string `json:",default=smtp.gmail.com"`
	Port      string `json:",default=587"`
	Username  string `json:",optional"`
	Password  string `json:",optional"`
	FromEmail string `json:",optional"`
	FromName  string `json:",default=mailcraft"`
}
