package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/joeblew999/plat-mailcraft/internal/config"
	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/joeblew999/plat-mailcraft/internal/handler"
	"github.com/joeblew999/plat-mailcraft/internal/layout"
	"github.com/joeblew999/plat-mailcraft/internal/session"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	pathconf "github.com/joeblew999/plat-mailcraft/pkg/config"
	"github.com/joeblew999/plat-mailcraft/pkg/db"
	"github.com/joeblew999/plat-mailcraft/pkg/delivery"
	"github.com/joeblew999/plat-mailcraft/pkg/imagestore"
	"github.com/joeblew999/plat-mailcraft/pkg/mail"
	"github.com/joeblew999/plat-mailcraft/pkg/mjml"
	"github.com/joeblew999/plat-mailcraft/pkg/queue"
	gomjml "github.com/preslavrachev/gomjml/mjml"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/prometheus"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/rest"
)

// InsecureSecret signs session cookies when no secret is configured.
const InsecureSecret = "dev-secret-key-change-in-production"

// Server wraps the web UI and the test-send delivery workers.
type Server struct {
	config config.Config
	group  *service.ServiceGroup
}

// New creates a new server instance.
func New(c config.Config) (*Server, error) {
	// Register global error handler for proper HTTP status codes
	errorx.RegisterErrorHandler()

	// Enable go-zero prometheus metrics (required for metric.CounterVec/HistogramVec/GaugeVec to record)
	prometheus.Enable()

	applyDefaults(&c)

	// Layout compilation and database opening are independent
	var layouts *layout.Renderer
	var database *db.DB

	err := mr.Finish(
		func() error {
			var e error
			layouts, e = layout.NewRenderer(
				mjml.WithCache(c.Render.Cache),
				mjml.WithCacheLimit(c.Render.CacheLimit),
				mjml.WithDebug(c.Render.Debug),
			)
			return e
		},
		func() error {
			var e error
			database, e = db.Open(c.Database.Path)
			return e
		},
	)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	images, err := imagestore.New(c.Uploads.Dir)
	if err != nil {
		database.Close()
		return nil, err
	}

	ttl, err := time.ParseDuration(c.Session.TTL)
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
	}
	sessions, err := session.NewStore(c.Session.Secret, ttl, session.WithSecureCookie(c.Session.SecureCookie))
	if err != nil {
		database.Close()
		return nil, err
	}

	// Queue storage goes through database/sql, the send log through go-zero sqlx.SqlConn
	conn := database.SqlConn()
	sendQueue, err := queue.NewQueue(context.Background(), database.DB, queue.DefaultName)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}
	events, err := queue.NewEventRecorder(conn)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create event recorder: %w", err)
	}
	sendQueue.Events = events

	svcCtx := svc.NewServiceContext(c, conn, layouts, images, sessions, sendQueue)

	engine := delivery.NewEngine(sendQueue, newTemplateRenderer(svcCtx), smtpConfig(c), deliveryConfig(c))

	server, err := rest.NewServer(c.RestConf)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	handler.RegisterHandlers(server, svcCtx)

	// Expose Prometheus metrics endpoint
	server.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})

	// Register cleanup via proc shutdown listeners
	proc.AddShutdownListener(func() {
		logx.Info("Flushing send events")
		events.Flush()
	})
	proc.AddShutdownListener(func() {
		logx.Info("Closing database")
		database.Close()
	})
	proc.AddShutdownListener(func() {
		gomjml.StopASTCacheCleanup()
	})

	// Delivery stops after the web server (reverse order)
	group := service.NewServiceGroup()
	group.Add(newDeliveryService(engine, c.Delivery.Workers))
	group.Add(server)

	logx.Infow("mailcraft server configured",
		logx.Field("ui", fmt.Sprintf("http://%s:%d", c.Host, c.Port)),
		logx.Field("database", c.Database.Path),
		logx.Field("uploads", c.Uploads.Dir),
		logx.Field("layouts", len(layout.All)),
		logx.Field("smtp", c.SMTP.Username != ""),
	)

	return &Server{config: c, group: group}, nil
}

// Start starts all services. Blocks until shutdown signal.
func (s *Server) Start() {
	s.group.Start()
}

// Stop stops all services.
func (s *Server) Stop() {
	s.group.Stop()
}

// applyDefaults fills settings left empty by unset environment variables.
func applyDefaults(c *config.Config) {
	if c.Database.Path == "" {
		c.Database.Path = pathconf.GetDatabasePath()
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = pathconf.GetUploadPath()
	}
	if c.Session.Secret == "" {
		logx.Error("SESSION_SECRET is not set, signing sessions with an insecure development secret")
		c.Session.Secret = InsecureSecret
	}
	if c.Delivery.Workers <= 0 {
		c.Delivery.Workers = 1
	}
}

func smtpConfig(c config.Config) mail.Config {
	return mail.Config{
		SMTPHost:  c.SMTP.Host,
		SMTPPort:  c.SMTP.Port,
		Username:  c.SMTP.Username,
		Password:  c.SMTP.Password,
		FromEmail: c.SMTP.FromEmail,
		FromName:  c.SMTP.FromName,
	}
}

func deliveryConfig(c config.Config) delivery.Config {
	cfg := delivery.DefaultConfig()
	if d, err := time.ParseDuration(c.Delivery.RetryBackoff); err == nil && d > 0 {
		cfg.RetryBackoff = d
	}
	if d, err := time.ParseDuration(c.Delivery.MaxBackoff); err == nil && d > 0 {
		cfg.MaxBackoff = d
	}
	cfg.RateLimit = c.Delivery.RateLimit
	return cfg
}
