package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/joeblew999/plat-mailcraft/internal/config"
	"github.com/joeblew999/plat-mailcraft/internal/layout"
	"github.com/joeblew999/plat-mailcraft/internal/model"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/pkg/db"
	"github.com/joeblew999/plat-mailcraft/pkg/delivery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	t.Setenv("MAILCRAFT_DB_PATH", "/tmp/mc-test.db")
	t.Setenv("MAILCRAFT_UPLOAD_DIR", "/tmp/mc-uploads")

	var c config.Config
	applyDefaults(&c)

	assert.Equal(t, "/tmp/mc-test.db", c.Database.Path)
	assert.Equal(t, "/tmp/mc-uploads", c.Uploads.Dir)
	assert.Equal(t, InsecureSecret, c.Session.Secret)
	assert.Equal(t, 1, c.Delivery.Workers)

	c = config.Config{}
	c.Database.Path = "custom.db"
	c.Session.Secret = "s3cret"
	c.Delivery.Workers = 4
	applyDefaults(&c)
	assert.Equal(t, "custom.db", c.Database.Path)
	assert.Equal(t, "s3cret", c.Session.Secret)
	assert.Equal(t, 4, c.Delivery.Workers)
}

func TestDeliveryConfig(t *testing.T) {
	var c config.Config
	c.Delivery.RetryBackoff = "30s"
	c.Delivery.MaxBackoff = "bogus"
	c.Delivery.RateLimit = 10

	cfg := deliveryConfig(c)
	assert.Equal(t, 30*time.Second, cfg.RetryBackoff)
	assert.Equal(t, delivery.DefaultConfig().MaxBackoff, cfg.MaxBackoff)
	assert.Equal(t, 10, cfg.RateLimit)
}

func newRendererContext(t *testing.T) *svc.ServiceContext {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	layouts, err := layout.NewRenderer()
	require.NoError(t, err)

	return svc.NewServiceContext(config.Config{}, database.SqlConn(), layouts, nil, nil, nil)
}

func TestTemplateRenderer(t *testing.T) {
	svcCtx := newRendererContext(t)
	ctx := context.Background()

	res, err := svcCtx.Templates.Insert(ctx, &model.EmailTemplates{
		Title:        "Welcome",
		Subject:      "Hello there",
		Body:         "Hi",
		TemplateName: "template3",
	})
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	r := newTemplateRenderer(svcCtx)
	msg, err := r.RenderMessage(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hello there", msg.Subject)
	assert.Contains(t, msg.HTML, "Hi")

	_, err = r.RenderMessage(ctx, id+100)
	assert.ErrorIs(t, err, delivery.ErrPermanent)
}
