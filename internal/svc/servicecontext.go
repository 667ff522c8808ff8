// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"github.com/joeblew999/plat-mailcraft/internal/config"
	"github.com/joeblew999/plat-mailcraft/internal/layout"
	"github.com/joeblew999/plat-mailcraft/internal/model"
	"github.com/joeblew999/plat-mailcraft/internal/session"
	"github.com/joeblew999/plat-mailcraft/pkg/imagestore"
	"github.com/joeblew999/plat-mailcraft/pkg/queue"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config     config.Config
	Templates  model.EmailTemplatesModel
	SendEvents model.SendEventsModel
	Layouts    *layout.Renderer
	Images     *imagestore.Store
	Sessions   *session.Store
	Queue      *queue.Queue
}

func NewServiceContext(c config.Config, conn sqlx.SqlConn, layouts *layout.Renderer,
	images *imagestore.Store, sessions *session.Store, q *queue.Queue) *ServiceContext {
	return &ServiceContext{
		Config:     c,
		Templates:  model.NewEmailTemplatesModel(conn),
		SendEvents: model.NewSendEventsModel(conn),
		Layouts:    layouts,
		Images:     images,
		Sessions:   sessions,
		Queue:      q,
	}
}
