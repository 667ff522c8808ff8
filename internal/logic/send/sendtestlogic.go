// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package send

import (
	"context"
	"errors"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/joeblew999/plat-mailcraft/internal/model"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/joeblew999/plat-mailcraft/pkg/mail"
	"github.com/joeblew999/plat-mailcraft/pkg/queue"

	"github.com/zeromicro/go-zero/core/logx"
)

type SendTestLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendTestLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendTestLogic {
	return &SendTestLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendTest queues a stored template for delivery to one address.
func (l *SendTestLogic) SendTest(id *types.TemplateIdRequest, req *types.SendTestRequest) (string, error) {
	if _, err := l.svcCtx.Templates.FindOne(l.ctx, id.Id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", errorx.ErrNotFound("template not found")
		}
		return "", err
	}

	to, err := mail.ParseAddress(req.To)
	if err != nil {
		return "", errorx.ErrBadRequest("a single valid recipient address is required")
	}

	if l.svcCtx.Queue == nil {
		return "", errorx.ErrInternal("test sends are not configured")
	}

	jobID, err := l.svcCtx.Queue.Enqueue(l.ctx, queue.SendJob{
		TemplateID:  id.Id,
		Recipient:   to,
		MaxAttempts: l.svcCtx.Config.Delivery.MaxRetries,
	})
	if err != nil {
		return "", err
	}

	l.Infow("test send queued", logx.Field("job_id", jobID), logx.Field("template_id", id.Id))
	return jobID, nil
}
