// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/joeblew999/plat-mailcraft/pkg/mail"

	"github.com/zeromicro/go-zero/core/logx"
)

const recentEvents = 20

type ViewTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewViewTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ViewTemplateLogic {
	return &ViewTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ViewTemplate renders a stored template with compatibility hints and its recent test sends.
func (l *ViewTemplateLogic) ViewTemplate(req *types.TemplateIdRequest) (*types.ViewPage, error) {
	row, err := l.svcCtx.Templates.FindOne(l.ctx, req.Id)
	if err != nil {
		return nil, storeError(err)
	}

	lay, err := row.Layout()
	if err != nil {
		return nil, errorx.ErrNotFound("template has an invalid layout")
	}

	html, err := l.svcCtx.Layouts.Render(lay, row.Fields())
	if err != nil {
		return nil, err
	}

	page := &types.ViewPage{
		Template: toItem(row),
		Layout:   lay.Description(),
		Html:     html,
		Issues:   mail.ValidateHTML(html),
	}

	events, err := l.svcCtx.SendEvents.ListByTemplate(l.ctx, row.Id, recentEvents)
	if err != nil {
		l.Errorf("list send events: %v", err)
		return page, nil
	}
	for _, e := range events {
		page.Events = append(page.Events, types.SendEventItem{
			EventType: e.EventType,
			Recipient: e.Recipient,
			Details:   e.Details,
			CreatedAt: e.CreatedAt.Format(timeLayout),
		})
	}

	return page, nil
}
