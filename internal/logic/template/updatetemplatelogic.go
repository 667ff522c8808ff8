// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UpdateTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateTemplateLogic {
	return &UpdateTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UpdateTemplate overwrites every editable field of an existing template.
func (l *UpdateTemplateLogic) UpdateTemplate(id *types.TemplateIdRequest, req *types.TemplateForm) error {
	row, err := l.svcCtx.Templates.FindOne(l.ctx, id.Id)
	if err != nil {
		return storeError(err)
	}

	applyForm(row, req)
	if err := l.svcCtx.Templates.Update(l.ctx, row); err != nil {
		return storeError(err)
	}

	l.Infow("template updated", logx.Field("id", row.Id), logx.Field("layout", row.TemplateName))
	return nil
}
