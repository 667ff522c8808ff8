// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-mailcraft/internal/model"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type SaveTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSaveTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SaveTemplateLogic {
	return &SaveTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SaveTemplate creates a template from the form and returns its id.
func (l *SaveTemplateLogic) SaveTemplate(req *types.TemplateForm) (int64, error) {
	var row model.EmailTemplates
	applyForm(&row, req)

	res, err := l.svcCtx.Templates.Insert(l.ctx, &row)
	if err != nil {
		return 0, storeError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	l.Infow("template saved", logx.Field("id", id), logx.Field("layout", row.TemplateName))
	return id, nil
}
