// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type EditTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewEditTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EditTemplateLogic {
	return &EditTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// EditTemplate returns the index page with one template loaded into the form.
func (l *EditTemplateLogic) EditTemplate(req *types.TemplateIdRequest) (*types.IndexPage, error) {
	row, err := l.svcCtx.Templates.FindOne(l.ctx, req.Id)
	if err != nil {
		return nil, storeError(err)
	}

	page, err := NewIndexLogic(l.ctx, l.svcCtx).Index(&types.StatusRequest{})
	if err != nil {
		return nil, err
	}

	item := toItem(row)
	page.Edit = &item
	return page, nil
}
