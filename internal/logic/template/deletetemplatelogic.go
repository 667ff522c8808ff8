// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteTemplateLogic {
	return &DeleteTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DeleteTemplate removes a template and its delivery log.
func (l *DeleteTemplateLogic) DeleteTemplate(req *types.TemplateIdRequest) error {
	if _, err := l.svcCtx.Templates.FindOne(l.ctx, req.Id); err != nil {
		return storeError(err)
	}

	if err := l.svcCtx.Templates.Delete(l.ctx, req.Id); err != nil {
		return err
	}

	if err := l.svcCtx.SendEvents.DeleteByTemplate(l.ctx, req.Id); err != nil {
		l.Errorf("delete send events of template %d: %v", req.Id, err)
	}

	l.Infow("template deleted", logx.Field("id", req.Id))
	return nil
}
