// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ExportTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewExportTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ExportTemplateLogic {
	return &ExportTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ExportTemplate renders a stored template as a downloadable file.
func (l *ExportTemplateLogic) ExportTemplate(req *types.TemplateIdRequest) (*types.ExportFile, error) {
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

	return &types.ExportFile{Filename: exportFilename(row.Title), Html: html}, nil
}

// ExportCurrent renders unsaved form data as a downloadable file.
func (l *ExportTemplateLogic) ExportCurrent(req *types.TemplateForm) (*types.ExportFile, error) {
	html, err := l.svcCtx.Layouts.RenderNamed(formLayout(req), formFields(req))
	if err != nil {
		return nil, storeError(err)
	}

	return &types.ExportFile{Filename: exportFilename(req.Title), Html: html}, nil
}
