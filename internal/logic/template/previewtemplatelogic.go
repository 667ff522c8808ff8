// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type PreviewTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPreviewTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PreviewTemplateLogic {
	return &PreviewTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// PreviewTemplate renders unsaved form fields into the selected layout.
func (l *PreviewTemplateLogic) PreviewTemplate(req *types.TemplateForm) (string, error) {
	html, err := l.svcCtx.Layouts.RenderNamed(formLayout(req), formFields(req))
	if err != nil {
		return "", storeError(err)
	}
	return html, nil
}

// LivePreview renders the datastar signals of the editing form.
func (l *PreviewTemplateLogic) LivePreview(signals *types.LivePreviewSignals) (string, error) {
	return l.PreviewTemplate(&types.TemplateForm{
		TemplateName: signals.TemplateName,
		Header:       signals.Header,
		Body:         signals.Body,
		ButtonText:   signals.ButtonText,
		ButtonLink:   signals.ButtonLink,
		Footer:       signals.Footer,
	})
}
