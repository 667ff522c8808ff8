// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"

	"github.com/joeblew999/plat-mailcraft/internal/layout"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/joeblew999/plat-mailcraft/pkg/imagestore"

	"github.com/zeromicro/go-zero/core/logx"
)

type IndexLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewIndexLogic(ctx context.Context, svcCtx *svc.ServiceContext) *IndexLogic {
	return &IndexLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Index lists saved templates newest first along with uploaded images.
func (l *IndexLogic) Index(req *types.StatusRequest) (*types.IndexPage, error) {
	rows, err := l.svcCtx.Templates.ListAll(l.ctx)
	if err != nil {
		return nil, err
	}

	names, err := l.svcCtx.Images.List()
	if err != nil {
		l.Errorf("list images: %v", err)
	}

	page := &types.IndexPage{
		Templates: make([]types.TemplateItem, 0, len(rows)),
		Images:    make([]types.ImageItem, 0, len(names)),
		Layouts:   layoutOptions(),
		Success:   req.Success,
		Error:     req.Error,
	}
	for _, row := range rows {
		page.Templates = append(page.Templates, toItem(row))
	}
	for _, name := range names {
		page.Images = append(page.Images, types.ImageItem{Filename: name, Url: imagestore.URL(name)})
	}

	return page, nil
}

func layoutOptions() []types.LayoutOption {
	opts := make([]types.LayoutOption, 0, len(layout.All))
	for _, l := range layout.All {
		opts = append(opts, types.LayoutOption{Name: l.String(), Description: l.Description()})
	}
	return opts
}
