// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package image

import (
	"context"
	"os"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ServeImageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewServeImageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ServeImageLogic {
	return &ServeImageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// OpenImage opens an uploaded image for serving. Any bad name reads as not found.
func (l *ServeImageLogic) OpenImage(req *types.ImageNameRequest) (*os.File, error) {
	f, err := l.svcCtx.Images.Open(req.Filename)
	if err != nil {
		return nil, errorx.ErrNotFound("image not found")
	}
	return f, nil
}
