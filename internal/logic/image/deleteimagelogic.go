// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package image

import (
	"context"

	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteImageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteImageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteImageLogic {
	return &DeleteImageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DeleteImage removes an uploaded image.
func (l *DeleteImageLogic) DeleteImage(req *types.ImageNameRequest) error {
	if err := l.svcCtx.Images.Delete(req.Filename); err != nil {
		l.Errorf("delete image %q: %v", req.Filename, err)
		return imageError(err)
	}

	l.Infow("image deleted", logx.Field("filename", req.Filename))
	return nil
}
