// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package image

import (
	"context"
	"io"

	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/joeblew999/plat-mailcraft/pkg/imagestore"

	"github.com/zeromicro/go-zero/core/logx"
)

type UploadImageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUploadImageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UploadImageLogic {
	return &UploadImageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UploadImage stores an image under a randomized name.
func (l *UploadImageLogic) UploadImage(filename string, file io.Reader) (*types.ImageItem, error) {
	if file == nil {
		return nil, imageError(imagestore.ErrNoFile)
	}

	name, err := l.svcCtx.Images.Save(filename, file)
	if err != nil {
		return nil, imageError(err)
	}

	l.Infow("image uploaded", logx.Field("filename", name))
	return &types.ImageItem{Filename: name, Url: imagestore.URL(name)}, nil
}
