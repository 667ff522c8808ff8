// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/joeblew999/plat-mailcraft/internal/layout"
	"github.com/joeblew999/plat-mailcraft/internal/model"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

const importedHeader = "Imported Template"

type ImportTemplateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewImportTemplateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ImportTemplateLogic {
	return &ImportTemplateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ImportTemplate stores an uploaded HTML file verbatim as the body of a new template1 template.
func (l *ImportTemplateLogic) ImportTemplate(req *types.ImportRequest, filename string, file io.Reader) (int64, error) {
	if filename == "" || file == nil {
		return 0, errorx.ErrBadRequest("no file selected")
	}

	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(base))
	if ext != ".html" && ext != ".htm" {
		return 0, errorx.ErrBadRequest("only .html files can be imported")
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return 0, err
	}
	if !utf8.Valid(content) {
		return 0, errorx.ErrBadRequest("imported file is not valid UTF-8")
	}

	title := strings.TrimSpace(req.ImportTitle)
	if title == "" {
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	row := model.EmailTemplates{
		Title:        title,
		Subject:      "Imported: " + title,
		Header:       importedHeader,
		Body:         string(content),
		TemplateName: layout.Template1.String(),
	}
	res, err := l.svcCtx.Templates.Insert(l.ctx, &row)
	if err != nil {
		return 0, storeError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	l.Infow("template imported", logx.Field("id", id), logx.Field("bytes", len(content)))
	return id, nil
}
