package template

import (
	"errors"
	"strings"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/joeblew999/plat-mailcraft/internal/layout"
	"github.com/joeblew999/plat-mailcraft/internal/model"
	"github.com/joeblew999/plat-mailcraft/internal/types"
)

const (
	timeLayout     = "2006-01-02 15:04"
	exportFallback = "email_template"
)

func toItem(t *model.EmailTemplates) types.TemplateItem {
	return types.TemplateItem{
		Id:           t.Id,
		Title:        t.Title,
		Subject:      t.Subject,
		Header:       t.Header,
		Body:         t.Body,
		ButtonText:   model.NullStringValue(t.ButtonText),
		ButtonLink:   model.NullStringValue(t.ButtonLink),
		Footer:       model.NullStringValue(t.Footer),
		TemplateName: t.TemplateName,
		CreatedAt:    t.CreatedAt.Format(timeLayout),
	}
}

// applyForm overwrites every editable column of t. An empty subject falls back to the title.
func applyForm(t *model.EmailTemplates, req *types.TemplateForm) {
	subject := req.Subject
	if strings.TrimSpace(subject) == "" {
		subject = req.Title
	}

	t.Title = req.Title
	t.Subject = subject
	t.Header = req.Header
	t.Body = req.Body
	t.ButtonText = model.NullString(req.ButtonText)
	t.ButtonLink = model.NullString(req.ButtonLink)
	t.Footer = model.NullString(req.Footer)
	t.TemplateName = req.TemplateName
}

func formFields(req *types.TemplateForm) layout.Fields {
	return layout.Fields{
		Header:     req.Header,
		Body:       req.Body,
		ButtonText: req.ButtonText,
		ButtonLink: req.ButtonLink,
		Footer:     req.Footer,
	}
}

// formLayout returns the submitted layout name, template1 when none was sent.
func formLayout(req *types.TemplateForm) string {
	if req.TemplateName == "" {
		return layout.Default.String()
	}
	return req.TemplateName
}

// exportFilename names a download after title with spaces replaced by underscores.
func exportFilename(title string) string {
	if strings.TrimSpace(title) == "" {
		title = exportFallback
	}
	return strings.ReplaceAll(title, " ", "_") + ".html"
}

// storeError maps store and validator errors to HTTP errors.
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrNotFound):
		return errorx.ErrNotFound("template not found")
	case errors.Is(err, model.ErrInvalidTemplate), errors.Is(err, layout.ErrUnknownLayout):
		return errorx.ErrBadRequest(err.Error())
	default:
		return err
	}
}
