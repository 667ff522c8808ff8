package model

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joeblew999/plat-mailcraft/internal/layout"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Column limits, counted in runes.
const (
	MaxTitleLen      = 200
	MaxSubjectLen    = 300
	MaxButtonTextLen = 100
	MaxButtonLinkLen = 500
)

var _ EmailTemplatesModel = (*customEmailTemplatesModel)(nil)

type (
	// EmailTemplatesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customEmailTemplatesModel.
	EmailTemplatesModel interface {
		emailTemplatesModel
		ListAll(ctx context.Context) ([]*EmailTemplates, error)
	}

	customEmailTemplatesModel struct {
		*defaultEmailTemplatesModel
	}
)

// NewEmailTemplatesModel returns a model for the database table.
func NewEmailTemplatesModel(conn sqlx.SqlConn) EmailTemplatesModel {
	return &customEmailTemplatesModel{
		defaultEmailTemplatesModel: newEmailTemplatesModel(conn),
	}
}

// Insert validates data and inserts it. The new id is available via LastInsertId.
func (m *customEmailTemplatesModel) Insert(ctx context.Context, data *EmailTemplates) (sql.Result, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return m.defaultEmailTemplatesModel.Insert(ctx, data)
}

// Update validates data and overwrites every column except id and created_at.
func (m *customEmailTemplatesModel) Update(ctx context.Context, data *EmailTemplates) error {
	if err := data.Validate(); err != nil {
		return err
	}
	return m.defaultEmailTemplatesModel.Update(ctx, data)
}

// ListAll returns every template, newest first.
func (m *customEmailTemplatesModel) ListAll(ctx context.Context) ([]*EmailTemplates, error) {
	query := fmt.Sprintf("select %s from %s order by `created_at` desc, `id` desc", emailTemplatesRows, m.table)
	var resp []*EmailTemplates
	if err := m.conn.QueryRowsCtx(ctx, &resp, query); err != nil {
		return nil, err
	}
	return resp, nil
}

// Validate checks required fields, length limits and the layout name.
func (t *EmailTemplates) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTemplate)
	}
	if strings.TrimSpace(t.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidTemplate)
	}

	limits := []struct {
		field string
		value string
		max   int
	}{
		{"title", t.Title, MaxTitleLen},
		{"subject", t.Subject, MaxSubjectLen},
		{"button text", t.ButtonText.String, MaxButtonTextLen},
		{"button link", t.ButtonLink.String, MaxButtonLinkLen},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidTemplate, l.field, l.max)
		}
	}

	if _, err := layout.Parse(t.TemplateName); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	return nil
}

// Layout returns the parsed layout of the row.
func (t *EmailTemplates) Layout() (layout.Layout, error) {
	return layout.Parse(t.TemplateName)
}

// Fields returns the content fields used to render the row.
func (t *EmailTemplates) Fields() layout.Fields {
	return layout.Fields{
		Header:     t.Header,
		Body:       t.Body,
		ButtonText: NullStringValue(t.ButtonText),
		ButtonLink: NullStringValue(t.ButtonLink),
		Footer:     NullStringValue(t.Footer),
	}
}
