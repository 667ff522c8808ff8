package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ SendEventsModel = (*customSendEventsModel)(nil)

type (
	// SendEventsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customSendEventsModel.
	SendEventsModel interface {
		sendEventsModel
		ListByTemplate(ctx context.Context, templateID int64, limit int) ([]*SendEvents, error)
		DeleteByTemplate(ctx context.Context, templateID int64) error
	}

	customSendEventsModel struct {
		*defaultSendEventsModel
	}
)

// NewSendEventsModel returns a model for the database table.
func NewSendEventsModel(conn sqlx.SqlConn) SendEventsModel {
	return &customSendEventsModel{
		defaultSendEventsModel: newSendEventsModel(conn),
	}
}

// ListByTemplate returns the newest events of one template.
func (m *customSendEventsModel) ListByTemplate(ctx context.Context, templateID int64, limit int) ([]*SendEvents, error) {
	query := fmt.Sprintf("select %s from %s where `template_id` = ? order by `created_at` desc, `rowid` desc limit ?",
		sendEventsRows, m.table)
	var resp []*SendEvents
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, templateID, limit); err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteByTemplate drops the delivery log of a removed template.
func (m *customSendEventsModel) DeleteByTemplate(ctx context.Context, templateID int64) error {
	query := fmt.Sprintf("delete from %s where `template_id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, templateID)
	return err
}
