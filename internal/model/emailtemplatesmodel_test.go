package model

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joeblew999/plat-mailcraft/internal/layout"
	"github.com/joeblew999/plat-mailcraft/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

func newTestConn(t *testing.T) sqlx.SqlConn {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database.SqlConn()
}

func validTemplate() *EmailTemplates {
	return &EmailTemplates{
		Title:        "Welcome",
		Subject:      "Hello there",
		Header:       "Hi",
		Body:         "Thanks for joining",
		ButtonText:   NullString("Start"),
		ButtonLink:   NullString("https://example.com"),
		TemplateName: "template3",
	}
}

func TestInsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	m := NewEmailTemplatesModel(newTestConn(t))

	res, err := m.Insert(ctx, validTemplate())
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	got, err := m.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Welcome", got.Title)
	assert.Equal(t, "template3", got.TemplateName)
	assert.Equal(t, "Start", NullStringValue(got.ButtonText))
	assert.False(t, got.Footer.Valid)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestFindOneMissing(t *testing.T) {
	m := NewEmailTemplatesModel(newTestConn(t))
	_, err := m.FindOne(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertRejectsUnknownLayout(t *testing.T) {
	ctx := context.Background()
	m := NewEmailTemplatesModel(newTestConn(t))

	tpl := validTemplate()
	tpl.TemplateName = "template11"
	_, err := m.Insert(ctx, tpl)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
	assert.ErrorIs(t, err, layout.ErrUnknownLayout)

	all, err := m.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInsertValidation(t *testing.T) {
	m := NewEmailTemplatesModel(newTestConn(t))

	cases := map[string]func(*EmailTemplates){
		"empty title":      func(e *EmailTemplates) { e.Title = "  " },
		"empty subject":    func(e *EmailTemplates) { e.Subject = "" },
		"long title":       func(e *EmailTemplates) { e.Title = strings.Repeat("a", MaxTitleLen+1) },
		"long subject":     func(e *EmailTemplates) { e.Subject = strings.Repeat("a", MaxSubjectLen+1) },
		"long button text": func(e *EmailTemplates) { e.ButtonText = NullString(strings.Repeat("a", MaxButtonTextLen+1)) },
		"long button link": func(e *EmailTemplates) { e.ButtonLink = NullString(strings.Repeat("a", MaxButtonLinkLen+1)) },
		"path layout":      func(e *EmailTemplates) { e.TemplateName = "../template1" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tpl := validTemplate()
			mutate(tpl)
			_, err := m.Insert(context.Background(), tpl)
			assert.ErrorIs(t, err, ErrInvalidTemplate)
		})
	}
}

func TestLengthsCountRunes(t *testing.T) {
	tpl := validTemplate()
	tpl.Title = strings.Repeat("é", MaxTitleLen)
	assert.NoError(t, tpl.Validate())
}

func TestUpdateKeepsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	m := NewEmailTemplatesModel(newTestConn(t))

	res, err := m.Insert(ctx, validTemplate())
	require.NoError(t, err)
	id, _ := res.LastInsertId()
	before, err := m.FindOne(ctx, id)
	require.NoError(t, err)

	updated := *before
	updated.Title = "Renamed"
	updated.TemplateName = "template7"
	updated.ButtonText = sql.NullString{}
	require.NoError(t, m.Update(ctx, &updated))

	after, err := m.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, after.Id)
	assert.Equal(t, "Renamed", after.Title)
	assert.Equal(t, "template7", after.TemplateName)
	assert.False(t, after.ButtonText.Valid)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
}

func TestUpdateRejectsInvalidAndKeepsRow(t *testing.T) {
	ctx := context.Background()
	m := NewEmailTemplatesModel(newTestConn(t))

	res, err := m.Insert(ctx, validTemplate())
	require.NoError(t, err)
	id, _ := res.LastInsertId()

	bad := validTemplate()
	bad.Id = id
	bad.Title = "Changed"
	bad.TemplateName = "evil"
	err = m.Update(ctx, bad)
	require.True(t, errors.Is(err, ErrInvalidTemplate))

	got, err := m.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Welcome", got.Title)
	assert.Equal(t, "template3", got.TemplateName)
}

func TestListAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewEmailTemplatesModel(newTestConn(t))

	for _, title := range []string{"first", "second", "third"} {
		tpl := validTemplate()
		tpl.Title = title
		_, err := m.Insert(ctx, tpl)
		require.NoError(t, err)
	}

	all, err := m.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Title)
	assert.Equal(t, "second", all[1].Title)
	assert.Equal(t, "first", all[2].Title)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	m := NewEmailTemplatesModel(newTestConn(t))

	res, err := m.Insert(ctx, validTemplate())
	require.NoError(t, err)
	id, _ := res.LastInsertId()

	require.NoError(t, m.Delete(ctx, id))
	_, err = m.FindOne(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFields(t *testing.T) {
	f := validTemplate().Fields()
	assert.Equal(t, layout.Fields{
		Header:     "Hi",
		Body:       "Thanks for joining",
		ButtonText: "Start",
		ButtonLink: "https://example.com",
	}, f)
}
