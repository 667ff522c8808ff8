package model

import (
	"errors"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var (
	ErrNotFound = sqlx.ErrNotFound

	// ErrInvalidTemplate is returned when a row fails validation before insert or update.
	ErrInvalidTemplate = errors.New("invalid email template")
)
