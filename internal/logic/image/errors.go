package image

import (
	"errors"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/joeblew999/plat-mailcraft/pkg/imagestore"
)

// imageError maps image store errors to HTTP errors.
func imageError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, imagestore.ErrNotFound):
		return errorx.ErrNotFound("image not found")
	case errors.Is(err, imagestore.ErrNoFile),
		errors.Is(err, imagestore.ErrExtension),
		errors.Is(err, imagestore.ErrInvalidName),
		errors.Is(err, imagestore.ErrTooLarge),
		errors.Is(err, imagestore.ErrDeleteFailed):
		return errorx.ErrBadRequest(rootMessage(err))
	default:
		return err
	}
}

// rootMessage hides filesystem details behind the sentinel text.
func rootMessage(err error) string {
	for _, sentinel := range []error{
		imagestore.ErrNoFile,
		imagestore.ErrExtension,
		imagestore.ErrInvalidName,
		imagestore.ErrTooLarge,
		imagestore.ErrDeleteFailed,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
