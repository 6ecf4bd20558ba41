package service

import (
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/wexa-dev/studio-api/pkg/util"
)

// notFoundOr translates a missing row into the NOT_FOUND taxonomy entry and
// passes every other error through untouched.
func notFoundOr(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, nil)
	}
	return err
}
