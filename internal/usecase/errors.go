package usecase

import "github.com/transit-network/internal/pkg/errors"

func invalidGeometry(err error) error {
	return errors.ErrInvalidGeometry.WithMessage(err.Error())
}
