package veb

import "github.com/pkg/errors"

var (
	ErrInvalidRange = errors.New("value range must be in [1, MaxRange]")
	ErrOutOfRange   = errors.New("value is outside the universe")
)

func outOfRange(x, universe uint64) error {
	return errors.Wrapf(ErrOutOfRange, "value %d, universe size %d", x, universe)
}
