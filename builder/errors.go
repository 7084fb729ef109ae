// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that a numeric parameter is below the minimum the
// requested constructor allows.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrBadScale is the panic value of WithScale for a non-positive factor.
var ErrBadScale = errors.New("builder: scale must be positive")

// Method tags used as error context.
const (
	methodRectangle = "Rectangle"
	methodLShape    = "LShape"
	methodComb      = "Comb"
	methodFrame     = "Frame"
	methodRoomChain = "RoomChain"
	methodStar      = "Star"
)

func tooSmall(method, param string, got, min int64) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooSmall)
}

// validateMin returns ErrTooSmall when v < min.
func validateMin(method, param string, v, min int64) error {
	if v < min {
		return tooSmall(method, param, v, min)
	}

	return nil
}

// wrapf attaches the method tag to err.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
