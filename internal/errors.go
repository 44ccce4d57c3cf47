package internal

import (
	"fmt"
)

var (
	ErrBadRequest   = fmt.Errorf("bad request")
	ErrUnauthorized = fmt.Errorf("unauthorized")
	ErrNotFound     = fmt.Errorf("record not found")
	ErrDuplicate    = fmt.Errorf("duplicate record")

	// ErrInvalidToken and ErrExpiredToken are distinct on purpose: an
	// expired token once matched a row, an invalid one never did, and the
	// reset form tells the user which happened.
	ErrInvalidToken = fmt.Errorf("token inválido")
	ErrExpiredToken = fmt.Errorf("token expirado")
)
