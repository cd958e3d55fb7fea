package repo

import "errors"

var (
	// ErrNotFound é retornado quando nenhum registro é encontrado.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrEmailTaken é retornado quando o e-mail já está cadastrado.
	ErrEmailTaken = errors.New("email já cadastrado")
)
