package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmployeeNotFound   = errors.New("funcionário não encontrado")
	ErrDocumentNotFound   = errors.New("documento não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrCPFAlreadyExists   = errors.New("já existe funcionário com este CPF")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidDate        = errors.New("data inválida, formato esperado YYYY-MM-DD")
	ErrUnauthorized       = errors.New("não autorizado")
)
