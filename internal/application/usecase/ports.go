package usecase

import (
	"context"

	"github.com/gestaodocs/gestaodocs-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação, com repositórios religados à tx.
// Se fn devolver erro, nada é persistido (rollback completo).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		employees repository.EmployeeRepository,
		documents repository.DocumentRepository,
	) error) error
}
