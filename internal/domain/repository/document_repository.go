package repository

import "github.com/gestaodocs/gestaodocs-api/internal/domain/entity"

// DocumentRepository define o porto de persistência para Document.
// Documentos sempre pertencem a um funcionário; não existem soltos.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	GetByIDAndEmployee(id, employeeID string) (*entity.Document, error)
	ListByEmployee(employeeID string) ([]entity.Document, error)
	ListByEmployees(employeeIDs []string) (map[string][]entity.Document, error)
	Update(doc *entity.Document) error
	DeleteByEmployee(employeeID string) error
}
