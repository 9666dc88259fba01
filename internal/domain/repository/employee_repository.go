package repository

import "github.com/gestaodocs/gestaodocs-api/internal/domain/entity"

// EmployeeRepository define o porto de persistência para Employee.
// Get* devolvem (nil, nil) quando o registro não existe.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByCPF(cpf string) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) (bool, error)
}
