package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaodocs/gestaodocs-api/internal/domain"
	"github.com/gestaodocs/gestaodocs-api/internal/domain/entity"
	"github.com/gestaodocs/gestaodocs-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementação de EmployeeRepository (usável com pool ou tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste um novo funcionário. CPF duplicado vira ErrCPFAlreadyExists.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	addr, err := marshalAddress(employee.Address)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO employees (id, cpf, employee_name, company_name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		employee.ID, employee.CPF, employee.EmployeeName, employee.CompanyName, addr,
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCPFAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtém um funcionário por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `
		SELECT id, cpf, employee_name, company_name, address, created_at, updated_at
		FROM employees WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get employee by id")
}

// GetByCPF obtém um funcionário pelo CPF.
func (r *EmployeeRepo) GetByCPF(cpf string) (*entity.Employee, error) {
	query := `
		SELECT id, cpf, employee_name, company_name, address, created_at, updated_at
		FROM employees WHERE cpf = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, cpf), "get employee by cpf")
}

// List devolve todos os funcionários ordenados por nome.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	query := `
		SELECT id, cpf, employee_name, company_name, address, created_at, updated_at
		FROM employees ORDER BY employee_name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		var addr []byte
		if err := rows.Scan(&e.ID, &e.CPF, &e.EmployeeName, &e.CompanyName, &addr, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		if e.Address, err = unmarshalAddress(addr); err != nil {
			return nil, err
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update atualiza os campos próprios do funcionário.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	addr, err := marshalAddress(employee.Address)
	if err != nil {
		return err
	}
	query := `
		UPDATE employees SET employee_name = $2, company_name = $3, address = $4, updated_at = $5
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		employee.ID, employee.EmployeeName, employee.CompanyName, addr, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete remove um funcionário por ID. Devolve false se nenhuma linha foi afetada.
func (r *EmployeeRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *EmployeeRepo) scanOne(row pgx.Row, op string) (*entity.Employee, error) {
	var e entity.Employee
	var addr []byte
	err := row.Scan(&e.ID, &e.CPF, &e.EmployeeName, &e.CompanyName, &addr, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if e.Address, err = unmarshalAddress(addr); err != nil {
		return nil, err
	}
	return &e, nil
}

// marshalAddress serializa o endereço para a coluna JSONB; nil vira NULL.
func marshalAddress(address map[string]string) ([]byte, error) {
	if address == nil {
		return nil, nil
	}
	b, err := json.Marshal(address)
	if err != nil {
		return nil, fmt.Errorf("marshal address: %w", err)
	}
	return b, nil
}

func unmarshalAddress(raw []byte) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var address map[string]string
	if err := json.Unmarshal(raw, &address); err != nil {
		return nil, fmt.Errorf("unmarshal address: %w", err)
	}
	return address, nil
}
