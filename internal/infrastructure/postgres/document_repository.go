package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaodocs/gestaodocs-api/internal/domain/entity"
	"github.com/gestaodocs/gestaodocs-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementação de DocumentRepository (usável com pool ou tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste um novo documento vinculado a um funcionário.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, employee_id, name, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.EmployeeID, doc.Name, doc.ExpirationDate, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByIDAndEmployee obtém um documento por ID, restrito ao funcionário dono.
// Devolve (nil, nil) se não existir documento com esse id sob esse funcionário.
func (r *DocumentRepo) GetByIDAndEmployee(id, employeeID string) (*entity.Document, error) {
	query := `
		SELECT id, employee_id, name, expiration_date, created_at, updated_at
		FROM documents WHERE id = $1 AND employee_id = $2`
	var d entity.Document
	err := r.q.QueryRow(context.Background(), query, id, employeeID).Scan(
		&d.ID, &d.EmployeeID, &d.Name, &d.ExpirationDate, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListByEmployee lista os documentos de um funcionário, mais antigos primeiro.
func (r *DocumentRepo) ListByEmployee(employeeID string) ([]entity.Document, error) {
	query := `
		SELECT id, employee_id, name, expiration_date, created_at, updated_at
		FROM documents WHERE employee_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

// ListByEmployees lista os documentos de vários funcionários em uma única
// consulta, agrupados por employee_id (evita N+1 na listagem).
func (r *DocumentRepo) ListByEmployees(employeeIDs []string) (map[string][]entity.Document, error) {
	out := make(map[string][]entity.Document, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT id, employee_id, name, expiration_date, created_at, updated_at
		FROM documents WHERE employee_id = ANY($1) ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("list documents by employees: %w", err)
	}
	defer rows.Close()
	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.EmployeeID] = append(out[d.EmployeeID], d)
	}
	return out, nil
}

// Update atualiza nome e data de vencimento de um documento.
func (r *DocumentRepo) Update(doc *entity.Document) error {
	query := `
		UPDATE documents SET name = $2, expiration_date = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Name, doc.ExpirationDate, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// DeleteByEmployee remove todos os documentos de um funcionário.
func (r *DocumentRepo) DeleteByEmployee(employeeID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM documents WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}
	return nil
}

func scanDocuments(rows pgx.Rows) ([]entity.Document, error) {
	var list []entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.Name, &d.ExpirationDate, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
