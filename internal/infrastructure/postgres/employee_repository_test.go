package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaodocs/gestaodocs-api/internal/domain"
	"github.com/gestaodocs/gestaodocs-api/internal/domain/entity"
)

var employeeColumns = []string{"id", "cpf", "employee_name", "company_name", "address", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return mock
}

func TestEmployeeRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	now := time.Now()
	employee := &entity.Employee{
		ID:           "emp-1",
		CPF:          "111.111.111-11",
		EmployeeName: "Maria Silva",
		CompanyName:  "Acme Ltda",
		Address:      map[string]string{"city": "São Paulo"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO employees").
		WithArgs("emp-1", "111.111.111-11", "Maria Silva", "Acme Ltda",
			[]byte(`{"city":"São Paulo"}`), now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(employee))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Violação da UNIQUE de cpf (23505) vira o erro de domínio, mesmo quando a
// corrida passou pelo pré-check do use case.
func TestEmployeeRepo_Create_CPFDuplicado(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	now := time.Now()
	mock.ExpectExec("INSERT INTO employees").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_cpf_key"})

	err := repo.Create(&entity.Employee{
		ID: "emp-1", CPF: "111.111.111-11", EmployeeName: "Maria", CompanyName: "Acme",
		CreatedAt: now, UpdatedAt: now,
	})
	assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_GetByID_Encontrado(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows(employeeColumns).
			AddRow("emp-1", "111.111.111-11", "Maria Silva", "Acme Ltda",
				[]byte(`{"city":"São Paulo"}`), now, now))

	employee, err := repo.GetByID("emp-1")
	require.NoError(t, err)
	require.NotNil(t, employee)
	assert.Equal(t, "111.111.111-11", employee.CPF)
	assert.Equal(t, map[string]string{"city": "São Paulo"}, employee.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Sem linhas devolve (nil, nil); a tradução para 404 é decisão do use case.
func TestEmployeeRepo_GetByID_Inexistente(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
		WithArgs("nao-existe").
		WillReturnRows(pgxmock.NewRows(employeeColumns))

	employee, err := repo.GetByID("nao-existe")
	require.NoError(t, err)
	assert.Nil(t, employee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_GetByID_AddressNulo(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows(employeeColumns).
			AddRow("emp-1", "111.111.111-11", "Maria Silva", "Acme Ltda", []byte(nil), now, now))

	employee, err := repo.GetByID("emp-1")
	require.NoError(t, err)
	require.NotNil(t, employee)
	assert.Nil(t, employee.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectExec("DELETE FROM employees WHERE id").
		WithArgs("emp-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete("emp-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec("DELETE FROM employees WHERE id").
		WithArgs("nao-existe").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err = repo.Delete("nao-existe")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
