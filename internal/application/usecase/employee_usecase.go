package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gestaodocs/gestaodocs-api/internal/application/dto"
	"github.com/gestaodocs/gestaodocs-api/internal/domain"
	"github.com/gestaodocs/gestaodocs-api/internal/domain/entity"
	"github.com/gestaodocs/gestaodocs-api/internal/domain/repository"
	"github.com/gestaodocs/gestaodocs-api/internal/domain/status"
)

// cpfPattern formato NNN.NNN.NNN-NN exigido no cadastro.
var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// EmployeeUseCase casos de uso do cadastro de funcionários e seus documentos.
// Toda escrita multi-linha (funcionário + documentos) passa pelo TxRunner.
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
	documentRepo repository.DocumentRepository
	txRunner     TxRunner
	collator     *collate.Collator
	now          func() time.Time
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository, documentRepo repository.DocumentRepository, txRunner TxRunner) *EmployeeUseCase {
	return &EmployeeUseCase{
		employeeRepo: employeeRepo,
		documentRepo: documentRepo,
		txRunner:     txRunner,
		// Ordenação da listagem por nome respeitando acentuação pt-BR
		collator: collate.New(language.BrazilianPortuguese),
		now:      time.Now,
	}
}

// CheckCPF verifica se já existe funcionário com o CPF informado.
func (uc *EmployeeUseCase) CheckCPF(cpf string) (bool, error) {
	if cpf == "" {
		return false, fmt.Errorf("%w: cpf é requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.employeeRepo.GetByCPF(cpf)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

// Create cadastra um funcionário com zero ou mais documentos iniciais em uma
// única transação: ou tudo é persistido, ou nada.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (string, error) {
	if in.CPF == "" || in.EmployeeName == "" || in.CompanyName == "" {
		return "", fmt.Errorf("%w: cpf, employeeName e companyName são requeridos", domain.ErrInvalidInput)
	}
	if !cpfPattern.MatchString(in.CPF) {
		return "", fmt.Errorf("%w: cpf deve ter o formato NNN.NNN.NNN-NN", domain.ErrInvalidInput)
	}
	address, err := parseAddress(in.Address)
	if err != nil {
		return "", err
	}

	now := uc.now()
	docs := make([]*entity.Document, 0, len(in.Documents))
	for _, d := range in.Documents {
		if d.Name == "" || d.ExpirationDate == "" {
			return "", fmt.Errorf("%w: cada documento requer name e expirationDate", domain.ErrInvalidInput)
		}
		exp, err := parseDate(d.ExpirationDate)
		if err != nil {
			return "", err
		}
		docs = append(docs, &entity.Document{
			ID:             uuid.New().String(),
			Name:           d.Name,
			ExpirationDate: exp,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	existing, err := uc.employeeRepo.GetByCPF(in.CPF)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrCPFAlreadyExists
	}

	employee := &entity.Employee{
		ID:           uuid.New().String(),
		CPF:          in.CPF,
		EmployeeName: in.EmployeeName,
		CompanyName:  in.CompanyName,
		Address:      address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(employees repository.EmployeeRepository, documents repository.DocumentRepository) error {
		// A UNIQUE de cpf cobre a corrida entre o pré-check e o insert.
		if err := employees.Create(employee); err != nil {
			return err
		}
		for _, doc := range docs {
			doc.EmployeeID = employee.ID
			if err := documents.Create(doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return employee.ID, nil
}

// List devolve todos os funcionários ordenados por nome, cada um com o status
// calculado sobre seus documentos.
func (uc *EmployeeUseCase) List() ([]*dto.EmployeeSummary, error) {
	employees, err := uc.employeeRepo.List()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	docsByEmployee, err := uc.documentRepo.ListByEmployees(ids)
	if err != nil {
		return nil, err
	}

	today := uc.now()
	out := make([]*dto.EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		out = append(out, &dto.EmployeeSummary{
			ID:           e.ID,
			CPF:          e.CPF,
			EmployeeName: e.EmployeeName,
			CompanyName:  e.CompanyName,
			Status:       string(status.Classify(docsByEmployee[e.ID], today)),
		})
	}
	// O ORDER BY do banco é bytewise; refinamos com collation pt-BR para
	// nomes acentuados ficarem na posição esperada.
	sort.SliceStable(out, func(i, j int) bool {
		return uc.collator.CompareString(out[i].EmployeeName, out[j].EmployeeName) < 0
	})
	return out, nil
}

// GetDetail devolve o funcionário com a lista completa de documentos e o status.
func (uc *EmployeeUseCase) GetDetail(id string) (*dto.EmployeeDetail, error) {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	docs, err := uc.documentRepo.ListByEmployee(id)
	if err != nil {
		return nil, err
	}
	return uc.toDetail(employee, docs), nil
}

// Update aplica um patch parcial: campos do funcionário e lista de patches de
// documentos, tudo em uma única transação. Qualquer falha (documento
// desconhecido, data malformada) aborta o update inteiro.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeDetail, error) {
	if in.EmployeeName != nil && *in.EmployeeName == "" {
		return nil, fmt.Errorf("%w: employeeName não pode ser vazio", domain.ErrInvalidInput)
	}
	if in.CompanyName != nil && *in.CompanyName == "" {
		return nil, fmt.Errorf("%w: companyName não pode ser vazio", domain.ErrInvalidInput)
	}

	// Valida e pré-parseia os patches de documentos antes de abrir a transação.
	type docPatch struct {
		id      string  // vazio = criar
		name    *string
		expSet  bool
		expDate time.Time
	}
	patches := make([]docPatch, 0, len(in.Documents))
	for _, d := range in.Documents {
		var p docPatch
		if d.ID != nil {
			p.id = *d.ID
		}
		if p.id == "" && (d.Name == nil || *d.Name == "" || d.ExpirationDate == nil || *d.ExpirationDate == "") {
			return nil, fmt.Errorf("%w: documento novo requer name e expirationDate", domain.ErrInvalidInput)
		}
		p.name = d.Name
		if d.ExpirationDate != nil {
			exp, err := parseDate(*d.ExpirationDate)
			if err != nil {
				return nil, err
			}
			p.expSet = true
			p.expDate = exp
		}
		patches = append(patches, p)
	}

	now := uc.now()
	err := uc.txRunner.Run(ctx, func(employees repository.EmployeeRepository, documents repository.DocumentRepository) error {
		employee, err := employees.GetByID(id)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.ErrEmployeeNotFound
		}
		if in.EmployeeName != nil {
			employee.EmployeeName = *in.EmployeeName
		}
		if in.CompanyName != nil {
			employee.CompanyName = *in.CompanyName
		}
		if in.Address != nil {
			// Chave presente no patch: null explícito limpa, objeto substitui.
			if isJSONNull(*in.Address) {
				employee.Address = nil
			} else {
				address, err := parseAddress(in.Address)
				if err != nil {
					return err
				}
				employee.Address = address
			}
		}
		employee.UpdatedAt = now
		if err := employees.Update(employee); err != nil {
			return err
		}

		for _, p := range patches {
			if p.id != "" {
				doc, err := documents.GetByIDAndEmployee(p.id, employee.ID)
				if err != nil {
					return err
				}
				if doc == nil {
					return fmt.Errorf("%w: documento %s não pertence a este funcionário", domain.ErrDocumentNotFound, p.id)
				}
				if p.name != nil {
					doc.Name = *p.name
				}
				if p.expSet {
					doc.ExpirationDate = p.expDate
				}
				doc.UpdatedAt = now
				if err := documents.Update(doc); err != nil {
					return err
				}
				continue
			}
			doc := &entity.Document{
				ID:             uuid.New().String(),
				EmployeeID:     employee.ID,
				Name:           *p.name,
				ExpirationDate: p.expDate,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := documents.Create(doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetDetail(id)
}

// Delete remove o funcionário e todos os seus documentos, atomicamente.
// A cascata é explícita aqui; o ON DELETE CASCADE do schema é só retaguarda.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(employees repository.EmployeeRepository, documents repository.DocumentRepository) error {
		employee, err := employees.GetByID(id)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.ErrEmployeeNotFound
		}
		if err := documents.DeleteByEmployee(id); err != nil {
			return err
		}
		if _, err := employees.Delete(id); err != nil {
			return err
		}
		return nil
	})
}

func (uc *EmployeeUseCase) toDetail(e *entity.Employee, docs []entity.Document) *dto.EmployeeDetail {
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.DocumentResponse{
			ID:             d.ID,
			Name:           d.Name,
			ExpirationDate: d.ExpirationDate.Format(entity.DateLayout),
			CreatedAt:      d.CreatedAt,
			UpdatedAt:      d.UpdatedAt,
		})
	}
	return &dto.EmployeeDetail{
		ID:           e.ID,
		CPF:          e.CPF,
		EmployeeName: e.EmployeeName,
		CompanyName:  e.CompanyName,
		Address:      e.Address,
		Status:       string(status.Classify(docs, uc.now())),
		Documents:    out,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// parseDate converte YYYY-MM-DD; qualquer outra forma é entrada inválida, nunca pânico.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// parseAddress valida o endereço contra a allow-list de chaves.
// Valores null dentro do objeto são tratados como ausentes.
func parseAddress(raw *json.RawMessage) (map[string]string, error) {
	if raw == nil || isJSONNull(*raw) {
		return nil, nil
	}
	var fields map[string]*string
	if err := json.Unmarshal(*raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: address deve ser um objeto com valores string", domain.ErrInvalidInput)
	}
	address := make(map[string]string, len(fields))
	for key, value := range fields {
		if !entity.AddressKeys[key] {
			return nil, fmt.Errorf("%w: chave de address não permitida: %q", domain.ErrInvalidInput, key)
		}
		if value != nil {
			address[key] = *value
		}
	}
	if len(address) == 0 {
		return nil, nil
	}
	return address, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
