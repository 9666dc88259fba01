package dto

import (
	"encoding/json"
	"time"
)

// DocumentPayload documento enviado na criação de um funcionário.
type DocumentPayload struct {
	Name           string `json:"name" validate:"required"`
	ExpirationDate string `json:"expirationDate" validate:"required"` // YYYY-MM-DD
}

// CreateEmployeeRequest entrada para cadastrar funcionário com documentos iniciais.
// Address usa json.RawMessage para validar a allow-list de chaves no use case.
type CreateEmployeeRequest struct {
	CPF          string            `json:"cpf" validate:"required"`
	EmployeeName string            `json:"employeeName" validate:"required"`
	CompanyName  string            `json:"companyName" validate:"required"`
	Address      *json.RawMessage  `json:"address"`
	Documents    []DocumentPayload `json:"documents"`
}

// EmployeeCreatedResponse saída da criação.
type EmployeeCreatedResponse struct {
	EmployeeID string `json:"employeeId"`
}

// CPFCheckResponse saída da verificação de disponibilidade de CPF.
type CPFCheckResponse struct {
	Exists bool `json:"exists"`
}

// DocumentPatch item da lista documents no update.
// Com ID: atualiza parcialmente o documento existente (campos nil ficam como estão).
// Sem ID: cria documento novo; name e expirationDate passam a ser obrigatórios.
type DocumentPatch struct {
	ID             *string `json:"id"`
	Name           *string `json:"name"`
	ExpirationDate *string `json:"expirationDate"`
}

// UpdateEmployeeRequest patch parcial de um funcionário.
// Ponteiro nil significa "não alterar". Para Address, JSON null explícito limpa o campo;
// a distinção ausente-vs-null é preservada pelo *json.RawMessage.
type UpdateEmployeeRequest struct {
	EmployeeName *string          `json:"employeeName"`
	CompanyName  *string          `json:"companyName"`
	Address      *json.RawMessage `json:"address"`
	Documents    []DocumentPatch  `json:"documents"`
}

// DocumentResponse documento em respostas de detalhe.
type DocumentResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ExpirationDate string    `json:"expirationDate"` // YYYY-MM-DD
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EmployeeSummary linha da listagem, já com o status calculado.
type EmployeeSummary struct {
	ID           string `json:"id"`
	CPF          string `json:"cpf"`
	EmployeeName string `json:"employeeName"`
	CompanyName  string `json:"companyName"`
	Status       string `json:"status"` // valid | expiring | expired
}

// EmployeeDetail funcionário completo com documentos e status.
type EmployeeDetail struct {
	ID           string             `json:"id"`
	CPF          string             `json:"cpf"`
	EmployeeName string             `json:"employeeName"`
	CompanyName  string             `json:"companyName"`
	Address      map[string]string  `json:"address,omitempty"`
	Status       string             `json:"status"`
	Documents    []DocumentResponse `json:"documents"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}
