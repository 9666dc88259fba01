package entity

import "time"

// AddressKeys chaves permitidas no endereço estruturado de um funcionário.
// Qualquer outra chave no payload é rejeitada como entrada inválida.
var AddressKeys = map[string]bool{
	"street":       true,
	"number":       true,
	"neighborhood": true,
	"city":         true,
	"complement":   true,
	"zip_code":     true,
}

// Employee representa um funcionário, identificado de forma única pelo CPF.
// Address é nil quando o funcionário não tem endereço cadastrado.
type Employee struct {
	ID           string
	CPF          string
	EmployeeName string
	CompanyName  string
	Address      map[string]string // somente chaves de AddressKeys
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
