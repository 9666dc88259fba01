package entity

import "time"

// DateLayout formato de calendário usado em toda a API para datas de vencimento.
const DateLayout = "2006-01-02"

// Document representa um documento (ex. ASO, CNH) vinculado a um funcionário.
// Só a data de vencimento interessa para a classificação de status.
type Document struct {
	ID             string
	EmployeeID     string
	Name           string
	ExpirationDate time.Time // somente a parte de data é significativa
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
