package status

import (
	"time"

	"github.com/gestaodocs/gestaodocs-api/internal/domain/entity"
)

// Status de um funcionário em relação aos vencimentos de seus documentos.
type Status string

const (
	Valid    Status = "valid"
	Expiring Status = "expiring"
	Expired  Status = "expired"
)

// ExpiringWindowDays horizonte em dias corridos dentro do qual um documento
// ainda válido é sinalizado como "expiring".
const ExpiringWindowDays = 30

// Classify classifica um conjunto de documentos contra a data de referência today.
// Precedência fixa: expired > expiring > valid.
//   - expired:  algum documento vence antes de today.
//   - expiring: algum documento vence em [today, today+30d] inclusive.
//   - valid:    caso contrário (inclusive lista vazia).
//
// As comparações usam só a data civil (ano/mês/dia); a hora do relógio é ignorada,
// então um documento que vence hoje é "expiring", nunca "expired".
func Classify(docs []entity.Document, today time.Time) Status {
	ref := truncateToDate(today)
	limit := ref.AddDate(0, 0, ExpiringWindowDays)

	expiring := false
	for _, doc := range docs {
		exp := truncateToDate(doc.ExpirationDate)
		if exp.Before(ref) {
			return Expired
		}
		if !exp.After(limit) {
			expiring = true
		}
	}
	if expiring {
		return Expiring
	}
	return Valid
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
