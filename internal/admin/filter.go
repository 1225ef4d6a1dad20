package admin

import (
	"strings"
	"time"

	"github.com/idealmodas/crediario/internal/entity"
)

// Credit é a linha como o painel enxerga: status em inglês,
// pronta para filtragem local.
type Credit struct {
	ID            int64
	Name          string
	MotherName    string
	FatherName    string
	MaritalStatus string
	Gender        string
	BirthDate     string
	CPF           string
	Phone         string
	Email         string
	CEP           string
	City          string
	Address       string
	Salary        string
	Status        string // pending | approved | rejected
	Limit         *float64
	CreatedAt     time.Time
}

func creditFromRow(row entity.CreditApplication) Credit {
	return Credit{
		ID:            row.ID,
		Name:          row.Name,
		MotherName:    row.MotherName,
		FatherName:    row.FatherName,
		MaritalStatus: row.MaritalStatus,
		Gender:        row.Gender,
		BirthDate:     row.BirthDate,
		CPF:           row.CPF,
		Phone:         row.Phone,
		Email:         row.Email,
		CEP:           row.CEP,
		City:          row.City,
		Address:       row.Address,
		Salary:        row.Salary,
		Status:        row.Status.ClientName(),
		Limit:         row.CreditLimit,
		CreatedAt:     row.CreatedAt,
	}
}

// Filter é recalculado a cada mudança e não é persistido.
type Filter struct {
	Term      string
	Status    string // "all" ou um status do painel
	StartDate *time.Time
	EndDate   *time.Time
}

// Match: todas as condições precisam valer. Termo vazio passa tudo;
// termo procura em nome (sem caixa), CPF e telefone.
func (f Filter) Match(c Credit) bool {
	if f.Term != "" {
		term := strings.ToLower(f.Term)
		if !strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(c.CPF, f.Term) &&
			!strings.Contains(c.Phone, f.Term) {
			return false
		}
	}

	if f.Status != "" && f.Status != "all" && c.Status != f.Status {
		return false
	}

	if f.StartDate != nil && c.CreatedAt.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && c.CreatedAt.After(*f.EndDate) {
		return false
	}

	return true
}

func applyFilter(list []Credit, f Filter) []Credit {
	filtered := make([]Credit, 0, len(list))
	for _, c := range list {
		if f.Match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

type Stats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

// computeStats conta sobre a lista completa, nunca sobre a filtrada.
func computeStats(list []Credit) Stats {
	stats := Stats{Total: len(list)}
	for _, c := range list {
		switch c.Status {
		case "pending":
			stats.Pending++
		case "approved":
			stats.Approved++
		case "rejected":
			stats.Rejected++
		}
	}
	return stats
}
