package datasource

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/shopspring/decimal"
)

var (
	firstNames = []string{
		"João", "José", "Everton", "Marcos", "André", "Anderson", "Antônio",
		"Laura", "Ana", "Maria", "Joaquina", "Suelen",
	}
	lastNames = []string{
		"Do Carmo", "Oliveira", "Dos Santos", "Da Silva", "Brasil", "Pichetti",
		"Cordeiro", "Silveira", "Andrades", "Cardoso",
	}
)

// MaxGeneratedContacts is the number of distinct full names GenerateContacts can produce.
var MaxGeneratedContacts = len(firstNames) * len(lastNames)

// GenerateContacts returns n contacts with identifiers 1 to n and unique
// full names. n is capped at MaxGeneratedContacts.
func GenerateContacts(r *rand.Rand, n int, now time.Time) []models.Contact {
	n = min(n, MaxGeneratedContacts)

	contacts := make([]models.Contact, 0, n)
	seen := make(map[string]bool, n)

	for len(contacts) < n {
		c := models.Contact{
			ID:        len(contacts) + 1,
			FirstName: firstNames[r.IntN(len(firstNames))],
			LastName:  lastNames[r.IntN(len(lastNames))],
			BirthDate: types.DateOf(now),
			Type:      models.ContactTypePersonal,
			CreatedAt: now.UTC(),
		}

		if seen[c.FullName()] {
			continue
		}
		seen[c.FullName()] = true
		contacts = append(contacts, c)
	}

	return contacts
}

type contaTemplate struct {
	description string
	day         int
	low, high   int64
	kind        models.ContaType
}

var ledgerTemplates = []contaTemplate{
	{"Salário", 5, 3500, 6500, models.ContaTypeIncome},
	{"Aluguel", 10, 900, 1800, models.ContaTypeExpense},
	{"Conta de luz", 12, 90, 260, models.ContaTypeExpense},
	{"Conta de água", 15, 40, 120, models.ContaTypeExpense},
	{"Internet", 18, 80, 150, models.ContaTypeExpense},
	{"Mercado", 20, 400, 1100, models.ContaTypeExpense},
	{"Freelance", 22, 300, 1500, models.ContaTypeIncome},
	{"Academia", 25, 70, 140, models.ContaTypeExpense},
	{"Farmácia", 27, 30, 200, models.ContaTypeExpense},
	{"Venda de usados", 28, 50, 400, models.ContaTypeIncome},
}

// GenerateContas returns up to n ledger entries in the month of today with
// identifiers 1 to n. Entries dated before today are paid.
func GenerateContas(r *rand.Rand, n int, today types.Date) []models.Conta {
	n = min(n, len(ledgerTemplates))
	contas := make([]models.Conta, 0, n)

	for i, t := range ledgerTemplates[:n] {
		date := types.NewDate(today.Year(), today.Month(), 1).AddDate(0, 0, t.day-1)

		cents := (t.low + r.Int64N(t.high-t.low+1)) * 100
		cents += r.Int64N(100)

		contas = append(contas, models.Conta{
			ID:          i + 1,
			Description: t.description,
			Date:        date,
			Amount:      decimal.New(cents, -2),
			Paid:        date.Before(today),
			Type:        t.kind,
		})
	}

	return contas
}

// SeedIfEmpty saves the records into the store when it holds no records yet.
// Identifiers of the records are reassigned by the store.
func SeedIfEmpty[T models.Model[T]](ctx context.Context, store Store[T], records []T) error {
	existing, err := store.FindAll(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		return nil
	}

	for _, record := range records {
		if _, err := store.Save(ctx, record.WithID(0)); err != nil {
			return fmt.Errorf("seeding %s: %w", record.TableName(), err)
		}
	}

	return nil
}
