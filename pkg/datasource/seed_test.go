package datasource_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContacts(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	contacts := datasource.GenerateContacts(rand.New(rand.NewPCG(7, 7)), 20, now)

	require.Len(t, contacts, 20)

	names := make(map[string]bool)
	for i, c := range contacts {
		assert.Equal(t, i+1, c.ID)
		assert.False(t, names[c.FullName()], "duplicate name %s", c.FullName())
		names[c.FullName()] = true

		assert.Equal(t, models.ContactTypePersonal, c.Type)
		assert.Equal(t, now, c.CreatedAt)
	}
}

func TestGenerateContactsCapped(t *testing.T) {
	contacts := datasource.GenerateContacts(rand.New(rand.NewPCG(1, 1)), 1000, time.Now())
	assert.Len(t, contacts, datasource.MaxGeneratedContacts)
}

func TestGenerateContas(t *testing.T) {
	today := types.NewDate(2024, 2, 14)
	contas := datasource.GenerateContas(rand.New(rand.NewPCG(3, 4)), 8, today)

	require.Len(t, contas, 8)

	month := types.MonthOf(today)
	for i, c := range contas {
		assert.Equal(t, i+1, c.ID)
		assert.True(t, month.Contains(c.Date), c.Date.String())
		assert.True(t, c.Amount.IsPositive(), c.Description)
		assert.Equal(t, c.Date.Before(today), c.Paid, c.Description)
	}
}

func TestSeedIfEmpty(t *testing.T) {
	store := datasource.NewMemory[models.Conta]()
	records := []models.Conta{{ID: 10, Description: "Aluguel"}, {ID: 20, Description: "Luz"}}

	require.Nil(t, datasource.SeedIfEmpty[models.Conta](context.Background(), store, records))
	require.Nil(t, datasource.SeedIfEmpty[models.Conta](context.Background(), store, records))

	all, err := store.FindAll(context.Background())
	require.Nil(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 2, all[1].ID)
}
