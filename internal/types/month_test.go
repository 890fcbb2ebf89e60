package types_test

import (
	"testing"

	"github.com/pocketbook/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	m, err := types.ParseMonth("2024-07")
	assert.Nil(t, err)
	assert.Equal(t, types.NewMonth(2024, 7), m)
	assert.Equal(t, "2024-07", m.String())

	_, err = types.ParseMonth("2024-13")
	assert.NotNil(t, err)
}

func TestMonthContains(t *testing.T) {
	m := types.NewMonth(2024, 7)

	assert.True(t, m.Contains(types.NewDate(2024, 7, 31)))
	assert.False(t, m.Contains(types.NewDate(2024, 8, 1)))
	assert.False(t, m.Contains(types.NewDate(2023, 7, 1)))
	assert.Equal(t, m, types.MonthOf(types.NewDate(2024, 7, 15)))
}
