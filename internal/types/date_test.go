package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pocketbook/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	assert.Equal(t, "2024-02-09", types.NewDate(2024, 2, 9).String())
}

func TestDateOfDropsTime(t *testing.T) {
	d := types.DateOf(time.Date(2024, 5, 12, 17, 59, 23, 0, time.FixedZone("CEST", 7200)))
	assert.Equal(t, types.NewDate(2024, 5, 12), d)
}

func TestParseDate(t *testing.T) {
	d, err := types.ParseDate("2023-12-31")
	require.Nil(t, err)
	assert.Equal(t, types.NewDate(2023, 12, 31), d)

	_, err = types.ParseDate("31/12/2023")
	assert.NotNil(t, err)
}

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want types.Date
	}{
		{"Date", `{ "date": "2024-05-12" }`, types.NewDate(2024, 5, 12)},
		{"RFC3339", `{ "date": "2024-05-12T17:59:23+02:00" }`, types.NewDate(2024, 5, 12)},
		{"Empty", `{ "date": "" }`, types.Date{}},
		{"Null", `{ "date": null }`, types.Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target struct {
				Date types.Date
			}

			err := json.Unmarshal([]byte(tt.json), &target)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, target.Date)
		})
	}
}

func TestDateMarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Date types.Date `json:"date"`
	}{types.NewDate(1990, 1, 2)})

	assert.Nil(t, err)
	assert.Equal(t, `{"date":"1990-01-02"}`, string(b))
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  types.Date
	}{
		{"String", "2022-03-04", types.NewDate(2022, 3, 4)},
		{"Bytes", []byte("2022-03-04"), types.NewDate(2022, 3, 4)},
		{"Timestamp string", "2022-03-04 00:00:00+00:00", types.NewDate(2022, 3, 4)},
		{"Time", time.Date(2022, 3, 4, 0, 0, 0, 0, time.UTC), types.NewDate(2022, 3, 4)},
		{"Nil", nil, types.Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d types.Date
			assert.Nil(t, d.Scan(tt.value))
			assert.Equal(t, tt.want, d)
		})
	}

	var d types.Date
	assert.NotNil(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := types.NewDate(2022, 3, 4).Value()
	assert.Nil(t, err)
	assert.Equal(t, "2022-03-04", v)
}

func TestDateAddDate(t *testing.T) {
	assert.Equal(t, types.NewDate(2024, 3, 1), types.NewDate(2024, 2, 29).AddDate(0, 0, 1))
	assert.True(t, types.NewDate(2024, 1, 1).Before(types.NewDate(2024, 1, 2)))
	assert.True(t, types.NewDate(2024, 1, 2).After(types.NewDate(2024, 1, 1)))
}
