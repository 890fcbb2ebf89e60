package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		input    string
		expected Route
		str      string
	}{
		{"contactsList", Route{Destination: ContactsList}, "contactsList"},
		{"contasList", Route{Destination: ContasList}, "contasList"},
		{"contactDetails/3", Route{Destination: ContactDetails, ID: 3}, "contactDetails/3"},
		{"contactForm", Route{Destination: ContactForm}, "contactForm"},
		{"contactForm?contactId=12", Route{Destination: ContactForm, ID: 12}, "contactForm?contactId=12"},
		{"contactForm?contactId=abc", Route{Destination: ContactForm}, "contactForm"},
		{"contaForm?idConta=7", Route{Destination: ContaForm, ID: 7}, "contaForm?idConta=7"},
		{"contaForm?idConta=", Route{Destination: ContaForm}, "contaForm"},
		{"contaForm?idConta=-4", Route{Destination: ContaForm}, "contaForm"},
		{" contaForm ", Route{Destination: ContaForm}, "contaForm"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseRoute(tt.input)
			require.Nil(t, err)
			assert.Equal(t, tt.expected, r)
			assert.Equal(t, tt.str, r.String())

			again, err := ParseRoute(r.String())
			require.Nil(t, err)
			assert.Equal(t, r, again)
		})
	}
}

func TestParseRouteErrors(t *testing.T) {
	for _, input := range []string{"", "settings", "contactDetails", "contactDetails/0", "contactDetails/x", "listaContas"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRoute(input)
			assert.ErrorIs(t, err, ErrRouteUnknown)
		})
	}
}
