package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  Annulé ", want: "annule"},
		{in: "REMBOURSÉ", want: "rembourse"},
		{in: "Canceled", want: "canceled"},
		{in: "Jean   Dupont", want: "jean dupont"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}
