package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuitInk(t *testing.T) {
	tests := []struct {
		tile string
		want any
	}{
		{"3m", SuitCharacters},
		{"9s", SuitBamboo},
		{"1p", SuitDots},
		{"east", BgDark},
		{"", BgDark},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SuitInk(tt.tile), tt.tile)
	}
}
