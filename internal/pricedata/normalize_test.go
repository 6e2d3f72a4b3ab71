package pricedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips the generic neighborhood word",
			input: "حي السفارات",
			want:  "السفارات",
		},
		{
			name:  "folds alef variants",
			input: "إشبيلية",
			want:  "اشبيليه",
		},
		{
			name:  "folds taa marbuta",
			input: "المونسية",
			want:  "المونسيه",
		},
		{
			name:  "folds alef maksura",
			input: "الندى",
			want:  "الندي",
		},
		{
			name:  "collapses whitespace",
			input: "  ظهرة   لبن  ",
			want:  "ظهره لبن",
		},
		{
			name:  "lowercases latin text",
			input: "Al Olaya",
			want:  "al olaya",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"حي السفارات",
		"السفارات",
		"إشبيلية",
		"ظهرة لبن",
		"  الملقا  ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", in)
	}
}

func TestNormalize_PrefixedAndBareNamesAgree(t *testing.T) {
	assert.Equal(t, Normalize("السفارات"), Normalize("حي السفارات"))
	assert.Equal(t, Normalize("الملقا"), Normalize("حي الملقا"))
}
