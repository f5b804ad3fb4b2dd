package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_CatalogNames(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Classic White T-Shirt", "classic-white-t-shirt"},
		{"New Arrivals", "new-arrivals"},
		{"Leather Crossbody Bag", "leather-crossbody-bag"},
		{"ALL UPPER CASE", "all-upper-case"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_Diacritics(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Crème Brûlée", "creme-brulee"},
		{"Café Noir", "cafe-noir"},
		{"Çocuk Ürünleri", "cocuk-urunleri"},
		{"İstanbul", "istanbul"},
		{"Straße", "strasse"},
		{"Smørrebrød", "smorrebrod"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_SpecialCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello!!! World???", "hello-world"},
		{"price: $100", "price-100"},
		{"one & two", "one-two"},
		{"a---b", "a-b"},
		{"-hello-", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_EdgeCases(t *testing.T) {
	assert.Equal(t, "", Generate(""))
	assert.Equal(t, "", Generate("   "))
	assert.Equal(t, "", Generate("!!!"))
	assert.Equal(t, "123", Generate("123"))
}

func TestNormalize_MatchesStoredSlug(t *testing.T) {
	assert.Equal(t, "denim-jacket-men", Normalize("  Denim-Jacket-MEN "))
	assert.Equal(t, "trench-coat", Normalize("trench-coat"))
	assert.Equal(t, "creme-sweater", Normalize("crème-sweater"))
}
