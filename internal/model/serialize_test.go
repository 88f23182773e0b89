package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDirectory(t *testing.T) {
	content := `businesses:
  - id: 10
    name: Corner Bakery
    category: restaurant
    location: 1 Main St
    description: |
      Fresh bread daily.
      Closed Mondays.
    phone: "555-0110"
  - name: Fix-It Shop
    category: Service
    location: 2 Side St
    description: Repairs
    website: https://fixit.example.com
`

	records, err := DecodeDirectory([]byte(content))
	require.NoError(t, err)
	require.Len(t, records, 2)

	bakery := records[0]
	assert.Equal(t, 10, bakery.ID)
	assert.Equal(t, "Corner Bakery", bakery.Name)
	assert.Equal(t, CategoryRestaurant, bakery.Category, "category names are case-insensitive")
	assert.Equal(t, "Fresh bread daily.\nClosed Mondays.\n", bakery.Description)
	require.NotNil(t, bakery.Phone)
	assert.Equal(t, "555-0110", *bakery.Phone)
	assert.Nil(t, bakery.Website)

	shop := records[1]
	assert.Equal(t, 0, shop.ID, "missing IDs decode as zero")
	assert.Nil(t, shop.Phone)
	require.NotNil(t, shop.Website)
	assert.Equal(t, "https://fixit.example.com", *shop.Website)
}

func TestDecodeDirectoryUnknownCategory(t *testing.T) {
	records, err := DecodeDirectory([]byte("businesses:\n  - name: X\n    category: Bakery\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Category("Bakery"), records[0].Category)
	assert.False(t, records[0].Category.Valid())
}

func TestDecodeDirectoryInvalidYAML(t *testing.T) {
	_, err := DecodeDirectory([]byte("businesses: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse directory document")
}

func TestEncodeDirectory(t *testing.T) {
	records := SampleBusinesses()[:2]
	records[1].Description = "Line one\nLine two"

	data, err := EncodeDirectory(records)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "businesses:\n"))
	assert.Contains(t, out, "name: Gourmet Grove")
	assert.Contains(t, out, "phone: 555-0101")
	assert.Contains(t, out, "description: |-\n")

	// The Artisan Shelf has no phone; the key must be omitted rather than empty
	shelf := out[strings.Index(out, "The Artisan Shelf"):]
	assert.NotContains(t, shelf, "phone:")

	// Order and content survive a decode
	decoded, err := DecodeDirectory(data)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestEncodeDirectoryQuotesAmbiguousStrings(t *testing.T) {
	records := []Business{{
		ID:          1,
		Name:        "1234",
		Category:    CategoryRetail,
		Location:    "true",
		Description: "x",
		Phone:       OptionalString("5550101"),
	}}

	data, err := EncodeDirectory(records)
	require.NoError(t, err)

	decoded, err := DecodeDirectory(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "1234", decoded[0].Name)
	assert.Equal(t, "true", decoded[0].Location)
	assert.Equal(t, "5550101", decoded[0].PhoneText())
}

func TestEncodeInput(t *testing.T) {
	in := BusinessInput{Category: CategoryRestaurant}
	data, err := EncodeInput(&in)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "name: \"\"")
	assert.Contains(t, out, "category: Restaurant")
	assert.NotContains(t, out, "phone")

	edited := strings.Replace(out, "name: \"\"", "name: Noodle Bar", 1)
	got, err := DecodeInput([]byte(edited))
	require.NoError(t, err)
	assert.Equal(t, "Noodle Bar", got.Name)
	assert.Equal(t, CategoryRestaurant, got.Category)

	_, err = DecodeInput([]byte("name: [oops"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}
