package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_KnownCategories(t *testing.T) {
	catalog := Default()

	for _, category := range []string{
		"SETTLEMENT_STATEMENT", "PURCHASE_AGREEMENT", "LOAN_APPLICATION",
		"TITLE_INSURANCE", "DEED",
	} {
		_, ok := catalog.Lookup(category)
		assert.True(t, ok, "category %s should be known", category)
	}
	assert.Len(t, catalog.Categories(), 5)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	catalog := Default()

	entry, ok := catalog.Lookup("purchase_agreement")
	require.True(t, ok)
	assert.Contains(t, entry.RequiredFields, "earnest_money")
	assert.Equal(t, []string{"buyer", "seller"}, entry.RequiredSignatures)
}

func TestLookup_UnknownCategory(t *testing.T) {
	entry, ok := Default().Lookup("POWER_OF_ATTORNEY")

	assert.False(t, ok)
	assert.Empty(t, entry.RequiredFields)
	assert.Empty(t, entry.RequiredSignatures)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	catalog, err := Parse([]byte(`{
		"LEASE_AGREEMENT": {
			"required_fields": ["tenant_name", "landlord_name", "monthly_rent"],
			"required_signatures": ["tenant", "landlord"]
		},
		"DEED": {
			"required_fields": ["grantor_name"]
		}
	}`))
	require.NoError(t, err)

	lease, ok := catalog.Lookup("LEASE_AGREEMENT")
	require.True(t, ok)
	assert.Equal(t, []string{"tenant_name", "landlord_name", "monthly_rent"}, lease.RequiredFields)

	// A file category replaces the same-named default wholesale.
	deed, ok := catalog.Lookup("DEED")
	require.True(t, ok)
	assert.Equal(t, []string{"grantor_name"}, deed.RequiredFields)
	assert.Empty(t, deed.RequiredSignatures)

	// Untouched defaults survive the overlay.
	_, ok = catalog.Lookup("LOAN_APPLICATION")
	assert.True(t, ok)
	assert.Len(t, catalog.Categories(), 6)
}

func TestParse_LowercaseCategoryNormalized(t *testing.T) {
	catalog, err := Parse([]byte(`{"lease_agreement": {"required_fields": ["tenant_name"]}}`))
	require.NoError(t, err)

	_, ok := catalog.Lookup("LEASE_AGREEMENT")
	assert.True(t, ok)
}

func TestParse_RejectsInvalidShape(t *testing.T) {
	var catErr *CatalogError

	_, err := Parse([]byte(`{"DEED": {"required_fields": "not an array"}}`))
	require.ErrorAs(t, err, &catErr)

	_, err = Parse([]byte(`{"DEED": {"unknown_key": []}}`))
	require.ErrorAs(t, err, &catErr)

	_, err = Parse([]byte(`["not", "an", "object"]`))
	require.ErrorAs(t, err, &catErr)

	_, err = Parse([]byte(`{not json`))
	require.ErrorAs(t, err, &catErr)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"ESCROW_AGREEMENT": {"required_fields": ["escrow_agent"]}
	}`), 0644))

	catalog, err := LoadFile(path)
	require.NoError(t, err)

	entry, ok := catalog.Lookup("ESCROW_AGREEMENT")
	require.True(t, ok)
	assert.Equal(t, []string{"escrow_agent"}, entry.RequiredFields)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))

	var catErr *CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
