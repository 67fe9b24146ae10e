package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, member := range Categories() {
		parsed, err := ParseCategory(member.Name())
		require.NoError(t, err)
		assert.Equal(t, member, parsed)
	}
}

func TestParseCategoryUnknownName(t *testing.T) {
	_, err := ParseCategory("something")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "something")
	// the error must list the valid set
	for _, name := range CategoryNames() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestParseCategoryIsCaseSensitive(t *testing.T) {
	_, err := ParseCategory("cloths")
	assert.Error(t, err)
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "UNKNOWN", CategoryUnknown.Name())
	assert.Equal(t, "CLOTHS", CategoryCloths.Name())
	assert.Equal(t, "TOOLS", CategoryTools.Name())
	// out-of-range values fall back to the default member
	assert.Equal(t, "UNKNOWN", Category(99).Name())
	assert.Equal(t, "UNKNOWN", Category(-1).Name())
}

func TestCategoryScanValue(t *testing.T) {
	value, err := CategoryFood.Value()
	require.NoError(t, err)
	assert.Equal(t, "FOOD", value)

	var c Category
	require.NoError(t, c.Scan("AUTOMOTIVE"))
	assert.Equal(t, CategoryAutomotive, c)

	require.NoError(t, c.Scan([]byte("TOOLS")))
	assert.Equal(t, CategoryTools, c)
}

func TestCategoryScanFallback(t *testing.T) {
	// unrecognized legacy data scans as the default member, never an error
	c := CategoryFood
	require.NoError(t, c.Scan("DISCONTINUED"))
	assert.Equal(t, CategoryUnknown, c)

	c = CategoryFood
	require.NoError(t, c.Scan(nil))
	assert.Equal(t, CategoryUnknown, c)

	assert.Error(t, c.Scan(3.14))
}
