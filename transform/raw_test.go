package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverAliasFirstMatchWins(t *testing.T) {
	aliases := map[string][]string{
		"phone": {"phone_number", "contact_phone"},
	}

	t.Run("canonical name beats every alias", func(t *testing.T) {
		r := resolver{raw: RawRecord{"phone": "111", "phone_number": "222"}, aliases: aliases}
		assert.Equal(t, "111", r.str("phone"))
	})

	t.Run("aliases resolve in declared order", func(t *testing.T) {
		r := resolver{raw: RawRecord{"contact_phone": "333", "phone_number": "222"}, aliases: aliases}
		assert.Equal(t, "222", r.str("phone"))
	})

	t.Run("blank values do not shadow later aliases", func(t *testing.T) {
		r := resolver{raw: RawRecord{"phone": "  ", "phone_number": "222"}, aliases: aliases}
		assert.Equal(t, "222", r.str("phone"))
	})
}

func TestResolverStringCoercion(t *testing.T) {
	r := resolver{raw: RawRecord{
		"zip":    94102,
		"rate":   2200.5,
		"exact":  "as-is",
		"truthy": true,
	}}

	assert.Equal(t, "94102", r.str("zip"))
	assert.Equal(t, "2200.5", r.str("rate"))
	assert.Equal(t, "as-is", r.str("exact"))
	assert.Equal(t, "true", r.str("truthy"))
	assert.Equal(t, "", r.str("absent"))
}

func TestResolverNumberCoercion(t *testing.T) {
	r := resolver{raw: RawRecord{
		"a": "123.5",
		"b": 42,
		"c": "not a number",
		"d": "",
		"e": nil,
	}}

	require.NotNil(t, r.number("a"))
	assert.Equal(t, 123.5, *r.number("a"))
	require.NotNil(t, r.number("b"))
	assert.Equal(t, 42.0, *r.number("b"))

	// absent/empty/garbage all become nil, never NaN
	assert.Nil(t, r.number("c"))
	assert.Nil(t, r.number("d"))
	assert.Nil(t, r.number("e"))
	assert.Nil(t, r.number("missing"))
}

func TestResolverIntegerTruncates(t *testing.T) {
	r := resolver{raw: RawRecord{"floors": "3.9"}}
	require.NotNil(t, r.integer("floors"))
	assert.Equal(t, 3, *r.integer("floors"))
}

func TestResolverBooleanCoercion(t *testing.T) {
	r := resolver{raw: RawRecord{
		"yes1": "yes",
		"yes2": 1,
		"no1":  "off",
		"no2":  false,
		"junk": "perhaps",
	}}

	assert.True(t, r.boolean("yes1", false))
	assert.True(t, r.boolean("yes2", false))
	assert.False(t, r.boolean("no1", true))
	assert.False(t, r.boolean("no2", true))

	// unrecognizable and absent input falls back to the per-field default
	assert.True(t, r.boolean("junk", true))
	assert.True(t, r.boolean("absent", true))
	assert.False(t, r.boolean("absent", false))
}
