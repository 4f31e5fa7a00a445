package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFlag(t *testing.T) {
	var p priceFlag
	a, b := uuid.New(), uuid.New()

	require.NoError(t, p.Set(a.String()+"=2.50"))
	require.NoError(t, p.Set(" "+b.String()+" =0"))
	require.NoError(t, p.Set(a.String()+"=3"))

	assert.Equal(t, priceFlag{a: "3", b: "0"}, p)

	assert.Error(t, p.Set("2.50"))
	assert.Error(t, p.Set("not-a-uuid=1"))
}

func TestParseProduct(t *testing.T) {
	_, err := parseProduct("")
	assert.Error(t, err)

	id := uuid.New()
	got, err := parseProduct(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
