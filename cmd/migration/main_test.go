package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	assert.Error(t, err)
	_, err = parseSteps([]string{"two"})
	assert.Error(t, err)
}

func TestParseVersionAndTarget(t *testing.T) {
	v, err := parseVersion("2")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = parseVersion("-1")
	assert.Error(t, err)

	target, err := parseTarget("1")
	require.NoError(t, err)
	assert.Equal(t, uint(1), target)

	_, err = parseTarget("latest")
	assert.Error(t, err)
}

func TestNormalizeDBURL(t *testing.T) {
	got := normalizeDBURL("postgres://u:p@localhost:5432/hitting_tracker?sslmode=disable", true)
	assert.True(t, strings.Contains(got, "binary_parameters=yes"), got)

	in := "postgres://u:p@localhost:5432/hitting_tracker?sslmode=disable"
	assert.Equal(t, in, normalizeDBURL(in, false))
}
