package ocp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyFetchers_NeverComplete(t *testing.T) {
	called := false
	UserFetcher{}.FetchUsers(func(bool) { called = true })
	PlayerFetcher{}.FetchPlayers(func(bool) { called = true })
	assert.False(t, called)
}

func TestFetcher_DecodesUsers(t *testing.T) {
	f := NewFetcher[User](strings.NewReader(`[{"id":1,"name":"ada"},{"id":2,"name":"linus"}]`))

	var got []User
	err := f.Fetch(func(items []User) { got = items })
	require.NoError(t, err)
	assert.Equal(t, []User{{ID: 1, Name: "ada"}, {ID: 2, Name: "linus"}}, got)
}

func TestFetcher_ExtendsToPlayersWithoutChanges(t *testing.T) {
	f := NewFetcher[Player](strings.NewReader(`[{"id":7,"name":"mia","team":"red","rating":1800}]`))

	var got []Player
	require.NoError(t, f.Fetch(func(items []Player) { got = items }))
	require.Len(t, got, 1)
	assert.Equal(t, "red", got[0].Team)
	assert.Equal(t, 1800, got[0].Rating)
}

func TestFetcher_ZeroValueFetchesEmptyList(t *testing.T) {
	var f Fetcher[User]

	var got []User
	called := false
	require.NoError(t, f.Fetch(func(items []User) {
		called = true
		got = items
	}))
	assert.True(t, called)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFetcher_NullDecodesToEmptyList(t *testing.T) {
	f := NewFetcher[User](strings.NewReader(`null`))

	var got []User
	require.NoError(t, f.Fetch(func(items []User) { got = items }))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFetcher_NilCompletion(t *testing.T) {
	f := NewFetcher[User](strings.NewReader(`[]`))
	assert.NoError(t, f.Fetch(nil))
}

func TestFetcher_DecodeError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed json", input: `[{"id":`},
		{name: "object instead of array", input: `{"id":1}`},
		{name: "wrong field type", input: `[{"id":"one"}]`},
		{name: "trailing data", input: `[{"id":1,"name":"ada"}] }garbage`},
		{name: "second array", input: `[] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFetcher[User](strings.NewReader(tt.input))
			called := false
			err := f.Fetch(func([]User) { called = true })
			require.ErrorIs(t, err, ErrDecode)
			assert.False(t, called)
		})
	}
}
