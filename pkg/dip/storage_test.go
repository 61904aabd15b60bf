package dip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInertStorages(t *testing.T) {
	tests := []struct {
		name    string
		storage KeyValueStorage
	}{
		{name: "user defaults", storage: UserDefaultsStorage{}},
		{name: "keychain", storage: KeychainStorage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.storage.Set("k", "true")

			_, ok := tt.storage.String("k")
			assert.False(t, ok)
			_, ok = tt.storage.Bool("k")
			assert.False(t, ok)
			assert.NotPanics(t, tt.storage.RemoveAll)
		})
	}
}

func TestMemoryStorage(t *testing.T) {
	m := NewMemoryStorage()

	_, ok := m.String("missing")
	assert.False(t, ok)

	m.Set("name", "ada")
	v, ok := m.String("name")
	assert.True(t, ok)
	assert.Equal(t, "ada", v)

	m.Set("name", "grace")
	v, _ = m.String("name")
	assert.Equal(t, "grace", v)
	assert.Equal(t, 1, m.Len())

	m.RemoveAll()
	assert.Zero(t, m.Len())
	_, ok = m.String("name")
	assert.False(t, ok)
}

func TestMemoryStorage_Bool(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   bool
		wantOK bool
	}{
		{name: "true", stored: "true", want: true, wantOK: true},
		{name: "one", stored: "1", want: true, wantOK: true},
		{name: "false", stored: "false", want: false, wantOK: true},
		{name: "not a bool", stored: "maybe", want: false, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemoryStorage()
			m.Set("flag", tt.stored)

			got, ok := m.Bool("flag")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryStorage_ZeroValue(t *testing.T) {
	var m MemoryStorage
	m.Set("k", "v")
	v, ok := m.String("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
