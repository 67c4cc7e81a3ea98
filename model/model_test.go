package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesOrder(t *testing.T) {
	t.Parallel()

	m := New("User",
		Attribute{Name: "id", Kind: "int"},
		Attribute{Name: "name", Kind: "string"},
		Attribute{Name: "id", Kind: "uuid"},
	)

	assert.Equal(t, "User", m.DisplayName())
	assert.Equal(t, []string{"id", "name"}, m.AttributeNames())

	attr, ok := m.Attribute("id")
	require.True(t, ok)
	assert.Equal(t, "uuid", attr.Kind)

	_, ok = m.Attribute("missing")
	assert.False(t, ok)
}

func TestModel_HasAttribute(t *testing.T) {
	t.Parallel()

	m := Names("Post", "title", "body")

	assert.True(t, m.HasAttribute("title"))
	assert.False(t, m.HasAttribute("author"))
}

func TestModel_AttributesReturnsCopy(t *testing.T) {
	t.Parallel()

	m := Names("Post", "title")

	attrs := m.Attributes()
	attrs[0].Name = "changed"

	assert.Equal(t, []string{"title"}, m.AttributeNames())
}

type audit struct {
	CreatedBy string `json:"created_by"`
}

type account struct {
	audit

	ID       int    `json:"id"`
	Email    string `json:"email,omitempty"`
	Password string `json:"-"`
	Nickname string
	internal string
}

func TestFromStruct(t *testing.T) {
	t.Parallel()

	m, err := FromStruct("", &account{}, "json")

	require.NoError(t, err)
	assert.Equal(t, "account", m.DisplayName())
	assert.Equal(t, []string{"created_by", "id", "email", "Nickname"}, m.AttributeNames())

	attr, ok := m.Attribute("id")
	require.True(t, ok)
	assert.Equal(t, "int", attr.Kind)
}

func TestFromStruct_NoTag(t *testing.T) {
	t.Parallel()

	m, err := FromStruct("Account", account{}, "")

	require.NoError(t, err)
	assert.Equal(t, "Account", m.DisplayName())
	assert.Equal(t, []string{"CreatedBy", "ID", "Email", "Password", "Nickname"}, m.AttributeNames())
}

func TestFromStruct_NotStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "nil", value: nil},
		{name: "int", value: 3},
		{name: "map", value: map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := FromStruct("x", tt.value, "json")

			require.ErrorIs(t, err, ErrNotStruct)
			assert.Nil(t, m)
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	require.NoError(t, registry.Register("user", Names("User", "id")))
	require.NoError(t, registry.Register("post", Names("Post", "id")))

	err := registry.Register("user", Names("User", "id"))
	require.ErrorIs(t, err, ErrDuplicateModel)

	require.ErrorIs(t, registry.Register("", Names("X")), ErrEmptyModelName)
	require.ErrorIs(t, registry.Register("nil", nil), ErrNilSchema)

	schema, ok := registry.Lookup("user")
	require.True(t, ok)
	assert.Equal(t, "User", schema.DisplayName())

	_, ok = registry.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"post", "user"}, registry.Names())
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := registry.Register("shared", Names("Shared", "id"))
			if err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 15, failures)
	assert.Equal(t, []string{"shared"}, registry.Names())
}
