package list_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/odit-bit/spesabot/spesa/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ list.Persister = (*memPersister)(nil)

// memPersister keeps the serialized document in memory.
type memPersister struct {
	doc     []byte
	saves   int
	saveErr error
}

func (m *memPersister) Load(v any) (bool, error) {
	if m.doc == nil {
		return false, nil
	}
	return true, json.Unmarshal(m.doc, v)
}

func (m *memPersister) Save(v any) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.doc = b
	m.saves++
	return nil
}

func openEmpty(t *testing.T) (*list.Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	s, err := list.Open(p)
	require.NoError(t, err)
	return s, p
}

func TestStore_add_and_get(t *testing.T) {
	s, p := openEmpty(t)

	it, ok := s.Add("42", "2 kg di patate")
	require.True(t, ok)
	assert.Equal(t, "patate", it.Name)
	assert.Equal(t, "2 kg", it.Quantity)
	assert.Equal(t, "Frutta e Verdura", it.Category)

	items := s.Items("42")
	require.Len(t, items, 1)
	assert.Equal(t, it, items[0])
	assert.Equal(t, 1, p.saves)
}

func TestStore_add_empty_input(t *testing.T) {
	s, p := openEmpty(t)

	_, ok := s.Add("42", "   ")
	assert.False(t, ok)
	assert.Empty(t, s.Items("42"))
	assert.Zero(t, p.saves)
}

func TestStore_duplicate_updates_in_place(t *testing.T) {
	s, _ := openEmpty(t)

	_, ok := s.Add("42", "patate")
	require.True(t, ok)
	it, ok := s.Add("42", "2 kg di Patate")
	require.True(t, ok)

	items := s.Items("42")
	require.Len(t, items, 1)
	assert.Equal(t, "patate", items[0].Name)
	assert.Equal(t, "2 kg", items[0].Quantity)
	assert.Equal(t, it, items[0])

	// a bare re-add keeps the explicit quantity
	_, ok = s.Add("42", "patate")
	require.True(t, ok)
	assert.Equal(t, "2 kg", s.Items("42")[0].Quantity)
}

func TestStore_remove(t *testing.T) {
	s, _ := openEmpty(t)
	s.Add("42", "pane")
	s.Add("42", "latte")

	removed, ok := s.Remove("42", 0)
	require.True(t, ok)
	assert.Equal(t, "pane", removed.Name)
	require.Len(t, s.Items("42"), 1)
	assert.Equal(t, "latte", s.Items("42")[0].Name)
}

func TestStore_remove_out_of_bounds(t *testing.T) {
	s, _ := openEmpty(t)
	s.Add("42", "pane")

	before := s.Items("42")
	for _, idx := range []int{-1, 1, 99} {
		_, ok := s.Remove("42", idx)
		assert.False(t, ok)
	}
	assert.Equal(t, before, s.Items("42"))
}

func TestStore_clear_keeps_identifier(t *testing.T) {
	s, _ := openEmpty(t)
	s.Add("42", "pane")

	s.Clear("42")
	assert.Empty(t, s.Items("42"))

	_, ok := s.Add("42", "latte")
	assert.True(t, ok)
	require.Len(t, s.Items("42"), 1)
}

func TestStore_set_quantity(t *testing.T) {
	s, _ := openEmpty(t)
	s.Add("42", "pane")

	assert.True(t, s.SetQuantity("42", 0, "2 pz"))
	assert.Equal(t, "2 pz", s.Items("42")[0].Quantity)

	assert.False(t, s.SetQuantity("42", 5, "3"))
	assert.False(t, s.SetQuantity("42", 0, ""))
}

func TestStore_save_failure_keeps_memory(t *testing.T) {
	p := &memPersister{saveErr: errors.New("disk full")}
	s, err := list.Open(p)
	require.NoError(t, err)

	_, ok := s.Add("42", "pane")
	require.True(t, ok)
	require.Len(t, s.Items("42"), 1)
}

func TestStore_roundtrip(t *testing.T) {
	p := &memPersister{}
	s, err := list.Open(p)
	require.NoError(t, err)
	s.Add("42", "2 kg di patate")
	s.Add("-100", "latte")

	reloaded, err := list.Open(p)
	require.NoError(t, err)
	assert.Equal(t, s.Items("42"), reloaded.Items("42"))
	assert.Equal(t, s.Items("-100"), reloaded.Items("-100"))
}

func TestOpen_upgrades_legacy_string_lists(t *testing.T) {
	p := &memPersister{doc: []byte(`{"42": ["pane", "latte"]}`)}
	s, err := list.Open(p)
	require.NoError(t, err)

	items := s.Items("42")
	require.Len(t, items, 2)
	assert.Equal(t, "pane", items[0].Name)
	assert.Equal(t, "1", items[0].Quantity)
	assert.Equal(t, "Pane e Cereali", items[0].Category)
	// upgrade is persisted immediately
	assert.Equal(t, 1, p.saves)
}

func TestOpen_repairs_nested_name_records(t *testing.T) {
	doc := `{"42": [
		{"name": {"name": {"name": "pane", "quantity": "1"}, "quantity": "1"}, "quantity": "2 pz"},
		{"name": 12, "quantity": "1"},
		{"name": "latte"}
	]}`
	p := &memPersister{doc: []byte(doc)}
	s, err := list.Open(p)
	require.NoError(t, err)

	items := s.Items("42")
	require.Len(t, items, 2)
	assert.Equal(t, "pane", items[0].Name)
	assert.Equal(t, "2 pz", items[0].Quantity)
	assert.Equal(t, "latte", items[1].Name)
	assert.Equal(t, "1", items[1].Quantity)
	assert.NotEmpty(t, items[1].Category)
	assert.Equal(t, 1, p.saves)
}

func TestKeyFor_scopes(t *testing.T) {
	group := list.KeyFor(-100123, 42)
	private := list.KeyFor(42, 42)
	assert.NotEqual(t, group, private)
	assert.Equal(t, "-100123", group)
	assert.Equal(t, "42", private)

	assert.Equal(t, "Lista di gruppo", list.Scope(-100123))
	assert.Equal(t, "Lista personale", list.Scope(42))
}

func TestStore_group_and_private_are_distinct(t *testing.T) {
	s, _ := openEmpty(t)
	s.Add(list.KeyFor(-100123, 42), "pane")

	assert.Empty(t, s.Items(list.KeyFor(42, 42)))
	require.Len(t, s.Items(list.KeyFor(-100123, 7)), 1)
}
