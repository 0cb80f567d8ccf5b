package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("ai.provider", "openai"))
	require.NoError(t, store.Set("ai.provider", "anthropic"))

	val, ok := store.Get("ai.provider")
	assert.True(t, ok)
	assert.Equal(t, "anthropic", val)
	assert.Equal(t, "anthropic", store.GetString("ai.provider"))
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("payroll.deduction_rate", 0.2))

	assert.Equal(t, "", store.GetString("payroll.deduction_rate"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("f64", 0.2))
	require.NoError(t, store.Set("i", 3))
	require.NoError(t, store.Set("i64", int64(4)))
	require.NoError(t, store.Set("s", "0.5"))

	assert.InDelta(t, 0.2, store.GetFloat("f64"), 1e-9)
	assert.InDelta(t, 3.0, store.GetFloat("i"), 1e-9)
	assert.InDelta(t, 4.0, store.GetFloat("i64"), 1e-9)
	assert.Zero(t, store.GetFloat("s"))
	assert.Zero(t, store.GetFloat("missing"))

	v, _ := store.Get("i")
	assert.IsType(t, float64(0), v)
}

func TestConfigStore_SaveLoad_NoOp(t *testing.T) {
	store := NewConfigStore()
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
}
