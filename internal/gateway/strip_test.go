package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDropsDerivedKeys(t *testing.T) {
	raw := map[string]any{
		"name":               "Ana",
		"customer_name":      "Ana",
		"customer_phone":     "600000000",
		"customer_email":     "ana@example.com",
		"appointments_count": 3,
		"total_spent":        120.5,
		"total":              121.0,
		"status":             "paid",
	}

	out := Strip(raw)
	assert.Equal(t, map[string]any{"name": "Ana", "status": "paid"}, out)
	assert.Len(t, raw, 8, "input map is left untouched")
}

func TestColumnNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ColumnNames(map[string]any{"c": 1, "a": 2, "b": 3}))
	assert.Empty(t, ColumnNames(nil))
}
