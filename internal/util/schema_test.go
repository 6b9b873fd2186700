package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor(t *testing.T) {
	type searchArgs struct {
		Query    string  `json:"query" description:"Free text query"`
		Category string  `json:"category,omitempty" enum:"electronics,apparel,home"`
		MaxPrice float64 `json:"max_price,omitempty"`
		Limit    *int    `json:"limit"`
	}

	schema := SchemaFor(searchArgs{})

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"query"}, schema["required"])

	props := schema["properties"].(map[string]any)
	require.Contains(t, props, "query")
	require.Contains(t, props, "category")
	require.Contains(t, props, "max_price")
	require.Contains(t, props, "limit")

	query := props["query"].(map[string]any)
	assert.Equal(t, "string", query["type"])
	assert.Equal(t, "Free text query", query["description"])

	category := props["category"].(map[string]any)
	assert.Equal(t, []any{"electronics", "apparel", "home"}, category["enum"])

	assert.Equal(t, "number", props["max_price"].(map[string]any)["type"])
	assert.Equal(t, "integer", props["limit"].(map[string]any)["type"])
}

func TestSchemaForNonStruct(t *testing.T) {
	schema := SchemaFor("not a struct")
	assert.Equal(t, "object", schema["type"])
	assert.Empty(t, schema["properties"])
}

func TestValidateArguments(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"order_id":  map[string]any{"type": "string"},
			"status":    map[string]any{"type": "string", "enum": []any{"pending", "confirmed", "shipped"}},
			"max_price": map[string]any{"type": "number"},
			"in_stock":  map[string]any{"type": "boolean"},
		},
		"required": []any{"order_id"},
	}

	t.Run("valid", func(t *testing.T) {
		err := ValidateArguments(map[string]any{
			"order_id":  "ord-001",
			"status":    "shipped",
			"max_price": 99.5,
			"in_stock":  true,
		}, schema)
		assert.NoError(t, err)
	})

	t.Run("missing required", func(t *testing.T) {
		err := ValidateArguments(map[string]any{"status": "pending"}, schema)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "order_id", verr.Field)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := ValidateArguments(map[string]any{"order_id": 42}, schema)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "order_id", verr.Field)
	})

	t.Run("enum violation", func(t *testing.T) {
		err := ValidateArguments(map[string]any{"order_id": "ord-001", "status": "teleported"}, schema)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "status", verr.Field)
	})

	t.Run("undeclared fields pass through", func(t *testing.T) {
		err := ValidateArguments(map[string]any{"order_id": "ord-001", "extra": []any{1, 2}}, schema)
		assert.NoError(t, err)
	})

	t.Run("json integers arrive as float64", func(t *testing.T) {
		intSchema := map[string]any{
			"type":       "object",
			"properties": map[string]any{"limit": map[string]any{"type": "integer"}},
		}
		assert.NoError(t, ValidateArguments(map[string]any{"limit": float64(5)}, intSchema))
		assert.Error(t, ValidateArguments(map[string]any{"limit": 5.5}, intSchema))
	})
}

func TestApplyDefaults(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{"type": "string"},
			"depth": map[string]any{"type": "string", "default": "basic"},
		},
	}

	in := map[string]any{"query": "wireless headphones"}
	out := ApplyDefaults(in, schema)

	assert.Equal(t, "basic", out["depth"])
	assert.Equal(t, "wireless headphones", out["query"])
	assert.NotContains(t, in, "depth")

	out = ApplyDefaults(map[string]any{"query": "q", "depth": "advanced"}, schema)
	assert.Equal(t, "advanced", out["depth"])
}
