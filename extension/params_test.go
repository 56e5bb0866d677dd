package extension

import (
	"strconv"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func TestGetString(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		req := request(map[string]any{"file": "COPYING"})
		assert.Equal(t, "COPYING", GetString(req, "file", "LICENSE"))
	})

	t.Run("missing returns default", func(t *testing.T) {
		req := request(map[string]any{})
		assert.Equal(t, "LICENSE", GetString(req, "file", "LICENSE"))
	})

	t.Run("empty string returns default", func(t *testing.T) {
		req := request(map[string]any{"file": ""})
		assert.Equal(t, "LICENSE", GetString(req, "file", "LICENSE"))
	})

	t.Run("wrong type returns default", func(t *testing.T) {
		req := request(map[string]any{"file": 42})
		assert.Equal(t, "LICENSE", GetString(req, "file", "LICENSE"))
	})

	t.Run("nil arguments returns default", func(t *testing.T) {
		var req mcp.CallToolRequest
		assert.Equal(t, "LICENSE", GetString(req, "file", "LICENSE"))
	})
}

func TestGetBool(t *testing.T) {
	t.Run("true", func(t *testing.T) {
		req := request(map[string]any{"force": true})
		assert.True(t, GetBool(req, "force", false))
	})

	t.Run("false overrides true default", func(t *testing.T) {
		req := request(map[string]any{"force": false})
		assert.False(t, GetBool(req, "force", true))
	})

	t.Run("missing returns default", func(t *testing.T) {
		req := request(map[string]any{})
		assert.True(t, GetBool(req, "force", true))
	})

	t.Run("wrong type returns default", func(t *testing.T) {
		req := request(map[string]any{"force": "yes"})
		assert.False(t, GetBool(req, "force", false))
	})

	t.Run("nil arguments returns default", func(t *testing.T) {
		var req mcp.CallToolRequest
		assert.False(t, GetBool(req, "force", false))
	})
}

func TestYearOrCurrent(t *testing.T) {
	t.Run("explicit year", func(t *testing.T) {
		req := request(map[string]any{"year": "1999"})
		assert.Equal(t, "1999", YearOrCurrent(req))
	})

	t.Run("defaults to current year", func(t *testing.T) {
		req := request(map[string]any{})
		assert.Equal(t, strconv.Itoa(time.Now().Year()), YearOrCurrent(req))
	})
}
