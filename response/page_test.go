package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage_ClampsInvalidInput(t *testing.T) {
	t.Parallel()

	env := NewPage([]string{}, 0, 0, 0)

	assert.Equal(t, PageMeta{Page: 1, PageSize: 1, TotalItems: 0, TotalPages: 0}, env.PageMeta)
	assert.True(t, env.Success)
	require.NotNil(t, env.Data)
	assert.Empty(t, *env.Data)
}

func TestNewPage_ComputesTotalPages(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c"}
	env := NewPage(items, 2, 10, 25)

	assert.Equal(t, 3, env.PageMeta.TotalPages)
	require.NotNil(t, env.Data)
	assert.Equal(t, items, *env.Data)
	assert.Equal(t, http.StatusOK, env.Code)
}

func TestNewPage_TypedAndUntypedMetaAgree(t *testing.T) {
	t.Parallel()

	env := NewPage([]int{1, 2, 3}, 2, 10, 25)

	assert.Equal(t, env.PageMeta.Page, env.Meta["page"])
	assert.Equal(t, env.PageMeta.PageSize, env.Meta["pageSize"])
	assert.Equal(t, env.PageMeta.TotalItems, env.Meta["totalItems"])
	assert.Equal(t, env.PageMeta.TotalPages, env.Meta["totalPages"])
}

func TestNewPage_NilItemsBecomeEmptySlice(t *testing.T) {
	t.Parallel()

	env := NewPage[string](nil, 1, 20, 0)

	require.NotNil(t, env.Data)
	assert.NotNil(t, *env.Data)
	assert.Empty(t, *env.Data)

	body, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"data":[]`)
}

func TestNewPage_ExactPageBoundary(t *testing.T) {
	t.Parallel()

	env := NewPage(make([]int, 10), 1, 10, 30)

	assert.Equal(t, 3, env.PageMeta.TotalPages)
}

func TestNewPage_KeepsCallerMeta(t *testing.T) {
	t.Parallel()

	env := NewPage([]int{1}, 1, 10, 1, WithMetaValue("filter", "active"))

	assert.Equal(t, "active", env.Meta["filter"])
	assert.Equal(t, 1, env.Meta["page"])
}

func TestPagedResponse_PassesThroughWriteUnwrapped(t *testing.T) {
	t.Parallel()

	var env Envelope = NewPage([]string{"a"}, 1, 10, 1)

	assert.Equal(t, http.StatusOK, env.HTTPStatus())
}
