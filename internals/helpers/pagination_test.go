package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOn(t *testing.T, target string) Paging {
	t.Helper()

	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging_Defaults(t *testing.T) {
	p := resolveOn(t, "/")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePaging_ExplicitValues(t *testing.T) {
	p := resolveOn(t, "/?page=3&per_page=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestResolvePaging_ClampsToMax(t *testing.T) {
	p := resolveOn(t, "/?per_page=500")
	assert.Equal(t, 100, p.PerPage)
}

func TestResolvePaging_InvalidFallsBack(t *testing.T) {
	p := resolveOn(t, "/?page=-2&per_page=abc")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	meta := BuildPagination(45, 2, 20)
	assert.Equal(t, int64(45), meta["total"])
	assert.Equal(t, 3, meta["total_pages"])
	assert.Equal(t, true, meta["has_next"])
	assert.Equal(t, true, meta["has_prev"])
}
