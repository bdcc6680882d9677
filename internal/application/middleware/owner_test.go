package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveOwner(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/whoami", func(c echo.Context) error {
		ownerID, ok := OwnerID(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, strconv.FormatInt(ownerID, 10))
	}, OwnerResolver("X-Owner-ID", 1))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("X-Owner-ID", header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestOwnerResolver_DefaultOwner(t *testing.T) {
	rec := serveOwner(t, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Body.String())
}

func TestOwnerResolver_FromHeader(t *testing.T) {
	rec := serveOwner(t, "27")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "27", rec.Body.String())
}

func TestOwnerResolver_RejectsInvalidHeader(t *testing.T) {
	for _, value := range []string{"abc", "0", "-4", "2147483648", "99999999999"} {
		rec := serveOwner(t, value)
		assert.Equal(t, http.StatusBadRequest, rec.Code, value)
		assert.Contains(t, rec.Body.String(), `"error"`)
	}
}

func TestOwnerResolver_AcceptsLargestOwner(t *testing.T) {
	rec := serveOwner(t, "2147483647")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2147483647", rec.Body.String())
}

func TestSkipRequestLog(t *testing.T) {
	e := echo.New()
	for path, skip := range map[string]bool{
		"/health":             true,
		"/swagger/index.html": true,
		"/todos":              false,
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		assert.Equal(t, skip, skipRequestLog(c), path)
	}
}
