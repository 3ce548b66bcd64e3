package holiday

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHolidays(t *testing.T) {
	handler := NewHandler(NewResolver(DefaultTable))

	t.Run("returns the month's holidays as JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/holidays?date=2024-10-01", nil)
		w := httptest.NewRecorder()

		handler.GetHolidays(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var result map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, map[string]string{
			"2024-10-03": "개천절",
			"2024-10-09": "한글날",
		}, result)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/holidays?date=October", nil)
		w := httptest.NewRecorder()

		handler.GetHolidays(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
