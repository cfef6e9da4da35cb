package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adaptlearn/access-api/api/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name              string
		deps              *types.Dependencies
		expectedPipelines map[string]interface{}
	}{
		{
			name: "nothing wired",
			deps: &types.Dependencies{},
			expectedPipelines: map[string]interface{}{
				"hearing":   "not configured",
				"visual":    "not configured",
				"cognitive": "not configured",
				"exercises": "not configured",
				"intake":    "not configured",
			},
		},
		{
			name: "nil dependencies",
			deps: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			RegisterRoutes(router, tt.deps)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "ok", body["status"])
			assert.NotEmpty(t, body["timestamp"])

			if tt.expectedPipelines != nil {
				assert.Equal(t, tt.expectedPipelines, body["pipelines"])
			}
		})
	}
}
