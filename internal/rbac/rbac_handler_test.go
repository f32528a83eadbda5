package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, role tenant.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(newTestService(t))
	withCaller := func(c *gin.Context) {
		tenant.SetCaller(c, tenant.Caller{UserID: "u-1", Role: role, CompanyID: "c-1"})
		c.Next()
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), handler, withCaller)
	return router
}

func TestHandler_Enforce(t *testing.T) {
	router := newTestRouter(t, tenant.RoleEmployee)

	// role in the body must not escalate
	body, _ := json.Marshal(EnforceRequest{Role: "company_admin", Resource: "module", Action: "manage"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rbac/enforce", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var resp EnforceResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.False(t, resp.Allowed)
}

func TestHandler_EnforceRejectsEmptyBody(t *testing.T) {
	router := newTestRouter(t, tenant.RoleEmployee)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rbac/enforce", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MyPermissions(t *testing.T) {
	router := newTestRouter(t, tenant.RoleCompanyAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rbac/permissions/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var resp PermissionsResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "company_admin", resp.Role)
	assert.Contains(t, resp.Permissions, "progress:manage")
}
