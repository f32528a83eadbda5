package trainingmodule_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"
	"github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule"
	trainingmoduleerrors "github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule/errors"
	trainingmoduleMock "github.com/HorizonColonel/orient-launch-pad/internal/trainingmodule/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newContext(method, target, body string, caller tenant.Caller) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	tenant.SetCaller(c, caller)
	return c, w
}

var admin = tenant.Caller{UserID: "admin-1", Role: tenant.RoleCompanyAdmin, CompanyID: "c-1"}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := trainingmoduleMock.NewMockService(ctrl)
	handler := trainingmodule.NewHandler(svc)

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), admin, gomock.Any()).DoAndReturn(
			func(_ any, _ tenant.Caller, req trainingmodule.CreateModuleRequest) (trainingmodule.ModuleResponse, error) {
				assert.True(t, req.AssignToAll)
				return trainingmodule.ModuleResponse{ID: "m-1", Title: req.Title, IsActive: true}, nil
			})

		c, w := newContext(http.MethodPost, "/modules", `{"title":"Security","assign_to_all":true}`, admin)
		handler.Create(c)

		require.Equal(t, http.StatusCreated, w.Code)
		var env struct {
			Data trainingmodule.ModuleResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "m-1", env.Data.ID)
	})

	t.Run("missing title", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/modules", `{"description":"x"}`, admin)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("admin without company", func(t *testing.T) {
		noCompany := tenant.Caller{UserID: "admin-2", Role: tenant.RoleCompanyAdmin}
		svc.EXPECT().Create(gomock.Any(), noCompany, gomock.Any()).Return(trainingmodule.ModuleResponse{}, tenant.ErrNoCompany)

		c, w := newContext(http.MethodPost, "/modules", `{"title":"x"}`, noCompany)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No company associated with user")
	})
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := trainingmoduleMock.NewMockService(ctrl)
	handler := trainingmodule.NewHandler(svc)

	svc.EXPECT().List(gomock.Any(), "c-1", trainingmodule.ListFilter{Query: "sec", Status: "active"}).
		Return([]trainingmodule.ModuleResponse{{ID: "m-1"}}, nil)

	c, w := newContext(http.MethodGet, "/modules?q=+sec+&status=ACTIVE", "", admin)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := trainingmoduleMock.NewMockService(ctrl)
	handler := trainingmodule.NewHandler(svc)

	t.Run("not found", func(t *testing.T) {
		svc.EXPECT().Delete(gomock.Any(), admin, "m-9").Return(trainingmoduleerrors.ErrModuleNotFound)

		c, w := newContext(http.MethodDelete, "/modules/m-9", "", admin)
		c.Params = gin.Params{{Key: "id", Value: "m-9"}}
		handler.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store unavailable is reported", func(t *testing.T) {
		svc.EXPECT().Delete(gomock.Any(), admin, "m-1").Return(apperror.StoreUnavailable(assert.AnError))

		c, w := newContext(http.MethodDelete, "/modules/m-1", "", admin)
		c.Params = gin.Params{{Key: "id", Value: "m-1"}}
		handler.Delete(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Len(t, c.Errors, 1)
	})
}

func TestHandler_AddMaterial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := trainingmoduleMock.NewMockService(ctrl)
	handler := trainingmodule.NewHandler(svc)

	c, w := newContext(http.MethodPost, "/modules/m-1/materials", `{"file_name":"a.zip","file_url":"https://x.io/a.zip","type":"zip"}`, admin)
	c.Params = gin.Params{{Key: "id", Value: "m-1"}}
	handler.AddMaterial(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
