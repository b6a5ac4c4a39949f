package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/myasir/portfolio-api/internal/api/dto/common"
	"github.com/myasir/portfolio-api/internal/portfolio"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProjects struct {
	mock.Mock
}

func (m *mockProjects) List() ([]portfolio.Project, error) {
	args := m.Called()
	p, _ := args.Get(0).([]portfolio.Project)
	return p, args.Error(1)
}

func (m *mockProjects) Get(id int) (portfolio.Project, error) {
	args := m.Called(id)
	return args.Get(0).(portfolio.Project), args.Error(1)
}

func newProjectRouter(src ProjectSource) *gin.Engine {
	h := NewProjectHandler(src)
	router := gin.New()
	router.GET("/api/v1/projects", h.List)
	router.GET("/api/v1/projects/:id", h.Get)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestProjectList(t *testing.T) {
	w := get(newProjectRouter(portfolio.NewCatalog()), "/api/v1/projects")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["count"])
	require.Len(t, body["data"], 3)
	assert.NotContains(t, body, "error")

	first := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "E-Commerce Platform", first["title"])
	assert.Equal(t, []interface{}{"React", "Node.js", "MongoDB", "Stripe"}, first["tech_stack"])
}

func TestProjectList_Failure(t *testing.T) {
	src := new(mockProjects)
	src.On("List").Return(nil, errors.New("catalog unavailable")).Once()

	w := get(newProjectRouter(src), "/api/v1/projects")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, common.MsgProjectsFailed, resp.Error)
	assert.NotContains(t, w.Body.String(), "catalog unavailable")
}

func TestProjectGet(t *testing.T) {
	router := newProjectRouter(portfolio.NewCatalog())

	tests := []struct {
		path   string
		status int
		title  string
	}{
		{"/api/v1/projects/2", http.StatusOK, "AI Task Manager"},
		{"/api/v1/projects/999", http.StatusNotFound, ""},
		{"/api/v1/projects/abc", http.StatusNotFound, ""},
		{"/api/v1/projects/-1", http.StatusNotFound, ""},
		{"/api/v1/projects/+1", http.StatusNotFound, ""},
		{"/api/v1/projects/-0", http.StatusNotFound, ""},
		{"/api/v1/projects/1.0", http.StatusNotFound, ""},
		{"/api/v1/projects/99999999999999999999", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(router, tt.path)
			assert.Equal(t, tt.status, w.Code)

			body := decodeMap(t, w)
			if tt.status == http.StatusOK {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, tt.title, body["data"].(map[string]interface{})["title"])
				return
			}
			assert.Equal(t, map[string]interface{}{"success": false, "error": common.MsgProjectNotFound}, body)
		})
	}
}

func TestProjectGet_SignedIDsNeverReachSource(t *testing.T) {
	src := &mockProjects{}
	router := newProjectRouter(src)

	for _, path := range []string{"/api/v1/projects/+1", "/api/v1/projects/-0", "/api/v1/projects/+0"} {
		w := get(router, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, common.MsgProjectNotFound, decodeMap(t, w)["error"], path)
	}
	src.AssertNotCalled(t, "Get", mock.Anything)
}

func TestParseProjectID(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"1", 1, true},
		{"007", 7, true},
		{"", 0, false},
		{"+1", 0, false},
		{"-0", 0, false},
		{" 1", 0, false},
		{"１", 0, false},
	}
	for _, tt := range tests {
		id, ok := parseProjectID(tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
		assert.Equal(t, tt.want, id, tt.raw)
	}
}
