package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/myasir/portfolio-api/internal/api/dto/common"
	"github.com/myasir/portfolio-api/internal/api/middleware"
	"github.com/myasir/portfolio-api/internal/mailer"
	"github.com/myasir/portfolio-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, s models.SanitizedSubmission) mailer.DispatchResult {
	args := m.Called(ctx, s)
	return args.Get(0).(mailer.DispatchResult)
}

func newContactRouter(d Dispatcher) *gin.Engine {
	router := gin.New()
	router.POST("/api/contact",
		middleware.NewValidationMiddleware().ValidateContactRequest(),
		NewContactHandler(d).Submit,
	)
	return router
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"Hello there"}`

func TestContactSubmit_Success(t *testing.T) {
	d := new(mockDispatcher)
	d.On("Dispatch", mock.Anything, models.SanitizedSubmission{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hi",
		Message: "Hello there",
	}).Return(mailer.DispatchResult{Success: true}).Once()

	w := postContact(newContactRouter(d), validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, common.MsgMessageSent, resp.Message)
	assert.Empty(t, resp.Error)
	d.AssertExpectations(t)
}

func TestContactSubmit_DeliveryFailure(t *testing.T) {
	d := new(mockDispatcher)
	d.On("Dispatch", mock.Anything, mock.Anything).
		Return(mailer.DispatchResult{Success: false, Message: "smtp auth: 535 5.7.8 Username and Password not accepted"}).Once()

	w := postContact(newContactRouter(d), validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, common.MsgSendFailed, resp.Error)
	assert.Nil(t, resp.Data)
	assert.NotContains(t, w.Body.String(), "535")
	assert.NotContains(t, w.Body.String(), "Password")
	d.AssertExpectations(t)
}

func TestContactSubmit_SanitizesBeforeDispatch(t *testing.T) {
	d := new(mockDispatcher)
	d.On("Dispatch", mock.Anything, models.SanitizedSubmission{
		Name:    "&lt;b&gt;Jane&lt;/b&gt;",
		Email:   "jane@example.com",
		Subject: "Tom &amp; Jerry",
		Message: "&quot;quoted&quot; &#39;single&#39;",
	}).Return(mailer.DispatchResult{Success: true}).Once()

	w := postContact(newContactRouter(d), `{"name":"  <b>Jane</b> ","email":"jane@example.com","subject":"Tom & Jerry","message":"\"quoted\" 'single'"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	d.AssertExpectations(t)
}

func TestContactSubmit_InvalidInputNeverDispatches(t *testing.T) {
	bodies := map[string]string{
		"invalid email":   `{"name":"Jane","email":"not-an-email","subject":"Hi","message":"Hello"}`,
		"missing name":    `{"email":"jane@example.com","subject":"Hi","message":"Hello"}`,
		"blank message":   `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"  \n\t"}`,
		"malformed":       `{"name":`,
		"absent body":     ``,
		"missing subject": `{"name":"Jane","email":"jane@example.com","message":"Hello"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			d := new(mockDispatcher)
			w := postContact(newContactRouter(d), body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, decodeEnvelope(t, w).Success)
			d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
		})
	}
}

func TestContactSubmit_WithoutValidatedRequest(t *testing.T) {
	d := new(mockDispatcher)
	router := gin.New()
	router.POST("/api/contact", NewContactHandler(d).Submit)

	w := postContact(router, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, common.MsgServerError, decodeEnvelope(t, w).Error)
	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}
