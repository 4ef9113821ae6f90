package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geoo/config"
	deliverycontext "geoo/internal/delivery/context"
	"geoo/internal/domain/constants"
	mockUsecase "geoo/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockTransitionUsecase) {
	t.Helper()

	transitionUC := mockUsecase.NewMockTransitionUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		TransitionUC: transitionUC,
	})

	return h, transitionUC
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func envelopeFor(data string, requestID string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(data))

	return `{"message":{"data":"` + encoded + `","attributes":{"request_id":"` + requestID + `"},"messageId":"1"},"subscription":"projects/local/subscriptions/transition-sub"}`
}

func TestPushHandler_HandlePush(t *testing.T) {
	h, transitionUC := newTestPushHandler(t, &config.Config{})
	payload := `{"transition":1,"triggering_geofences":["10101"]}`

	transitionUC.EXPECT().
		Handle(mock.Anything, []byte(payload)).
		Run(func(ctx context.Context, _ []byte) {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return().
		Once()

	rec := push(h, envelopeFor(payload, "req-42"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedEventIsAcknowledged(t *testing.T) {
	h, transitionUC := newTestPushHandler(t, &config.Config{})

	transitionUC.EXPECT().Handle(mock.Anything, []byte("{broken")).Return().Once()

	rec := push(h, envelopeFor("{broken", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadEnvelope(t *testing.T) {
	tests := map[string]string{
		"not json":   `{"message":`,
		"bad base64": `{"message":{"data":"***"}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			h, transitionUC := newTestPushHandler(t, &config.Config{})

			rec := push(h, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			transitionUC.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_HandlePush_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, transitionUC := newTestPushHandler(t, cfg)
	assert.True(t, h.verifyPushAuth)
	h.verifyToken = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := push(h, envelopeFor(`{"transition":1}`, ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	transitionUC.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
