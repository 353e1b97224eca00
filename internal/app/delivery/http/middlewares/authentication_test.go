package middlewares

import (
	"emr-service/internal/app/config"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "test-jwt-secret"

func signToken(t *testing.T, subject, role string, expiresAt time.Time) string {
	t.Helper()
	claims := actorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func TestActorMiddleware(t *testing.T) {
	middlewares := &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: testSecret},
		},
	}

	var capturedActor models.Actor
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(models.Actor)
		assert.True(t, ok, "actor should be set in context")
		capturedActor = actor
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token := signToken(t, "64f000000000000000000001", constvars.RoleFrontDesk, time.Now().Add(time.Hour))
		req := httptest.NewRequest("POST", "/api/v1/service-orders", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Actor(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "64f000000000000000000001", capturedActor.ID)
		assert.Equal(t, constvars.RoleFrontDesk, capturedActor.Role)
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/service-orders", nil)

		rr := httptest.NewRecorder()
		middlewares.Actor(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/service-orders", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic abcdef")

		rr := httptest.NewRecorder()
		middlewares.Actor(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := signToken(t, "64f000000000000000000001", constvars.RoleFrontDesk, time.Now().Add(-time.Hour))
		req := httptest.NewRequest("POST", "/api/v1/service-orders", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Actor(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown Role", func(t *testing.T) {
		token := signToken(t, "64f000000000000000000001", "janitor", time.Now().Add(time.Hour))
		req := httptest.NewRequest("POST", "/api/v1/service-orders", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Actor(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		claims := actorClaims{
			Role: constvars.RoleFrontDesk,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "64f000000000000000000001",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte("some-other-secret"))
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/v1/service-orders", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signed)

		rr := httptest.NewRecorder()
		middlewares.Actor(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
