package middlewares

import (
	"context"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"emr-service/internal/pkg/exceptions"
	"emr-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Actor authenticates the bearer token and places the acting user on the
// request context. Every audited write downstream reads the actor from here,
// never from request bodies.
func (m *Middlewares) Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		claims := new(actorClaims)
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(m.InternalConfig.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}
		if claims.Subject == "" || !utils.IsKnownRole(claims.Role) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		actor := models.Actor{
			ID:   claims.Subject,
			Role: claims.Role,
		}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACTOR_KEY, actor)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
