package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"lane_wars/internal/service/logger"
)

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the token's user id in the request context.
func AuthMiddleware(jwtToken JwtTokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			tokenString := bearerToken(r.Header.Get("Authorization"))
			if tokenString == "" {
				logger.AccessLogger.Warn("Missing bearer token",
					zap.String("request_id", requestID),
					zap.String("url", r.URL.String()),
				)
				writeUnauthorized(w, "Token não enviado")
				return
			}

			claims, err := jwtToken.Validate(tokenString)
			if err != nil {
				logger.AccessLogger.Warn("Invalid bearer token",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
				writeUnauthorized(w, "Token inválido")
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"erro": message})
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
