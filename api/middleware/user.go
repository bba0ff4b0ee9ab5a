package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/responses"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

const UserIDHeader = "X-User-Id"

// User resolves the shopper from the X-User-Id header, falling back to the demo user.
// The header is trusted as-is.
func User(defaultUserID uuid.UUID, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			userID := defaultUserID
			if raw := strings.TrimSpace(r.Header.Get(UserIDHeader)); raw != "" {
				parsed, err := uuid.Parse(raw)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id header").
						WithDetails(map[string]string{"header": UserIDHeader}))
					return
				}
				userID = parsed
			}

			ctx = WithUserID(ctx, userID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, userID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
