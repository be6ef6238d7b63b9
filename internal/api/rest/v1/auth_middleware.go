package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/niyatanya/habit-tracker/internal/domain/auth"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
)

const (
	sessionKey = "habit-tracker.session"
	userKey    = "habit-tracker.user"
)

// AuthMiddleware admits requests carrying a valid bearer token of a
// session that was not signed out. The account is reloaded on every
// request so blocks and deletions apply to tokens already issued.
func AuthMiddleware(issuer auth.TokenIssuer, store auth.SessionStore, profiles users.ProfileService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abortWithMessage(ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		session, err := issuer.Parse(strings.TrimSpace(token))
		if err != nil {
			abortWithError(ctx, err)
			return
		}

		revoked, err := store.IsRevoked(ctx, session.TokenID)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		if revoked {
			abortWithError(ctx, auth.ErrSessionRevoked)
			return
		}

		user, err := profiles.GetByID(ctx, session.UserID)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				abortWithError(ctx, auth.ErrInvalidToken)
				return
			}
			abortWithError(ctx, err)
			return
		}
		if user.Blocked {
			abortWithError(ctx, users.ErrUserBlocked)
			return
		}

		ctx.Set(sessionKey, session)
		ctx.Set(userKey, user)
		ctx.Next()
	}
}

// RequireAdmin admits only administrators. It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := currentUser(ctx)
		if user == nil || !user.IsAdmin() {
			abortWithMessage(ctx, http.StatusForbidden, "administrator role required")
			return
		}
		ctx.Next()
	}
}

func currentUser(ctx *gin.Context) *users.User {
	value, ok := ctx.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := value.(*users.User)
	return user
}

func currentSession(ctx *gin.Context) *auth.Session {
	value, ok := ctx.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := value.(*auth.Session)
	return session
}
