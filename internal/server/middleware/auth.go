package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"c4inventario/internal/session"
)

// SessionKey is the gin context key the guard stores the session under.
const SessionKey = "session"

// RequireSession is the session guard wrapping every protected route. A
// missing, malformed or expired token clears the cookie and redirects to the
// login screen; there is no retry and no partial render of protected content.
func RequireSession(store *session.Store, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		sess, err := store.Load(c.Request)
		if err != nil {
			redirectToLogin(c)
			return
		}

		claims, err := session.DecodeClaims(sess.Token)
		if err != nil {
			logger.Warn("rejecting malformed session token", zap.Error(err))
			store.Clear(c.Writer)
			redirectToLogin(c)
			return
		}

		if err := claims.Validate(time.Now()); err != nil {
			logger.Info("session expired", zap.String("username", claims.Username))
			store.Clear(c.Writer)
			redirectToLogin(c)
			return
		}

		// Refresh the cached claims from the token itself so the shell
		// renders what the backend actually issued.
		sess.Claims = *claims
		c.Set(SessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the guard-approved session for the request, or nil
// on unguarded routes.
func CurrentSession(c *gin.Context) *session.Session {
	value, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}
