package middleware

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"contestboard/internal/domain"
	"contestboard/internal/pkg/flash"
	"contestboard/internal/pkg/jwthelper"
)

const (
	sessionKeyUserID   = "user_id"
	sessionKeyUserName = "user_name"
	ctxKeyUserID       = "ctxUserID"

	// RememberCookie holds the signed remember-me token.
	RememberCookie = "remember_token"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type Authenticator struct {
	rememberKey []byte
	users       UserService
}

func NewAuthenticator(rememberKey string, users UserService) *Authenticator {
	return &Authenticator{
		rememberKey: []byte(rememberKey),
		users:       users,
	}
}

// LoadUser caches the signed-in user id on the request context. Without a
// session it falls back to the remember-me cookie and, when the token still
// maps to an existing user, re-establishes the session.
func (a *Authenticator) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if id, ok := sess.Get(sessionKeyUserID).(uint); ok {
			c.Set(ctxKeyUserID, id)
			c.Next()

			return
		}

		token, err := c.Cookie(RememberCookie)
		if err == nil && token != "" {
			if id, err := jwthelper.ParseToken(a.rememberKey, token, c.Request.UserAgent()); err == nil {
				if user, err := a.users.GetUser(c.Request.Context(), id); err == nil {
					sess.Set(sessionKeyUserID, user.ID)
					sess.Set(sessionKeyUserName, user.Name)
					_ = sess.Save()
					c.Set(ctxKeyUserID, user.ID)
				}
			}
		}

		c.Next()
	}
}

// RequireAuth gates a route on a signed-in session. Unauthenticated
// requests never reach the handler; they are sent to the sign-in page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			flash.Add(c, flash.Danger, "Please sign in first.")
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()

			return
		}

		c.Next()
	}
}

func UserID(c *gin.Context) (uint, bool) {
	if v, ok := c.Get(ctxKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id, true
		}
	}

	if id, ok := sessions.Default(c).Get(sessionKeyUserID).(uint); ok {
		return id, true
	}

	return 0, false
}

func UserName(c *gin.Context) string {
	if name, ok := sessions.Default(c).Get(sessionKeyUserName).(string); ok {
		return name
	}

	return ""
}

func SignIn(c *gin.Context, user domain.User) error {
	sess := sessions.Default(c)
	sess.Set(sessionKeyUserID, user.ID)
	sess.Set(sessionKeyUserName, user.Name)

	return sess.Save()
}

func SignOut(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Delete(sessionKeyUserID)
	sess.Delete(sessionKeyUserName)

	return sess.Save()
}
