package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"contestboard/internal/api/handler/request"
	"contestboard/internal/api/middleware"
	"contestboard/internal/config"
	"contestboard/internal/domain"
	"contestboard/internal/pkg/flash"
	"contestboard/internal/pkg/jwthelper"
	"contestboard/internal/service"
)

const rememberMaxAge = 30 * 24 * 60 * 60 // seconds

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

func (h *AuthHandler) HandleSignupForm(c *gin.Context) {
	render(c, http.StatusOK, "auth/signup", gin.H{})
}

func (h *AuthHandler) HandleSignup(c *gin.Context) {
	var form request.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithError(c, fmt.Errorf("HandleSignup -> c.ShouldBind -> %w", err))
		return
	}

	if err := form.Validate(); err != nil {
		flash.Add(c, flash.Danger, err.Error())
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	user, err := h.svc.Signup(c.Request.Context(), domain.User{
		Email:    form.Email,
		Password: form.Password,
		Name:     form.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			flash.Add(c, flash.Danger, "This email is already registered.")
			c.Redirect(http.StatusFound, "/signup")
			return
		}

		abortWithError(c, fmt.Errorf("HandleSignup -> h.svc.Signup -> %w", err))
		return
	}

	if err = middleware.SignIn(c, user); err != nil {
		abortWithError(c, fmt.Errorf("HandleSignup -> middleware.SignIn -> %w", err))
		return
	}

	flash.Add(c, flash.Success, "Welcome, "+user.Name+".")
	c.Redirect(http.StatusFound, "/contests")
}

func (h *AuthHandler) HandleSigninForm(c *gin.Context) {
	render(c, http.StatusOK, "auth/signin", gin.H{})
}

func (h *AuthHandler) HandleSignin(c *gin.Context) {
	var form request.SigninForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithError(c, fmt.Errorf("HandleSignin -> c.ShouldBind -> %w", err))
		return
	}

	if err := form.Validate(); err != nil {
		flash.Add(c, flash.Danger, err.Error())
		c.Redirect(http.StatusFound, "/signin")
		return
	}

	user, err := h.svc.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			flash.Add(c, flash.Danger, "Invalid email or password.")
			c.Redirect(http.StatusFound, "/signin")
			return
		}

		abortWithError(c, fmt.Errorf("HandleSignin -> h.svc.Login -> %w", err))
		return
	}

	if err = middleware.SignIn(c, user); err != nil {
		abortWithError(c, fmt.Errorf("HandleSignin -> middleware.SignIn -> %w", err))
		return
	}

	if form.Remember != "" {
		token, err := jwthelper.GenerateToken([]byte(h.conf.RememberSigningKey), user.ID, c.Request.UserAgent())
		if err != nil {
			abortWithError(c, fmt.Errorf("HandleSignin -> jwthelper.GenerateToken -> %w", err))
			return
		}
		c.SetCookie(middleware.RememberCookie, token, rememberMaxAge, "/", "", false, true)
	}

	flash.Add(c, flash.Success, "Signed in.")
	c.Redirect(http.StatusFound, "/contests")
}

func (h *AuthHandler) HandleSignout(c *gin.Context) {
	if err := middleware.SignOut(c); err != nil {
		abortWithError(c, fmt.Errorf("HandleSignout -> middleware.SignOut -> %w", err))
		return
	}
	c.SetCookie(middleware.RememberCookie, "", -1, "/", "", false, true)

	flash.Add(c, flash.Success, "Signed out.")
	c.Redirect(http.StatusFound, "/contests")
}
