package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"c4inventario/internal/server/forms"
	"c4inventario/internal/session"
	"c4inventario/pkg/clients/backend"
)

// AuthHandler serves the login screen and manages the session lifecycle:
// init on login, teardown on logout.
type AuthHandler struct {
	client backend.Client
	store  *session.Store
	logger *zap.Logger
}

// NewAuthHandler constructs the authentication handler.
func NewAuthHandler(client backend.Client, store *session.Store, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{client: client, store: store, logger: logger}
}

// LoginPage renders the login screen. A still-valid session skips straight to
// the dashboard.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if sess, err := h.store.Load(c.Request); err == nil {
		if claims, err := session.DecodeClaims(sess.Token); err == nil && claims.Validate(time.Now()) == nil {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":   "Sign in",
		"Message": c.Query("message"),
	})
}

// Login exchanges the submitted credentials for a bearer token and saves the
// session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderLoginError(c, "Username and password are required")
		return
	}
	if err := forms.Validate(form); err != nil {
		h.renderLoginError(c, err.Error())
		return
	}

	result, err := h.client.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.logger.Warn("login rejected", zap.String("username", form.Username), zap.Error(err))
		h.renderLoginError(c, apiMessage(err, "Invalid credentials"))
		return
	}

	claims, err := session.DecodeClaims(result.Token)
	if err != nil {
		h.logger.Error("backend issued an undecodable token", zap.Error(err))
		h.renderLoginError(c, "Sign-in failed, please try again")
		return
	}

	sess := session.Session{Token: result.Token, Claims: *claims}
	if err := h.store.Save(c.Writer, sess); err != nil {
		h.logger.Error("failed saving session cookie", zap.Error(err))
		h.renderLoginError(c, "Sign-in failed, please try again")
		return
	}

	h.logger.Info("user signed in", zap.String("username", claims.Username))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Register creates a new account through the backend and bounces back to the
// login form.
func (h *AuthHandler) Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRegisterError(c, "All registration fields are required")
		return
	}
	if err := forms.Validate(form); err != nil {
		h.renderRegisterError(c, err.Error())
		return
	}

	req := backend.RegisterRequest{
		Username: form.Username,
		Password: form.Password,
		Email:    form.Email,
	}
	if err := h.client.Register(c.Request.Context(), req); err != nil {
		h.logger.Warn("registration rejected", zap.String("username", form.Username), zap.Error(err))
		h.renderRegisterError(c, apiMessage(err, "Registration failed"))
		return
	}

	c.Redirect(http.StatusSeeOther, "/login?message="+url.QueryEscape("Account created, you can sign in now"))
}

// Logout tears the session down and returns to the login screen.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Clear(c.Writer)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) renderLoginError(c *gin.Context, message string) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Sign in",
		"Error": message,
	})
}

func (h *AuthHandler) renderRegisterError(c *gin.Context, message string) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":         "Sign in",
		"RegisterError": message,
		"RegisterMode":  true,
	})
}
