package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/longchau/pharmacy-web/config"
	userapp "github.com/longchau/pharmacy-web/internal/application"
	"github.com/longchau/pharmacy-web/internal/interface/middleware"
	"github.com/longchau/pharmacy-web/internal/session"
	"github.com/longchau/pharmacy-web/pkg/forms"
	"github.com/longchau/pharmacy-web/pkg/helpers"
	"github.com/longchau/pharmacy-web/pkg/response"
)

const (
	msgInvalidFormat      = "Invalid data format"
	msgInvalidCredentials = "Invalid email or password. Please try again."
	msgRegistered         = "Registration successful! Welcome to Long Châu Pharmacy."
	msgLoggedOut          = "You have been successfully logged out."
)

// AuthHandler serves registration, login, logout and the email check.
type AuthHandler struct {
	Svc      *userapp.Service
	Sessions session.Store
	Cookies  *helpers.Manager
	Logger   *logrus.Logger
	Cfg      *config.Config
}

func NewAuthHandler(svc *userapp.Service, store session.Store, cookies *helpers.Manager, logger *logrus.Logger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Svc: svc, Sessions: store, Cookies: cookies, Logger: logger, Cfg: cfg}
}

// startSession creates the server-side session and sets the cookie.
// Plain logins get a browser-session cookie with the default TTL;
// remember-me pins both cookie and record to the two-week expiry.
func (h *AuthHandler) startSession(c *gin.Context, userID, email, name string, remember bool) error {
	ttl := h.Cfg.SessionTTL
	maxAge := 0
	if remember {
		ttl = h.Cfg.RememberMeTTL
		maxAge = int(ttl.Seconds())
	}
	token, err := h.Sessions.Create(c.Request.Context(), session.Data{
		UserID:   userID,
		Email:    email,
		Name:     name,
		Remember: remember,
	}, ttl)
	if err != nil {
		return err
	}
	h.Cookies.SetSession(c, token, maxAge)
	return nil
}

func (h *AuthHandler) flash(c *gin.Context, level, msg string) {
	token, err := h.Cookies.FlashToken(c)
	if err != nil {
		h.Logger.WithError(err).Warn("mint flash token failed")
		return
	}
	if err := h.Sessions.AddFlash(c.Request.Context(), token, session.Flash{Level: level, Message: msg}); err != nil {
		h.Logger.WithError(err).Warn("store flash failed")
	}
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var form forms.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Fail(c, msgInvalidFormat)
		return
	}
	if errs := form.Validate(); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), userapp.RegisterInput{
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Email:      form.Email,
		Phone:      form.Phone,
		Password:   form.Password,
		Newsletter: form.Newsletter,
		AgreeTerms: form.AgreeTerms,
	})
	if err != nil {
		if errors.Is(err, userapp.ErrEmailTaken) {
			errs := forms.Errors{}
			errs.Add("email", "A user with this email already exists.")
			response.ValidationFailed(c, errs)
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("registration failed")
		response.Fail(c, "Registration failed. Please try again later.")
		return
	}

	// Auto login after registration.
	if err := h.startSession(c, u.ID, u.Email, u.FullName(), false); err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("post-registration session failed")
		response.Fail(c, "Registration failed. Please try again later.")
		return
	}

	h.Logger.WithField("user_id", u.ID).Info("user registered")
	response.Success(c, msgRegistered, "/")
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Fail(c, msgInvalidFormat)
		return
	}

	u, err := h.Svc.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrInvalidCredentials) {
			// Same message for unknown email and wrong password.
			response.Fail(c, msgInvalidCredentials)
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("login failed")
		response.Fail(c, "Login failed. Please try again later.")
		return
	}

	if err := h.startSession(c, u.ID, u.Email, u.FullName(), form.RememberMe); err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("session create failed")
		response.Fail(c, "Login failed. Please try again later.")
		return
	}

	response.Success(c, "Welcome back, "+u.FullName()+"!", "/")
}

// Logout GET|POST /logout, requires an authenticated session.
// Background callers get a JSON ack, browser navigation a redirect
// with a flash message.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.CtxSessionTokenKey)
	if err := h.Sessions.Destroy(c.Request.Context(), token); err != nil {
		h.Logger.WithError(err).Warn("session destroy failed")
	}
	h.Cookies.ClearSession(c)

	if c.Request.Method == http.MethodPost || middleware.IsBackgroundRequest(c) {
		response.Success(c, msgLoggedOut, "/")
		return
	}
	h.flash(c, "success", msgLoggedOut)
	c.Redirect(http.StatusFound, "/")
}

// CheckEmail GET /check-email?email= returns the existence flag with
// no side effects.
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	exists, err := h.Svc.EmailExists(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.Logger.WithError(err).Error("email lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// RegisterPage GET /register
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"title": "Create account"})
}

// LoginPage GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "Sign in"})
}
