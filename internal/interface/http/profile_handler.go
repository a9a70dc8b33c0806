package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/longchau/pharmacy-web/internal/application"
	"github.com/longchau/pharmacy-web/internal/interface/middleware"
	"github.com/longchau/pharmacy-web/internal/session"
	"github.com/longchau/pharmacy-web/pkg/forms"
	"github.com/longchau/pharmacy-web/pkg/helpers"
)

// ProfileHandler serves the authenticated profile page. Outcomes are
// reported through flash messages on the rendered page, not JSON.
type ProfileHandler struct {
	Svc      *userapp.Service
	Sessions session.Store
	Cookies  *helpers.Manager
	Logger   *logrus.Logger
}

func NewProfileHandler(svc *userapp.Service, store session.Store, cookies *helpers.Manager, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Sessions: store, Cookies: cookies, Logger: logger}
}

func (h *ProfileHandler) flash(c *gin.Context, level, msg string) {
	token, err := h.Cookies.FlashToken(c)
	if err != nil {
		h.Logger.WithError(err).Warn("mint flash token failed")
		return
	}
	if err := h.Sessions.AddFlash(c.Request.Context(), token, session.Flash{Level: level, Message: msg}); err != nil {
		h.Logger.WithError(err).Warn("store flash failed")
	}
}

func (h *ProfileHandler) popFlashes(c *gin.Context) []session.Flash {
	token, err := c.Cookie(h.Cookies.FlashName)
	if err != nil || token == "" {
		return nil
	}
	flashes, err := h.Sessions.PopFlashes(c.Request.Context(), token)
	if err != nil {
		h.Logger.WithError(err).Warn("pop flashes failed")
		return nil
	}
	return flashes
}

// Show GET /profile
func (h *ProfileHandler) Show(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"message": "Account not found."})
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("profile load failed")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Something went wrong. Please try again."})
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"title":   "My profile",
		"user":    u,
		"flashes": h.popFlashes(c),
	})
}

// Update POST /profile, a regular HTML form submission.
func (h *ProfileHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var form forms.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "Please correct the errors below.")
		c.Redirect(http.StatusFound, "/profile")
		return
	}
	if errs := form.Validate(); errs != nil {
		h.flash(c, "error", "Please correct the errors below.")
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	if _, err := h.Svc.UpdateProfile(c.Request.Context(), uid, userapp.UpdateProfileInput{
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Phone:      form.Phone,
		Newsletter: form.Newsletter,
	}); err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("profile update failed")
		h.flash(c, "error", "Profile update failed. Please try again.")
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	h.flash(c, "success", "Profile updated successfully!")
	c.Redirect(http.StatusFound, "/profile")
}

// UploadAvatar POST /profile/avatar, multipart upload stored in GCS.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	fh, err := c.FormFile("avatar")
	if err != nil {
		h.flash(c, "error", "Please choose an image to upload.")
		c.Redirect(http.StatusFound, "/profile")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.flash(c, "error", "Could not read the uploaded file.")
		c.Redirect(http.StatusFound, "/profile")
		return
	}
	defer func() { _ = f.Close() }()

	contentType := fh.Header.Get("Content-Type")
	if _, err := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, contentType); err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("avatar upload failed")
		h.flash(c, "error", "Avatar upload failed. Please try again.")
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	h.flash(c, "success", "Avatar updated!")
	c.Redirect(http.StatusFound, "/profile")
}
