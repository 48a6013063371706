package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fruito/storefront/internal/core/domain"
	"github.com/fruito/storefront/internal/core/ports"
)

// AuthHandler serves the login, signup, and admin login pages and their form
// submits. Failed submits re-render the same page with the surfaced message;
// successful ones redirect, always after the session write has completed.
type AuthHandler struct {
	service ports.StorefrontService
}

func NewAuthHandler(service ports.StorefrontService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type signupForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.renderLogin(c, "")
}

// Login handles POST /login. Success persists the backend payload and sends
// the visitor to the shop.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.renderLogin(c, "Login failed")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderLogin(c, err.Error())
	}

	if err := h.service.Login(c.Request().Context(), sessionID(c), form.Email, form.Password); err != nil {
		if re, ok := domain.AsRequestError(err); ok {
			return h.renderLogin(c, re.Message)
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/shop")
}

// SignupPage handles GET /signup.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return h.renderSignup(c, "")
}

// Signup handles POST /signup. Success persists nothing and sends the
// visitor to the login page.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		return h.renderSignup(c, "Signup failed")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderSignup(c, err.Error())
	}

	if err := h.service.Signup(c.Request().Context(), form.Name, form.Email, form.Password); err != nil {
		if re, ok := domain.AsRequestError(err); ok {
			return h.renderSignup(c, re.Message)
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// Logout handles POST /logout. Clears the user payload only; the admin flag
// stays, and the visitor lands back on the shop as a guest.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.service.Logout(c.Request().Context(), sessionID(c)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/shop")
}

// AdminLoginPage handles GET /admin/login.
func (h *AuthHandler) AdminLoginPage(c echo.Context) error {
	return h.renderAdminLogin(c, "")
}

// AdminLogin handles POST /admin/login. Success records the admin flag and
// opens the dashboard; the backend payload is discarded.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.renderAdminLogin(c, "Login failed")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderAdminLogin(c, err.Error())
	}

	if err := h.service.AdminLogin(c.Request().Context(), sessionID(c), form.Email, form.Password); err != nil {
		if re, ok := domain.AsRequestError(err); ok {
			return h.renderAdminLogin(c, re.Message)
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

func (h *AuthHandler) renderLogin(c echo.Context, errMsg string) error {
	identity := h.service.CurrentIdentity(c.Request().Context(), sessionID(c))
	return c.Render(http.StatusOK, "login.html", FormPage{Layout: layoutFor("Login", identity), Error: errMsg})
}

func (h *AuthHandler) renderSignup(c echo.Context, errMsg string) error {
	identity := h.service.CurrentIdentity(c.Request().Context(), sessionID(c))
	return c.Render(http.StatusOK, "signup.html", FormPage{Layout: layoutFor("Sign up", identity), Error: errMsg})
}

func (h *AuthHandler) renderAdminLogin(c echo.Context, errMsg string) error {
	identity := h.service.CurrentIdentity(c.Request().Context(), sessionID(c))
	return c.Render(http.StatusOK, "admin_login.html", FormPage{Layout: layoutFor("Admin Login", identity), Error: errMsg})
}
