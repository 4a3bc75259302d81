package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodconnect/donation-system/internal/api/metrics"
	"github.com/bloodconnect/donation-system/internal/core/domain"
	"github.com/bloodconnect/donation-system/internal/core/ports"
)

// AuthHandler handles administrator account and token endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerAdminRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=Admin SuperAdmin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// adminSummary is the safe projection of an admin account; the password
// hash never leaves the server.
type adminSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

type registerAdminResponse struct {
	Message string       `json:"message"`
	Admin   adminSummary `json:"admin"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Admin   adminSummary `json:"admin"`
}

type verifyResponse struct {
	Valid bool         `json:"valid"`
	Admin adminSummary `json:"admin"`
}

func toAdminSummary(a *domain.Admin) adminSummary {
	return adminSummary{ID: a.ID, Username: a.Username, Email: a.Email, Role: a.Role}
}

// Register creates a new admin account (bootstrap path).
//
// @Summary      Register an admin account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      registerAdminRequest  true  "Account details"
// @Success      201   {object}  registerAdminResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	admin, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerAdminResponse{
		Message: "Admin registered successfully!",
		Admin:   toAdminSummary(admin),
	})
}

// Login authenticates an admin and returns a bearer token.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.AdminLoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.AdminLoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful!",
		Token:   token,
		Admin:   toAdminSummary(admin),
	})
}

// Verify checks the bearer token already validated by the Auth middleware
// and echoes the decoded claims.
//
// @Summary      Verify a bearer token
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  errorResponse
// @Router       /admin/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	id, _ := c.Get("admin_id").(string)
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)

	return c.JSON(http.StatusOK, verifyResponse{
		Valid: true,
		Admin: adminSummary{ID: id, Username: username, Role: role},
	})
}

// ListAdmins returns every admin account.
//
// @Summary      List admin accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   adminSummary
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/all [get]
func (h *AuthHandler) ListAdmins(c echo.Context) error {
	admins, err := h.authService.ListAdmins(c.Request().Context())
	if err != nil {
		return err
	}

	summaries := make([]adminSummary, len(admins))
	for i, a := range admins {
		summaries[i] = toAdminSummary(a)
	}
	return c.JSON(http.StatusOK, summaries)
}
