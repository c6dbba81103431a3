// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"

	"authcore/internal/delivery/api/middleware"
	"authcore/internal/delivery/api/response"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderXDeviceID lets clients pin their session to an explicit device identifier.
const HeaderXDeviceID = "X-Device-Id"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for auth-related handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// bindAndValidate decodes the body into req and runs the DTO rules.
func bindAndValidate(c echo.Context, req any, message string) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, message).SetInternal(err)
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func deviceContext(c echo.Context) entity.DeviceContext {
	return entity.DeviceContext{
		DeviceID:  c.Request().Header.Get(HeaderXDeviceID),
		UserAgent: c.Request().UserAgent(),
		IP:        c.RealIP(),
	}
}

// Signup stages a new account and emails a verification code.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req, "Invalid signup input"); err != nil {
		return err
	}

	ticket, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		&OtpTicketResponse{Email: ticket.Email, ExpiresAt: ticket.ExpiresAt},
		"Signup initiated. Please verify your email with the OTP sent")
}

// VerifyOtp completes a signup and signs the new user in on the calling device.
func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req VerifyOtpRequest
	if err := bindAndValidate(c, &req, "Invalid verification input"); err != nil {
		return err
	}

	output, err := h.authUC.VerifySignup(c.Request().Context(), &usecase.VerifySignupInput{
		Email:  req.Email,
		Code:   req.OTP,
		Device: deviceContext(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output), "User registered successfully")
}

// ResendOtp issues a fresh signup code once the cooldown has passed.
func (h *AuthHandler) ResendOtp(c echo.Context) error {
	var req ResendOtpRequest
	if err := bindAndValidate(c, &req, "Invalid resend input"); err != nil {
		return err
	}

	ticket, err := h.authUC.ResendSignupOtp(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		&OtpTicketResponse{Email: ticket.Email, ExpiresAt: ticket.ExpiresAt},
		"OTP resent successfully")
}

// Login handles the password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req, "Invalid login input"); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Device:   deviceContext(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Login successful")
}

// GoogleLogin redirects the browser to the provider's consent page.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	consentURL, _, err := h.authUC.ExternalAuthorizationURL(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if consentURL == "" {
		return errors.WithStack(domainerrors.ErrOAuthFailed)
	}

	return c.Redirect(http.StatusFound, consentURL)
}

// GoogleCallback exchanges the authorization code returned by the provider.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return domainerrors.ErrOAuthFailed.WrapMessage("authorization code is missing")
	}

	output, err := h.authUC.ExternalCallback(c.Request().Context(), &usecase.ExternalCallbackInput{
		Code:   code,
		State:  c.QueryParam("state"),
		Device: deviceContext(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Login successful")
}

// GoogleTokenLogin signs in a native client that already holds a Google ID token.
func (h *AuthHandler) GoogleTokenLogin(c echo.Context) error {
	var req GoogleTokenRequest
	if err := bindAndValidate(c, &req, "Invalid Google sign-in input"); err != nil {
		return err
	}

	output, err := h.authUC.ExternalTokenLogin(c.Request().Context(), &usecase.ExternalTokenInput{
		IDToken: req.IDToken,
		Device:  deviceContext(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Login successful")
}

// RefreshToken rotates the token pair of the calling device.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req, "Invalid refresh token input"); err != nil {
		return err
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
		Device:       deviceContext(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Token refreshed successfully")
}

// Logout ends the session of the device the access token was minted for.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	deviceID := middleware.GetDeviceID(c)
	if deviceID == "" {
		return domainerrors.ErrTokenInvalid.WrapMessage("access token carries no device")
	}

	if err := h.authUC.Logout(c.Request().Context(), userID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// LogoutAll ends every session of the authenticated user.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	removed, err := h.authUC.LogoutAll(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"revoked": removed}, "Logged out from all devices")
}

// ListSessions lists the signed-in devices of the authenticated user.
func (h *AuthHandler) ListSessions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	views, err := h.authUC.ListSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		map[string]any{"sessions": toSessionResponses(views, middleware.GetDeviceID(c))}, "")
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserResponse(user)}, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
