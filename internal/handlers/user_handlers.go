// Package handlers implements the HTTP layer of the API. Handlers decode
// and validate request bodies, delegate to the service layer, and translate
// service errors into the API's response shape.
package handlers

import (
	"net/http"
	"time"

	"github.com/postsblog/backend/internal/auth"
	"github.com/postsblog/backend/internal/constants"
	"github.com/postsblog/backend/internal/models"
	"github.com/postsblog/backend/internal/utils"
)

// signupResponse is the body returned on successful registration.
type signupResponse struct {
	Message string `json:"message"`
}

// loginResponse is the body returned on successful login. The access token
// is duplicated in an HTTP-only cookie for browser clients.
type loginResponse struct {
	Message     string                `json:"message"`
	AccessToken string                `json:"access_token"`
	User        *models.PublicProfile `json:"user"`
}

// resetRequestResponse echoes the email the reset link was sent to.
type resetRequestResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// messageResponse is the body for endpoints that only confirm an action.
type messageResponse struct {
	Message string `json:"message"`
}

// UserHandler handles the account endpoints: signup, login, password
// reset, and the authenticated profile.
type UserHandler struct {
	authService   AuthService
	sessionExpiry time.Duration
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService AuthService, sessionExpiry time.Duration) *UserHandler {
	return &UserHandler{
		authService:   authService,
		sessionExpiry: sessionExpiry,
	}
}

// Signup handles POST /user/signup.
// A valid body creates an account and answers 201. Validation failures
// answer 422 with per-field details; an already registered email answers
// 409.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var signup models.UserSignup
	if err := utils.DecodeAndValidate(r, &signup); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if _, err := h.authService.Signup(r.Context(), &signup); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, signupResponse{
		Message: constants.MsgUserCreated,
	})
}

// Login handles POST /user/login.
// Successful authentication answers 200 with the access token and the
// user's public profile, and sets the session cookie. Unknown email and
// wrong password both answer 401.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.UserCredentials
	if err := utils.DecodeAndValidate(r, &creds); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	result, err := h.authService.Login(r.Context(), &creds)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	h.setSessionCookie(w, result.AccessToken)

	utils.JSON(w, constants.StatusOK, loginResponse{
		Message:     constants.MsgLoginSuccess,
		AccessToken: result.AccessToken,
		User:        result.User.Public(),
	})
}

// RequestReset handles POST /user/reset-password.
// A known email answers 201 after the reset mail has been handed to the
// provider. An unknown email answers 401; a provider failure answers 502.
func (h *UserHandler) RequestReset(w http.ResponseWriter, r *http.Request) {
	var req models.ResetRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, resetRequestResponse{
		Message: constants.MsgResetLinkSent,
		Email:   req.Email,
	})
}

// ConfirmReset handles POST /user/update-password.
// A valid token and password answer 200; an expired or tampered token
// answers 401.
func (h *UserHandler) ConfirmReset(w http.ResponseWriter, r *http.Request) {
	var update models.PasswordUpdate
	if err := utils.DecodeAndValidate(r, &update); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.ConfirmPasswordReset(r.Context(), update.Token, update.NewPassword); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, messageResponse{
		Message: constants.MsgPasswordUpdated,
	})
}

// Me handles GET /user/me.
// It returns the public profile of the authenticated user. The route is
// wrapped by the auth middleware, so the user ID is always in the context.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, user.Public())
}

// setSessionCookie attaches the session token as an HTTP-only cookie with
// the same lifetime as the token itself.
func (h *UserHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionExpiry),
		MaxAge:   int(h.sessionExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
