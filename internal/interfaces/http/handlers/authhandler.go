package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"subcommerce/internal/application/user/usecases"
	"subcommerce/internal/interfaces/dto"
	"subcommerce/internal/shared/constants"
	"subcommerce/internal/shared/logger"
	"subcommerce/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase registerUseCase
	loginUseCase    loginUseCase
	logoutUseCase   logoutUseCase
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		logoutUseCase:   logoutUC,
		logger:          logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} utils.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToAuthResponse(result), "User registered successfully")
}

// Login godoc
// @Summary Log in with email and password
// @Description Failed attempts are throttled per client IP and email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", dto.ToAuthResponse(result))
}

// Logout godoc
// @Summary Revoke the current access token
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(constants.ContextKeySessionID)

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: sessionID}); err != nil {
		h.logger.Errorw("failed to logout", "error", err, "session_id", sessionID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
