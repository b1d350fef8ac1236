package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"kryptonite/internal/dto/request"
	"kryptonite/internal/usecase"
	"kryptonite/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /users/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.EmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	msg, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseSuccess(w, msg, nil)
}

// Login handles POST /users/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.EmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	msg, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseSuccess(w, msg, nil)
}

// VerifyOTP handles POST /users/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	msg, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify otp")
		return
	}

	utils.ResponseSuccess(w, msg, nil)
}

// GenerateAPIKey handles POST /users/api-key
func (h *AuthHandler) GenerateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req request.EmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.GenerateAPIKey(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "generate api key")
		return
	}

	utils.ResponseSuccess(w, usecase.MsgKeySaved, resp)
}

// DeleteAPIKey handles DELETE /users/api-key
func (h *AuthHandler) DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	var req request.EmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	msg, err := h.service.DeleteAPIKey(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "delete api key")
		return
	}

	utils.ResponseSuccess(w, msg, nil)
}

// handleServiceError maps the service error taxonomy to status codes
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrEmailExists):
		h.log.Warn(operation+" failed - email exists", zap.Error(err))
		utils.ResponseConflict(w, "Email already exists")

	case errors.Is(err, usecase.ErrNoUser):
		h.log.Warn(operation+" failed - no user", zap.Error(err))
		utils.ResponseBadRequest(w, "No user found", nil)

	case errors.Is(err, usecase.ErrOTPExpired):
		h.log.Warn(operation+" failed - otp expired", zap.Error(err))
		utils.ResponseBadRequest(w, "OTP code has expired. Please generate a new code", nil)

	case errors.Is(err, usecase.ErrWrongOTP):
		h.log.Warn(operation+" failed - wrong otp code", zap.Error(err))
		utils.ResponseUnauthorized(w, "Wrong credentials")

	case errors.Is(err, usecase.ErrUnauthorized):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Unauthorized to perform this action")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
