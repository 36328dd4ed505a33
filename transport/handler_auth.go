package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/contacts-api/constant"
	"github.com/muhammadheryan/contacts-api/model"
	"github.com/muhammadheryan/contacts-api/utils/errors"
	validatorx "github.com/muhammadheryan/contacts-api/utils/validator"
)

// Register handler
// @Summary Register account
// @Description Register a new account and send a verification email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} transport.errorResponse
// @Failure 409 {object} transport.errorResponse
// @Router /api/users [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login
// @Description Login with email and password and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} transport.errorResponse
// @Router /api/users/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyEmail handler
// @Summary Verify email
// @Description Consume a verification token and mark the account verified
// @Tags Auth
// @Produce json
// @Param verificationToken path string true "Verification token"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} transport.errorResponse
// @Router /api/users/verify/{verificationToken} [get]
func (s *RestHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := mux.Vars(r)["verificationToken"]
	if token == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidToken))
		return
	}

	if err := s.AuthApp.Verify(ctx, token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "Verification successful"})
}

// ResendVerification handler
// @Summary Resend verification email
// @Description Re-send the verification email for an unverified account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResendVerificationRequest true "Resend Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} transport.errorResponse
// @Router /users/verify [post]
func (s *RestHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ResendVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "missing required field email"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "missing required field email"))
		return
	}

	if err := s.AuthApp.ResendVerification(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "Verification email sent"})
}
