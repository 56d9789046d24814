package transport

import (
	"encoding/json"
	"net/http"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	utilsContext "github.com/Anukhusdevlopers/scrap-pickup-backend/utils/context"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/errors"
	validatorx "github.com/Anukhusdevlopers/scrap-pickup-backend/utils/validator"
)

// Login handler
// @Summary Login with phone number
// @Description Register the number on first use, send an OTP over WhatsApp and return the user with a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login/api [post]
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

// SendOTP handler
// @Summary Send an OTP to a registered number
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SendOTPRequest true "Send OTP Request"
// @Success 200 {object} model.SendOTPResponse
// @Router /send-message/api [post]
func (s *RestHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.SendOTP(ctx, req.Number)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyOTP handler
// @Summary Verify an OTP
// @Description Resolve the number from the code and mark the user verified
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} model.VerifyOTPResponse
// @Router /verify-otp/api [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.VerifyOTP(ctx, req.OTP)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ResendOTP handler
// @Summary Resend an OTP, invalidating the previous code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SendOTPRequest true "Resend OTP Request"
// @Success 200 {object} model.SendOTPResponse
// @Router /resend-otp/api [post]
func (s *RestHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.ResendOTP(ctx, req.Number)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	res, err := s.AuthApp.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	var req model.EditProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.EditProfile(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	var req model.UpdateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.UpdateAddress(ctx, userID, req.Address)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
