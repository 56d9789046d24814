package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/cmd/config"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	otprepo "github.com/Anukhusdevlopers/scrap-pickup-backend/repository/otp"
	userrepo "github.com/Anukhusdevlopers/scrap-pickup-backend/repository/user"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/thirdparty/whatsapp"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/errors"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/logger"
	otputil "github.com/Anukhusdevlopers/scrap-pickup-backend/utils/otp"
)

type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	SendOTP(ctx context.Context, number string) (*model.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, code string) (*model.VerifyOTPResponse, error)
	ResendOTP(ctx context.Context, number string) (*model.SendOTPResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.SessionClaims, error)
	GetProfile(ctx context.Context, userID uint64) (*model.UserSummary, error)
	EditProfile(ctx context.Context, userID uint64, req *model.EditProfileRequest) (*model.UserSummary, error)
	UpdateAddress(ctx context.Context, userID uint64, address string) (*model.UserSummary, error)
}

type AuthAppImpl struct {
	config     *config.Config
	userRepo   userrepo.UserRepository
	otpStore   otprepo.Store
	dispatcher whatsapp.Dispatcher
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, otpStore otprepo.Store, dispatcher whatsapp.Dispatcher) AuthApp {
	return &AuthAppImpl{
		config:     config,
		userRepo:   userRepo,
		otpStore:   otpStore,
		dispatcher: dispatcher,
	}
}

// Login registers unknown numbers on the fly, then issues and dispatches an
// OTP. The session token is returned immediately; the verified flag is only
// flipped later by VerifyOTP.
func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Number: req.Number})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// A number keeps the role it registered with. No OTP goes out on a
	// mismatch.
	if user != nil && user.Role != req.Role {
		return nil, errors.SetCustomError(constant.ErrRoleMismatch)
	}

	message := "OTP sent successfully! Please verify to log in."
	if user == nil {
		user, err = s.userRepo.Create(ctx, &model.UserEntity{
			Number:   req.Number,
			Name:     req.Name,
			Role:     req.Role,
			Verified: false,
		})
		if err != nil {
			logger.Error("[Login] err userRepo.Create", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		message = "User registered and OTP sent successfully! Please verify to log in."
	}

	// The user record is kept even if dispatch fails below; callers retry
	// delivery via resend.
	if err := s.issueAndDispatch(ctx, req.Number); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		logger.Error("[Login] err generateToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	summary := toSummary(user)
	summary.Token = token
	return &model.LoginResponse{
		Message: message,
		User:    summary,
	}, nil
}

func (s *AuthAppImpl) SendOTP(ctx context.Context, number string) (*model.SendOTPResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Number: number})
	if err != nil {
		logger.Error("[SendOTP] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotRegistered)
	}

	if err := s.issueAndDispatch(ctx, number); err != nil {
		return nil, err
	}
	return &model.SendOTPResponse{Message: "OTP sent successfully"}, nil
}

func (s *AuthAppImpl) ResendOTP(ctx context.Context, number string) (*model.SendOTPResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Number: number})
	if err != nil {
		logger.Error("[ResendOTP] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotRegistered)
	}

	// Save overwrites, so the previously issued code stops working here.
	if err := s.issueAndDispatch(ctx, number); err != nil {
		return nil, err
	}
	return &model.SendOTPResponse{Message: "OTP resent successfully"}, nil
}

// VerifyOTP resolves the number from the code alone, marks the user verified
// and returns the updated summary.
func (s *AuthAppImpl) VerifyOTP(ctx context.Context, code string) (*model.VerifyOTPResponse, error) {
	number, err := s.otpStore.Consume(ctx, code)
	if err != nil {
		if err == otprepo.ErrCodeNotFound {
			return nil, errors.SetCustomError(constant.ErrInvalidOTP)
		}
		logger.Error("[VerifyOTP] err otpStore.Consume", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Number: number})
	if err != nil {
		logger.Error("[VerifyOTP] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	user.Verified = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Error("[VerifyOTP] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.VerifyOTPResponse{
		Message: "Phone number verified successfully!",
		User:    toSummary(user),
	}, nil
}

func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.UserID == "" || claims.Role == "" {
		return nil, fmt.Errorf("token missing identity claims")
	}
	return claims, nil
}

func (s *AuthAppImpl) GetProfile(ctx context.Context, userID uint64) (*model.UserSummary, error) {
	user, err := s.getUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := toSummary(user)
	return &summary, nil
}

func (s *AuthAppImpl) EditProfile(ctx context.Context, userID uint64, req *model.EditProfileRequest) (*model.UserSummary, error) {
	user, err := s.getUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Address != "" {
		user.Address = req.Address
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Error("[EditProfile] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	summary := toSummary(user)
	return &summary, nil
}

func (s *AuthAppImpl) UpdateAddress(ctx context.Context, userID uint64, address string) (*model.UserSummary, error) {
	return s.EditProfile(ctx, userID, &model.EditProfileRequest{Address: address})
}

// issueAndDispatch overwrites any pending code for the number and sends the
// new one through the gateway. Upstream failures pass through unchanged.
func (s *AuthAppImpl) issueAndDispatch(ctx context.Context, number string) error {
	code, err := otputil.GenerateCode()
	if err != nil {
		logger.Error("[issueAndDispatch] err GenerateCode", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.otpStore.Save(ctx, number, code, s.config.Auth.OTPExpiration); err != nil {
		logger.Error("[issueAndDispatch] err otpStore.Save", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	fullMessage := fmt.Sprintf("%s Your OTP is: %s", s.config.WhatsApp.DefaultMessage, code)
	if _, err := s.dispatcher.SendMessage(ctx, number, fullMessage); err != nil {
		if ue, ok := err.(errors.UpstreamError); ok {
			logger.Warn("[issueAndDispatch] provider rejected message",
				zap.String("number", number), zap.Int("status", ue.StatusCode))
			return ue
		}
		logger.Error("[issueAndDispatch] err dispatcher.SendMessage", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *AuthAppImpl) generateToken(user *model.UserEntity) (string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := model.SessionClaims{
		UserID: strconv.FormatUint(user.ID, 10),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        newUUID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *AuthAppImpl) getUserByID(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[getUserByID] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}
	return user, nil
}

func toSummary(user *model.UserEntity) model.UserSummary {
	return model.UserSummary{
		ID:       user.ID,
		Number:   user.Number,
		Name:     user.Name,
		Role:     user.Role,
		Address:  user.Address,
		Verified: user.Verified,
	}
}
