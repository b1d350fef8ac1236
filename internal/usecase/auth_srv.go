package usecase

import (
	"context"
	"fmt"
	"time"

	"kryptonite/internal/data/entity"
	"kryptonite/internal/data/repository"
	"kryptonite/internal/dto/request"
	"kryptonite/internal/dto/response"
	"kryptonite/pkg/mailer"
	"kryptonite/pkg/utils"

	"go.uber.org/zap"
)

// User-visible success messages
const (
	MsgRegistered = "Registration successfully completed"
	MsgOTPSent    = "A six-digit code has been sent to your email"
	MsgLoggedIn   = "User successfully logged in"
	MsgKeySaved   = "Please save the api key somewhere safe. This key will not be shown again"
	MsgKeyDeleted = "Api key successfully deleted"
)

type AuthService interface {
	Register(ctx context.Context, req *request.EmailRequest) (string, error)
	Login(ctx context.Context, req *request.EmailRequest) (string, error)
	GenerateOTP(ctx context.Context, user *entity.User) (string, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error)
	GenerateAPIKey(ctx context.Context, req *request.EmailRequest) (*response.APIKeyResponse, error)
	DeleteAPIKey(ctx context.Context, req *request.EmailRequest) (string, error)
}

type authService struct {
	repo   *repository.Repository
	mail   mailer.Sender
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail mailer.Sender,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.EmailRequest) (string, error) {
	// 1. Cek email sudah terdaftar
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return "", fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return "", ErrEmailExists
	}

	// 2. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:      req.Email,
		APIKey:     "",
		IsVerified: false,
	}

	// 3. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return "", fmt.Errorf("create account: %w", err)
	}

	// 4. Send confirmation email (async, log-and-continue)
	go s.sendEmail(user.Email, mailer.SubjectConfirmation, mailer.ConfirmationBody())

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return MsgRegistered, nil
}

func (s *authService) Login(ctx context.Context, req *request.EmailRequest) (string, error) {
	// 1. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", ErrNoUser
	}

	// 2. Issue a fresh OTP (one new row per login, old ones left alone)
	code, err := s.GenerateOTP(ctx, user)
	if err != nil {
		return "", err
	}

	// 3. Send OTP email (async, log-and-continue)
	go s.sendEmail(user.Email, mailer.SubjectOTP, mailer.OTPBody(code))

	s.log.Info("Login OTP issued", zap.String("user_id", user.ID.String()))

	// Same message regardless of delivery outcome
	return MsgOTPSent, nil
}

func (s *authService) GenerateOTP(ctx context.Context, user *entity.User) (string, error) {
	code := utils.GenerateOTPCode()

	now := time.Now()
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute),
	}

	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("generate OTP: %w", err)
	}

	return code, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error) {
	// 1. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for OTP verify", zap.Error(err), zap.String("email", req.Email))
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", ErrNoUser
	}

	// 2. Exact match on (user, code)
	otp, err := s.repo.OTP.FindByUserAndCode(ctx, user.ID, req.Code)
	if err != nil {
		s.log.Error("Failed to find OTP", zap.Error(err), zap.String("email", req.Email))
		return "", fmt.Errorf("find OTP: %w", err)
	}
	if otp == nil {
		s.log.Warn("Wrong OTP code", zap.String("email", req.Email))
		return "", ErrWrongOTP
	}

	// 3. Expiry check
	if time.Now().After(otp.ExpiresAt) {
		return "", ErrOTPExpired
	}

	// 4. Flip verification flag on first success. The OTP row is not
	// consumed: the same code keeps working until it expires.
	if !user.IsVerified {
		user.IsVerified = true
		user.UpdatedAt = time.Now()

		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Error("Failed to mark user verified", zap.Error(err), zap.String("user_id", user.ID.String()))
			return "", fmt.Errorf("verify user: %w", err)
		}
	}

	s.log.Info("OTP verified",
		zap.String("email", req.Email),
		zap.String("user_id", user.ID.String()))

	return MsgLoggedIn, nil
}

func (s *authService) GenerateAPIKey(ctx context.Context, req *request.EmailRequest) (*response.APIKeyResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for api key", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Single collapsed check: missing user, unverified user, and an
	// already issued key all produce the same error.
	if user == nil || !user.IsVerified || user.APIKey != "" {
		return nil, ErrUnauthorized
	}

	key := utils.DeriveAPIKey(req.Email, user.ID)

	user.APIKey = key
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to persist api key", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("save api key: %w", err)
	}

	s.log.Info("API key issued", zap.String("user_id", user.ID.String()))

	return &response.APIKeyResponse{APIKey: key}, nil
}

func (s *authService) DeleteAPIKey(ctx context.Context, req *request.EmailRequest) (string, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for api key delete", zap.Error(err), zap.String("email", req.Email))
		return "", fmt.Errorf("find user: %w", err)
	}

	if user == nil || user.APIKey == "" {
		return "", ErrUnauthorized
	}

	user.APIKey = ""
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to clear api key", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("delete api key: %w", err)
	}

	s.log.Info("API key revoked", zap.String("user_id", user.ID.String()))

	return MsgKeyDeleted, nil
}

// ==================== HELPER METHODS ====================

// sendEmail runs in its own goroutine. Delivery failures never fail
// the request that triggered them; they are logged and dropped.
func (s *authService) sendEmail(email, subject, body string) {
	done := make(chan error, 1)
	go func() {
		done <- s.mail.Send(email, subject, body)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.log.Error("Failed to send email",
				zap.Error(err),
				zap.String("email", email),
				zap.String("subject", subject))
		}
	case <-time.After(30 * time.Second):
		s.log.Error("Email send timed out",
			zap.String("email", email),
			zap.String("subject", subject))
	}
}
