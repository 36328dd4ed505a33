package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/contacts-api/cmd/config"
	"github.com/muhammadheryan/contacts-api/constant"
	"github.com/muhammadheryan/contacts-api/model"
	accountrepo "github.com/muhammadheryan/contacts-api/repository/account"
	redisrepo "github.com/muhammadheryan/contacts-api/repository/redis"
	"github.com/muhammadheryan/contacts-api/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contacts-api/utils/errors"
	"github.com/muhammadheryan/contacts-api/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Verify(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, req *model.ResendVerificationRequest) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type AuthAppImpl struct {
	config      *config.Config
	accountRepo accountrepo.AccountRepository
	redisRepo   redisrepo.Repository
	publisher   rabbitmq.EmailPublisher
}

func NewAuthApp(config *config.Config, accountRepo accountrepo.AccountRepository, redisRepo redisrepo.Repository, publisher rabbitmq.EmailPublisher) AuthApp {
	return &AuthAppImpl{
		config:      config,
		accountRepo: accountRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
	}
}

func (s *AuthAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	existing, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrEmailExists)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.AccountEntity{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Subscription: constant.SubscriptionStarter,
		Verify:       false,
	}

	entity, err = s.accountRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Register] err accountRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// The verification token carries the account id as subject, so it is
	// issued after the insert and stored in a follow-up update.
	verificationToken, _, err := s.signToken(entity.ID, s.config.Auth.VerificationExpTime)
	if err != nil {
		logger.Error("[Register] err signToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.accountRepo.UpdateVerificationToken(ctx, entity.ID, verificationToken); err != nil {
		logger.Error("[Register] err UpdateVerificationToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishVerificationEmail(entity.Email, verificationToken)

	return &model.RegisterResponse{
		Message: "User registered successfully. Check your email for verification.",
		User: model.AccountResponse{
			Email:        entity.Email,
			Subscription: entity.Subscription,
		},
	}, nil
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Unknown email and wrong password must be indistinguishable to the
	// caller, so both paths map to the same credential error.
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, jti, err := s.signToken(account.ID, s.config.Auth.JWTExpiration)
	if err != nil {
		logger.Error("[Login] err signToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Persisting the token on the record keeps later invalidation possible.
	if err := s.accountRepo.UpdateToken(ctx, account.ID, token); err != nil {
		logger.Error("[Login] err UpdateToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, account.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Token: token,
		User: model.AccountResponse{
			Email:        account.Email,
			Subscription: account.Subscription,
		},
	}, nil
}

func (s *AuthAppImpl) Verify(ctx context.Context, token string) error {
	accountID, _, err := s.parseToken(token)
	if err != nil {
		return errors.SetCustomError(constant.ErrInvalidToken)
	}

	// The verified flag flips and the token clears in a single statement,
	// predicated on the stored token matching the presented one. A reused
	// or tampered token affects no rows.
	verified, err := s.accountRepo.MarkVerified(ctx, accountID, token)
	if err != nil {
		logger.Error("[Verify] err MarkVerified", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !verified {
		return errors.SetCustomError(constant.ErrInvalidToken)
	}

	return nil
}

func (s *AuthAppImpl) ResendVerification(ctx context.Context, req *model.ResendVerificationRequest) error {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[ResendVerification] err accountRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if account.Verify {
		return errors.SetCustomError(constant.ErrAlreadyVerified)
	}
	if account.VerificationToken == nil {
		logger.Error("[ResendVerification] unverified account without token", zap.Uint64("account_id", account.ID))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// The stored token is reused, not rotated, so links from earlier
	// emails stay valid.
	s.publishVerificationEmail(account.Email, *account.VerificationToken)

	return nil
}

func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	userID, jti, err := s.parseToken(tokenString)
	if err != nil {
		return 0, err
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

// signToken creates an HS256 token for the account with the given lifetime.
// Both session and verification tokens share this shape.
func (s *AuthAppImpl) signToken(accountID uint64, expiration time.Duration) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", accountID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// parseToken validates a signed token and returns the account id and jti.
func (s *AuthAppImpl) parseToken(tokenString string) (uint64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid user id in token")
	}

	if claims.ID == "" {
		return 0, "", fmt.Errorf("token missing jti")
	}

	return userID, claims.ID, nil
}

func (s *AuthAppImpl) publishVerificationEmail(email, verificationToken string) {
	if s.publisher == nil {
		return
	}

	link := fmt.Sprintf("%s/api/users/verify/%s", s.config.BaseURL, verificationToken)
	err := s.publisher.PublishVerificationEmail(rabbitmq.VerificationEmailMessage{
		Email:            email,
		VerificationLink: link,
	})
	if err != nil {
		// Registration already committed and the resend endpoint exists
		// to recover, so a publish failure is not fatal.
		logger.Warn("[publishVerificationEmail] err publish", zap.String("email", email), zap.String("error", err.Error()))
	}
}
