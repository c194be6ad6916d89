package verification

import (
	"context"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"social-account/internal/domain"
	"social-account/internal/repository"
	"social-account/internal/service/email"
)

const (
	Cooldown          = 24 * time.Hour
	RandomTokenLength = 40
)

var ErrAlreadyVerified = fmt.Errorf("%w: email already verified", domain.ErrConflict)

type Service interface {
	Request(ctx context.Context, userID int64) (*domain.EmailVerification, error)
	// Confirm reports whether the email was verified. A token pair owned by
	// another user is not an error; nothing changes and false is returned.
	Confirm(ctx context.Context, userToken, randomToken string, userID int64) (bool, error)
}

type service struct {
	verificationRepo repository.EmailVerificationRepository
	userRepo         repository.UserRepository
	mailer           email.Service
	logger           *slog.Logger
	now              func() time.Time
}

func NewService(
	verificationRepo repository.EmailVerificationRepository,
	userRepo repository.UserRepository,
	mailer email.Service,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *service) Request(ctx context.Context, userID int64) (*domain.EmailVerification, error) {
	recent, err := s.verificationRepo.CountByUserSince(ctx, userID, s.now().Add(-Cooldown))
	if err != nil {
		return nil, err
	}
	if recent > 0 {
		return nil, fmt.Errorf("%w: verification email already sent", domain.ErrRateLimited)
	}

	existing, err := s.verificationRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		if err := s.verificationRepo.DeleteByUser(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to delete stale verifications: %w", err)
		}
	}

	user, err := s.userRepo.GetUnverifiedByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrAlreadyVerified
	}

	randomToken, err := randomAlphanumeric(RandomTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	v := &domain.EmailVerification{
		UserID:      user.ID,
		Email:       user.Email,
		UserToken:   UserToken(user.ID),
		RandomToken: randomToken,
	}
	if err := s.verificationRepo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to create verification: %w", err)
	}

	if err := s.mailer.SendConfirmEmail(ctx, user.Email, v); err != nil {
		return nil, fmt.Errorf("failed to send verification email: %w", err)
	}

	s.logger.Info("Verification email sent", "user_id", user.ID)
	return v, nil
}

func (s *service) Confirm(ctx context.Context, userToken, randomToken string, userID int64) (bool, error) {
	v, err := s.verificationRepo.GetByTokens(ctx, userToken, randomToken)
	if err != nil {
		return false, err
	}
	if v == nil {
		return false, fmt.Errorf("%w: verification", domain.ErrNotFound)
	}

	if v.UserID != userID {
		s.logger.Warn("Verification confirmed by another user", "verification_id", v.ID, "user_id", userID)
		return false, nil
	}

	if err := s.userRepo.MarkEmailVerified(ctx, userID, s.now()); err != nil {
		return false, fmt.Errorf("failed to verify email: %w", err)
	}
	return true, nil
}

// UserToken is the hex SHA-512 of the decimal user id.
func UserToken(userID int64) string {
	sum := sha512.Sum512([]byte(strconv.FormatInt(userID, 10)))
	return hex.EncodeToString(sum[:])
}

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func randomAlphanumeric(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	// 248 is the largest multiple of 62 below 256; higher bytes are dropped to
	// keep the distribution uniform.
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= 248 {
				continue
			}
			out = append(out, alphanumeric[int(b)%len(alphanumeric)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
