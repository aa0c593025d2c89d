package usecases

import (
	"context"
	"time"

	"itdesk/internal/domain/setting"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
)

// PasswordVerifier checks a password against its stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// SessionIssuer signs a new admin session token.
type SessionIssuer interface {
	Issue() (token string, expiresAt time.Time, err error)
}

// AttemptLimiter throttles login attempts per client. Allow reports whether
// another attempt may proceed; Reset clears the counter after a successful
// login.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// LoginCommand carries the password entered on the admin screen and the
// client IP used as the throttling key.
type LoginCommand struct {
	Password string
	ClientIP string
}

// LoginResult carries the signed session token and its expiry.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// LoginUseCase verifies the admin password and issues a session token. The
// password hash lives in the settings store; bootstrapHash covers the first
// boot before the admin has saved a password of their own.
type LoginUseCase struct {
	settingRepo   setting.Repository
	verifier      PasswordVerifier
	sessions      SessionIssuer
	limiter       AttemptLimiter
	bootstrapHash string
	logger        logger.Interface
}

// NewLoginUseCase creates a new LoginUseCase.
func NewLoginUseCase(
	settingRepo setting.Repository,
	verifier PasswordVerifier,
	sessions SessionIssuer,
	limiter AttemptLimiter,
	bootstrapHash string,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		settingRepo:   settingRepo,
		verifier:      verifier,
		sessions:      sessions,
		limiter:       limiter,
		bootstrapHash: bootstrapHash,
		logger:        logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	limiterKey := "login:" + cmd.ClientIP
	allowed, err := uc.limiter.Allow(ctx, limiterKey)
	if err != nil {
		// A broken limiter backend must not lock the admin out.
		uc.logger.Warnw("rate limiter unavailable, allowing attempt", "error", err)
	} else if !allowed {
		uc.logger.Warnw("login attempt throttled", "ip", cmd.ClientIP)
		return nil, errors.NewUnauthorizedError("too many login attempts, try again later")
	}

	hash := uc.currentHash(ctx)
	if hash == "" {
		uc.logger.Errorw("no admin password configured")
		return nil, errors.NewUnauthorizedError("invalid password")
	}

	if err := uc.verifier.Verify(cmd.Password, hash); err != nil {
		uc.logger.Warnw("failed login attempt", "ip", cmd.ClientIP)
		return nil, errors.NewUnauthorizedError("invalid password")
	}

	token, expiresAt, err := uc.sessions.Issue()
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	if err := uc.limiter.Reset(ctx, limiterKey); err != nil {
		uc.logger.Warnw("failed to reset login throttle", "ip", cmd.ClientIP, "error", err)
	}

	uc.logger.Infow("admin logged in", "ip", cmd.ClientIP)
	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

// currentHash prefers the password saved through the settings screen and
// falls back to the bootstrap hash from config.
func (uc *LoginUseCase) currentHash(ctx context.Context) string {
	stored, err := uc.settingRepo.Get(ctx, setting.KeyAdminPasswordHash)
	if err == nil && stored != "" {
		return stored
	}
	if err != nil && !errors.IsNotFound(err) {
		uc.logger.Warnw("failed to read admin password hash, using bootstrap", "error", err)
	}
	return uc.bootstrapHash
}
