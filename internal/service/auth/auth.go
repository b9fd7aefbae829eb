package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"github.com/redis/go-redis/v9"

	"github.com/auxillium/auxillium_backend/config"
	"github.com/auxillium/auxillium_backend/internal/repo"
	entmember "github.com/auxillium/auxillium_backend/internal/repo/familymember"
	entprofile "github.com/auxillium/auxillium_backend/internal/repo/profile"
	entsession "github.com/auxillium/auxillium_backend/internal/repo/usersession"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
	"github.com/auxillium/auxillium_backend/pkg/crypto"
	"github.com/auxillium/auxillium_backend/pkg/sms"
	jwttoken "github.com/auxillium/auxillium_backend/pkg/token"
	"github.com/auxillium/auxillium_backend/pkg/util/otp"
	"github.com/auxillium/auxillium_backend/pkg/util/password"
)

const (
	maxOTPAttempts   = 5
	accountLockMins  = 15
	maxLoginAttempts = 5

	defaultPhoneRegion = "IR"
)

// redisKeyOTP returns the Redis key for the OTP hash associated with a phone.
func redisKeyOTP(phone string) string { return "otp:" + phone }

// redisKeyOTPAttempts returns the Redis key for the OTP attempt counter.
func redisKeyOTPAttempts(phone string) string { return "otp:attempts:" + phone }

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// NormalizePhone parses a raw phone number and returns it in E.164 form.
func NormalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), defaultPhoneRegion)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Phone    string
	Password string
	FullName string
}

type VerifyOTPRequest struct {
	Phone string
	Code  string
}

type LoginRequest struct {
	Phone    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthTokens, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	sms    *sms.Client
	tokens *jwttoken.Manager
	authz  authorize.IAuthorization
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	smsCli *sms.Client,
	tokens *jwttoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		sms:    smsCli,
		tokens: tokens,
		authz:  authz,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) error {
	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return err
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	exists, err := s.db.Profile.Query().
		Where(entprofile.Phone(phone), entprofile.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check phone: %w", err)
	}
	if exists {
		return ErrPhoneAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.db.Profile.Create().
		SetPhone(phone).
		SetPasswordHash(passHash).
		SetFullName(strings.TrimSpace(req.FullName)).
		SetPhoneVerified(false).
		SetStatus(entprofile.StatusActive).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	return s.sendOTP(ctx, phone)
}

// RequestOTP re-sends a login code for an existing account.
func (s *authService) RequestOTP(ctx context.Context, rawPhone string) error {
	phone, err := NormalizePhone(rawPhone)
	if err != nil {
		return err
	}

	exists, err := s.db.Profile.Query().
		Where(entprofile.Phone(phone), entprofile.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check phone: %w", err)
	}
	if !exists {
		// Do not leak which phones are registered.
		slog.Debug("otp requested for unknown phone")
		return nil
	}

	return s.sendOTP(ctx, phone)
}

// ---------------------------------------------------------------------------
// VerifyOTP
// ---------------------------------------------------------------------------

func (s *authService) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthTokens, error) {
	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(req.Code)

	otpHash, err := s.rdb.Get(ctx, redisKeyOTP(phone)).Result()
	if err == redis.Nil {
		return nil, ErrOTPExpired
	}
	if err != nil {
		return nil, fmt.Errorf("redis get otp: %w", err)
	}

	attempts, _ := s.rdb.Get(ctx, redisKeyOTPAttempts(phone)).Int()
	if attempts >= maxOTPAttempts {
		return nil, ErrOTPMaxAttempts
	}

	if err := otp.Verify(otpHash, code); err != nil {
		s.rdb.Incr(ctx, redisKeyOTPAttempts(phone))
		return nil, ErrOTPInvalid
	}

	s.rdb.Del(ctx, redisKeyOTP(phone), redisKeyOTPAttempts(phone))

	p, err := s.db.Profile.Query().
		Where(entprofile.Phone(phone), entprofile.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	firstVerification := !p.PhoneVerified
	if firstVerification {
		p, err = s.db.Profile.UpdateOne(p).SetPhoneVerified(true).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update phone_verified: %w", err)
		}
		if err := s.bootstrapAccount(ctx, p); err != nil {
			// Account is usable without the bootstrap; repairable on next login.
			slog.Warn("account bootstrap failed", "user_id", p.ID, "error", err)
		}
	}

	return s.createSession(ctx, p)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	p, err := s.db.Profile.Query().
		Where(entprofile.Phone(phone), entprofile.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if p.Status == entprofile.StatusDisabled {
		return nil, ErrAccountDisabled
	}
	if !p.PhoneVerified {
		return nil, ErrPhoneNotVerified
	}
	if p.LockedUntil != nil && time.Now().Before(*p.LockedUntil) {
		return nil, ErrAccountLocked
	}

	if p.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.Verify(*p.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, p)
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	s.db.Profile.UpdateOne(p).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		SetLastLoginAt(now).
		Save(ctx)

	return s.createSession(ctx, p)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != jwttoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	refreshTTL := time.Duration(s.cfg.Authentication.Tokens.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	accessTTL := time.Duration(s.cfg.Authentication.Tokens.AccessTTLMinutes) * time.Minute
	accessToken, err := s.tokens.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged until logout
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		slog.Debug("logout: session already expired", "session_id", sessionID)
	}

	// Mark revoked in DB (audit, best-effort)
	now := time.Now()
	s.db.UserSession.Update().
		Where(entsession.SessionID(sessionID.String())).
		SetRevokedAt(now).
		Save(ctx)

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sendOTP(ctx context.Context, phone string) error {
	code, err := otp.GenerateDefault()
	if err != nil {
		return fmt.Errorf("generate OTP: %w", err)
	}

	otpTTL := time.Duration(s.cfg.Authentication.OTPTTLMinutes) * time.Minute
	if otpTTL <= 0 {
		otpTTL = 5 * time.Minute
	}

	if err := s.rdb.Set(ctx, redisKeyOTP(phone), otp.Hash(code), otpTTL).Err(); err != nil {
		return fmt.Errorf("store OTP: %w", err)
	}
	s.rdb.Set(ctx, redisKeyOTPAttempts(phone), "0", otpTTL+5*time.Minute)

	templateID := s.cfg.SMS.SMSIR.TemplateID
	if err := s.sms.SendOTP(ctx, phone, templateID, code); err != nil {
		// SMS failure must not block registration
		slog.Warn("failed to send OTP SMS", "error", err)
	}

	return nil
}

// bootstrapAccount runs once after first phone verification: creates the
// self family member and grants the baseline roles.
func (s *authService) bootstrapAccount(ctx context.Context, p *repo.Profile) error {
	exists, err := s.db.FamilyMember.Query().
		Where(
			entmember.UserID(p.ID),
			entmember.RelationshipEQ(entmember.RelationshipSelf),
			entmember.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check self member: %w", err)
	}
	if !exists {
		name := p.FullName
		if name == "" {
			name = p.Phone
		}
		_, err = s.db.FamilyMember.Create().
			SetUserID(p.ID).
			SetFullName(name).
			SetRelationship(entmember.RelationshipSelf).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create self member: %w", err)
		}
	}

	if err := authorize.AssignUserSelfRole(ctx, s.authz, p.ID.String()); err != nil {
		return fmt.Errorf("assign self role: %w", err)
	}
	if err := authorize.AssignPatientRole(ctx, s.authz, p.ID.String()); err != nil {
		return fmt.Errorf("assign patient role: %w", err)
	}
	return nil
}

func (s *authService) createSession(ctx context.Context, p *repo.Profile) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Tokens.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Tokens.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, p.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.tokens.IssueAccess(p.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(p.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// Persist session record to DB (audit, best-effort)
	expiresAt := time.Now().Add(refreshTTL)
	s.db.UserSession.Create().
		SetUserID(p.ID).
		SetSessionID(sessionID.String()).
		SetRefreshTokenHash(crypto.Hash(refresh)).
		SetExpiresAt(expiresAt).
		Save(ctx)

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, p *repo.Profile) {
	attempts := p.FailedLoginAttempts + 1
	upd := s.db.Profile.UpdateOne(p).
		SetFailedLoginAttempts(attempts).
		SetLastFailedLoginAt(time.Now())

	if attempts >= maxLoginAttempts {
		upd = upd.SetLockedUntil(time.Now().Add(accountLockMins * time.Minute))
	}
	upd.Save(ctx)
}
