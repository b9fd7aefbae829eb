// Package jwttoken issues and verifies signed HS256 access and refresh
// tokens carrying user and session identity.
package jwttoken

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Config struct {
	Issuer   string
	Audience string

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Manager struct {
	cfg    Config
	key    []byte
	parser *jwt.Parser
}

// wireClaims is the on-the-wire JWT payload.
type wireClaims struct {
	jwt.RegisteredClaims
	Type      string `json:"typ"`
	UserID    string `json:"uid"`
	SessionID string `json:"sid,omitempty"`
}

func New(cfg Config, signingKey []byte) (*Manager, error) {
	if len(signingKey) == 0 {
		return nil, ErrConfig{Msg: "signing key is required"}
	}
	if cfg.Issuer == "" {
		return nil, ErrConfig{Msg: "Issuer is required"}
	}
	if cfg.Audience == "" {
		return nil, ErrConfig{Msg: "Audience is required"}
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 30 * 24 * time.Hour
	}

	p := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)

	return &Manager{cfg: cfg, key: signingKey, parser: p}, nil
}

func (m *Manager) IssueAccess(userID uuid.UUID, sessionID *uuid.UUID) (string, error) {
	return m.issue(TokenTypeAccess, userID, sessionID, m.cfg.AccessTTL)
}

func (m *Manager) IssueRefresh(userID uuid.UUID, sessionID *uuid.UUID) (string, error) {
	return m.issue(TokenTypeRefresh, userID, sessionID, m.cfg.RefreshTTL)
}

func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	var wc wireClaims

	tok, err := m.parser.ParseWithClaims(tokenStr, &wc, func(t *jwt.Token) (any, error) {
		return m.key, nil
	})
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}
	if !tok.Valid {
		return nil, ErrInvalidToken{Err: jwt.ErrTokenUnverifiable}
	}

	claims, err := extractClaims(&wc)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}

	return claims, nil
}

func (m *Manager) issue(tt TokenType, userID uuid.UUID, sessionID *uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()

	wc := wireClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			Audience:  jwt.ClaimStrings{m.cfg.Audience},
			Subject:   userID.String(),
			ID:        randHex(16),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Type:   string(tt),
		UserID: userID.String(),
	}
	if sessionID != nil {
		wc.SessionID = sessionID.String()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, wc)
	return tok.SignedString(m.key)
}

func randHex(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func extractClaims(wc *wireClaims) (*Claims, error) {
	uid, err := uuid.Parse(wc.UserID)
	if err != nil {
		return nil, err
	}

	out := &Claims{
		Type:    TokenType(wc.Type),
		UserID:  uid,
		Issuer:  wc.Issuer,
		TokenID: wc.ID,
		Subject: wc.Subject,
	}
	if len(wc.Audience) > 0 {
		out.Audience = wc.Audience[0]
	}
	if wc.IssuedAt != nil {
		out.IssuedAt = wc.IssuedAt.Time
	}
	if wc.NotBefore != nil {
		out.NotBefore = wc.NotBefore.Time
	}
	if wc.ExpiresAt != nil {
		out.ExpiresAt = wc.ExpiresAt.Time
	}

	// sid is optional
	if wc.SessionID != "" {
		sid, err := uuid.Parse(wc.SessionID)
		if err != nil {
			return nil, err
		}
		out.SessionID = &sid
	}

	return out, nil
}
