package shell

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTokenIssuer = "eventhub"

var (
	// ErrEmptySessionSecret is returned when session tokens are configured without a secret.
	ErrEmptySessionSecret = errors.New("session secret must not be empty")

	// ErrNonPositiveSessionTTL is returned when session tokens are configured with a ttl <= 0.
	ErrNonPositiveSessionTTL = errors.New("session ttl must be positive")

	// ErrSigningSessionTokenFailed is returned when a session token cannot be signed.
	ErrSigningSessionTokenFailed = errors.New("signing session token failed")

	// ErrInvalidSessionToken is returned for tokens with a bad signature, a wrong issuer or an expiry in the past.
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// SessionClaims are the claims of a session token. The subject is the user id.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokens issues and verifies HS256 signed session tokens.
type SessionTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionTokens(secret []byte, ttl time.Duration) (SessionTokens, error) {
	if len(secret) == 0 {
		return SessionTokens{}, ErrEmptySessionSecret
	}

	if ttl <= 0 {
		return SessionTokens{}, ErrNonPositiveSessionTTL
	}

	return SessionTokens{secret: secret, ttl: ttl, now: time.Now}, nil
}

// WithClock returns a copy that uses now instead of time.Now.
func (s SessionTokens) WithClock(now func() time.Time) SessionTokens {
	s.now = now
	return s
}

func (s SessionTokens) Issue(sessionID, userID string) (string, error) {
	issuedAt := s.now()

	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Join(ErrSigningSessionTokenFailed, err)
	}

	return token, nil
}

func (s SessionTokens) Parse(token string) (SessionClaims, error) {
	claims := SessionClaims{}

	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return SessionClaims{}, errors.Join(ErrInvalidSessionToken, err)
	}

	return claims, nil
}
