package usecase

import (
	"crypto/subtle"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials deliberately covers both unknown username and wrong
// password so callers cannot enumerate accounts.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session token")
)

// SessionTTL is the fixed lifetime of a dashboard session.
const SessionTTL = 24 * time.Hour

// SessionConfig carries the single out-of-band dashboard account and the
// token signing secret.
type SessionConfig struct {
	Username     string
	PasswordHash string // bcrypt
	Secret       string
}

// ISessionUseCase issues and verifies the signed dashboard session token.

type ISessionUseCase interface {
	Login(username, password string) (string, error)
	Verify(tokenString string) error
}

type SessionUseCase struct {
	cfg SessionConfig

	// now is swapped in tests to pin token expiry.
	now func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(cfg SessionConfig) *SessionUseCase {
	return &SessionUseCase{cfg: cfg, now: time.Now}
}

// Login checks the shared credentials and returns a signed HS256 token good
// for SessionTTL.
func (u *SessionUseCase) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.cfg.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(u.cfg.PasswordHash), []byte(password))
	if !userOK || passErr != nil {
		log.Printf("[auth][usecase] login rejected")
		return "", ErrInvalidCredentials
	}

	now := u.now()
	claims := jwt.MapClaims{
		"sub": u.cfg.Username,
		"exp": now.Add(SessionTTL).Unix(),
		"iat": now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.Secret))
	if err != nil {
		return "", err
	}
	log.Printf("[auth][usecase] login success")
	return token, nil
}

// Verify accepts only HMAC-signed, unexpired tokens. Expired, malformed and
// badly signed tokens all collapse into ErrInvalidSession: the caller treats
// them exactly like a missing token, apart from clearing the cookie.
func (u *SessionUseCase) Verify(tokenString string) error {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(u.cfg.Secret), nil
	}, jwt.WithTimeFunc(u.now))
	if err != nil || !parsed.Valid {
		return ErrInvalidSession
	}
	return nil
}
