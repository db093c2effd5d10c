package auth

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/config"
	"portfolio/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// Development fallback account. Accepted only outside production, when the
// credential store has no matching user or cannot be reached at all.
const (
	DevEmail    = "admin@example.com"
	DevPassword = "admin123"
	DevName     = "Admin User"
	devID       = "default-admin-id"
)

// Identity is the authenticated principal embedded in session tokens.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Authenticate checks credentials against the user collection and returns the
// matching identity. Store failures and unknown users degrade to the dev
// fallback account outside production; in production both fail the login.
func Authenticate(db *sql.DB, cfg *config.Config, email, password string) (*Identity, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := models.GetUserByEmail(db, email)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.Printf("auth: user lookup failed: %v", err)
		}
		if !cfg.Production() && email == DevEmail && password == DevPassword {
			log.Printf("auth: using development fallback identity for %s", email)
			return &Identity{ID: devID, Email: DevEmail, Name: DevName}, nil
		}
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// Claims is the session token payload.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for the identity, valid for lifetime.
func IssueToken(id *Identity, secret string, lifetime time.Duration) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(lifetime)
	claims := &Claims{
		Email: id.Email,
		Name:  id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// ParseToken validates a session token and returns the identity it encodes.
func ParseToken(tokenString, secret string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &Identity{ID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}

// ----------------------------
// Context helpers (for middleware and handlers)
// ----------------------------

type ctxKeyIdentity struct{}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity{}, id)
}

func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity{}).(*Identity)
	return id, ok && id != nil
}
