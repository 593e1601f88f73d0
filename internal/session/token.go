package session

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a session token is missing, malformed,
// expired or signed with the wrong key.
var ErrInvalidToken = errors.New("invalid session token")

// Token is a signed session token together with its expiry, handed to the
// browser as a cookie after a successful provider callback.
type Token struct {
	Value string
	Exp   time.Time
}

// NewToken builds and signs an HS256 JWT for the given principal.  The JWT
// carries the guest id as subject plus email and name claims so the
// principal can be rebuilt without a database read.
func NewToken(secret string, p Principal, ttl time.Duration) (Token, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":   p.GuestID,
		"email": p.Email,
		"name":  p.FullName,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return Token{}, err
	}
	return Token{Value: signed, Exp: exp}, nil
}

// ParseToken validates a raw session token and rebuilds the principal from
// its claims.  Only HMAC-signed tokens are accepted; any parse or claim
// failure surfaces as ErrInvalidToken.
func ParseToken(secret, raw string) (*Principal, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	p := &Principal{}
	switch sub := claims["sub"].(type) {
	case float64:
		// JWT numbers decode as float64; guest ids fit without loss.
		p.GuestID = int64(sub)
	case string:
		n, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return nil, ErrInvalidToken
		}
		p.GuestID = n
	default:
		return nil, ErrInvalidToken
	}
	if p.GuestID <= 0 {
		return nil, ErrInvalidToken
	}
	if v, ok := claims["email"].(string); ok {
		p.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		p.FullName = v
	}
	return p, nil
}
