package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/profiled/accounts/internal/common/clock"
	"github.com/profiled/accounts/internal/common/crypto"
)

// TokenCodec signs and verifies opaque session tokens bound to a user
// id. Possession of a decodable token is not enough to authenticate; the
// session manager also requires the token to still be on the user's
// active list.
type TokenCodec interface {
	Encode(userID string) (string, error)
	Decode(token string) (string, error)
}

type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	idGen  crypto.IDGenerator
	clock  clock.Clock
}

// NewJWTCodec builds an HS256 codec. A ttl of zero issues tokens without
// an expiry claim.
func NewJWTCodec(secret string, ttl time.Duration, idGen crypto.IDGenerator, clk clock.Clock) *JWTCodec {
	return &JWTCodec{
		secret: []byte(secret),
		ttl:    ttl,
		idGen:  idGen,
		clock:  clk,
	}
}

func (c *JWTCodec) Encode(userID string) (string, error) {
	jti, err := c.idGen.NewID()
	if err != nil {
		return "", err
	}

	now := c.clock.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"jti": jti,
		"iat": now.Unix(),
	}
	if c.ttl > 0 {
		claims["exp"] = now.Add(c.ttl).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

func (c *JWTCodec) Decode(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.clock.Now))
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return "", err
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims type")
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return "", errors.New("missing sub claim")
	}

	return sub, nil
}
