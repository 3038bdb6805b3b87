package jwt

import (
	"errors"
	"fmt"
	"time"

	"recipe-dashboard/domain"

	"github.com/golang-jwt/jwt/v4"
)

const DefaultSessionTTL = 12 * time.Hour

type (
	JWTService interface {
		GenerateSessionToken(sessionID string) (string, time.Time, error)
		ValidateSessionToken(token string) (*jwt.Token, error)
		GetSessionIDByToken(token string) (string, error)
	}

	jwtSessionClaim struct {
		SessionID string `json:"session_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
		now       func() time.Time
	}
)

func NewJWTService(secretKey string, ttl time.Duration) JWTService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &jwtService{
		secretKey: secretKey,
		issuer:    "RECIPE-DASHBOARD",
		ttl:       ttl,
		now:       time.Now,
	}
}

func (j *jwtService) GenerateSessionToken(sessionID string) (string, time.Time, error) {
	now := j.now()
	expiresAt := now.Add(j.ttl)
	claims := jwtSessionClaim{
		sessionID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateSessionToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtSessionClaim{}, j.parseToken)
}

func (j *jwtService) GetSessionIDByToken(token string) (string, error) {
	t_Token, err := j.ValidateSessionToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtSessionClaim)
	if !ok || claims.SessionID == "" || claims.Issuer != j.issuer {
		return "", domain.ErrTokenInvalid
	}
	return claims.SessionID, nil
}
