package lib

import (
	"fmt"
	"net/http"
	"time"

	"github.com/careerbuilder24/e-commerce-project/structs"
	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SignSessionToken issues a signed session token for the given user.
func SignSessionToken(user *tables.User, secret string, expiry time.Duration) (string, *structs.SessionClaims, error) {
	now := time.Now()

	claims := &structs.SessionClaims{
		Sub:   user.ID,
		Email: user.Email,
		Iat:   now,
		Exp:   now.Add(expiry),
		Jti:   uuid.New(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.Sub.String(),
		"email": claims.Email,
		"iat":   claims.Iat.Unix(),
		"exp":   claims.Exp.Unix(),
		"jti":   claims.Jti.String(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ParseSessionToken parses and validates a session token string and returns the claims
func ParseSessionToken(tokenStr string, secret string) (*structs.SessionClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		subStr, ok := claims["sub"].(string)
		if !ok {
			return nil, fmt.Errorf("invalid sub claim")
		}

		sub, err := uuid.Parse(subStr)
		if err != nil {
			return nil, fmt.Errorf("invalid UUID in sub claim: %w", err)
		}

		email, ok := claims["email"].(string)
		if !ok {
			return nil, fmt.Errorf("invalid email claim")
		}

		iat, ok := claims["iat"].(float64)
		if !ok {
			return nil, fmt.Errorf("invalid iat claim")
		}

		exp, ok := claims["exp"].(float64)
		if !ok {
			return nil, fmt.Errorf("invalid exp claim")
		}

		jtiStr, ok := claims["jti"].(string)
		if !ok {
			return nil, fmt.Errorf("invalid jti claim")
		}

		jti, err := uuid.Parse(jtiStr)
		if err != nil {
			return nil, fmt.Errorf("invalid UUID in jti claim: %w", err)
		}

		return &structs.SessionClaims{
			Sub:   sub,
			Email: email,
			Iat:   time.Unix(int64(iat), 0),
			Exp:   time.Unix(int64(exp), 0),
			Jti:   jti,
		}, nil
	}
	return nil, jwt.ErrInvalidKey
}

// ExtractSessionClaims reads the session cookie from the request and parses it.
func ExtractSessionClaims(r *http.Request, secret string) (*structs.SessionClaims, error) {
	token, err := GetCookieValue(SessionCookieName, r)
	if err != nil {
		return nil, err
	}

	claims, err := ParseSessionToken(token, secret)
	if err != nil {
		return nil, err
	}

	return claims, nil
}
