// Package auth issues and validates the HS256 access tokens that carry the
// authenticated caller's wallet across gRPC calls.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/peerreview/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the caller's wallet.
type Claims struct {
	jwt.RegisteredClaims
	Wallet string
}

// GenerateToken mints an HS256 token for the wallet valid for validityDuration.
func GenerateToken(wallet string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Wallet: wallet,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetWalletFromToken validates the token signature and expiry and returns the
// wallet it was minted for.
func GetWalletFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Wallet, nil
}
