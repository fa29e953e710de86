package session

import (
	"fmt"

	"github.com/dmitrijs2005/postboard/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity fields the API embeds in its tokens.
type Claims struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// DecodeToken reads the identity claims of token without checking its
// signature or expiry. The result only feeds display fields and
// client-side ownership checks; the API verifies the token itself.
func DecodeToken(token string) (*models.User, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("decode token: missing user id")
	}
	return &models.User{ID: claims.UserID, Name: claims.Name, Email: claims.Email}, nil
}
