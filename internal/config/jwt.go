package config

import (
	"fmt"
	"os"
)

// JWTConfig holds configuration for JWT token validation. The gateway only
// verifies tokens; issuance belongs to the auth service.
type JWTConfig struct {
	Secret string
}

// NewJWTConfig creates a JWT configuration from the environment. It reads
// JWT_SECRET (required).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	return &JWTConfig{Secret: secret}, nil
}
