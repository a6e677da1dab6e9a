package config

import (
	"time"
)

var JWTSecret []byte
var JWTExpiration = 24 * time.Hour

// InitJWT installs the signing secret used for issued tokens.
func InitJWT(secret string) {
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)
}
