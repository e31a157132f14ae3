package services

import (
	"testing"

	"venue-feedback-server/config"
)

func setTestJWTConfig(t *testing.T, expiryHours int) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: expiryHours,
		},
	}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setTestJWTConfig(t, 1)
	js := NewJWTService()

	token, expiresIn, err := js.generateAccessToken(42)
	if err != nil {
		t.Fatalf("generateAccessToken() error = %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	userID, err := js.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	setTestJWTConfig(t, 1)
	js := NewJWTService()

	token, _, err := js.generateAccessToken(7)
	if err != nil {
		t.Fatalf("generateAccessToken() error = %v", err)
	}

	config.AppConfig.JWT.Secret = "a-different-secret"
	if _, err := js.ValidateAccessToken(token); err == nil {
		t.Error("ValidateAccessToken() accepted a token signed with another secret")
	}
}

func TestValidateAccessTokenExpired(t *testing.T) {
	// A negative expiry produces a token that is already past its deadline
	setTestJWTConfig(t, -1)
	js := NewJWTService()

	token, _, err := js.generateAccessToken(7)
	if err != nil {
		t.Fatalf("generateAccessToken() error = %v", err)
	}

	if _, err := js.ValidateAccessToken(token); err == nil {
		t.Error("ValidateAccessToken() accepted an expired token")
	}
}

func TestValidateAccessTokenGarbage(t *testing.T) {
	setTestJWTConfig(t, 1)
	js := NewJWTService()

	if _, err := js.ValidateAccessToken("not-a-token"); err == nil {
		t.Error("ValidateAccessToken() accepted garbage input")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	js := NewJWTService()

	hash, err := js.HashPassword("Sup3rSecret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !js.CheckPasswordHash("Sup3rSecret", hash) {
		t.Error("CheckPasswordHash() rejected the original password")
	}
	if js.CheckPasswordHash("wrong", hash) {
		t.Error("CheckPasswordHash() accepted a wrong password")
	}
}
