package utils

import (
	"testing"

	"github.com/simmaci/simmaci-backend/internal/model"
)

func TestTokenPairRoundTrip(t *testing.T) {
	claims := model.JWTClaims{
		UserID: "4fa0a000-0000-0000-0000-000000000001",
		Email:  "admin@simmaci.or.id",
		Role:   "admin",
		Name:   "Administrator",
	}

	pair, err := GenerateTokenPair(claims, "rahasia-test", 24, 168)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("token kosong")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatal("access dan refresh token tidak boleh sama")
	}

	got, err := ValidateToken(pair.AccessToken, "rahasia-test")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if *got != claims {
		t.Errorf("claims = %+v, want %+v", got, claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	claims := model.JWTClaims{UserID: "u1", Email: "a@b.id", Role: "operator", Name: "Op"}

	pair, err := GenerateTokenPair(claims, "rahasia-benar", 24, 168)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := ValidateToken(pair.AccessToken, "rahasia-salah"); err == nil {
		t.Fatal("token dengan secret salah harus ditolak")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("bukan.token.jwt", "rahasia"); err == nil {
		t.Fatal("string acak harus ditolak")
	}
}
