package service

import (
	"testing"

	"github.com/google/uuid"

	"estagios_backend/internals/configs"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3nha-forte")
	if err != nil {
		t.Fatalf("hash falhou: %v", err)
	}
	if hash == "s3nha-forte" {
		t.Fatal("senha armazenada em texto puro")
	}
	if !CheckPassword(hash, "s3nha-forte") {
		t.Fatal("senha correta recusada")
	}
	if CheckPassword(hash, "outra-senha") {
		t.Fatal("senha errada aceita")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	userID := uuid.New()
	token, err := GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("geração falhou: %v", err)
	}

	got, err := ParseRefreshToken(token)
	if err != nil {
		t.Fatalf("parse falhou: %v", err)
	}
	if got != userID {
		t.Fatalf("user_id = %s, esperado %s", got, userID)
	}
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	access, err := GenerateAccessToken(uuid.New(), "Aluno Teste", "STUDENT")
	if err != nil {
		t.Fatalf("geração do access token falhou: %v", err)
	}
	if _, err := ParseRefreshToken(access); err == nil {
		t.Fatal("access token aceito como refresh token")
	}
}
