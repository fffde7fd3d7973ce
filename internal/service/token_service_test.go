package service

import (
	"context"
	"testing"

	"hadith-voice-be/internal/config"
	"hadith-voice-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func testLiveKitConfig() config.LiveKitConfig {
	return config.LiveKitConfig{
		ApiKey:    "devkey",
		ApiSecret: "devsecret-devsecret-devsecret-00",
		URL:       "wss://example.livekit.cloud",
	}
}

func TestCreateToken(t *testing.T) {
	svc := NewTokenService(testLiveKitConfig())

	res, err := svc.CreateToken(context.Background(), &dto.CreateTokenRequest{
		Identity: "user-abc123",
		RoomName: "hadith-voice-room",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "wss://example.livekit.cloud", res.URL)

	// The credential must be scoped to exactly that room and identity
	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("devsecret-devsecret-devsecret-00"), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "devkey", claims["iss"])
	assert.Equal(t, "user-abc123", claims["sub"])

	video := claims["video"].(map[string]interface{})
	assert.Equal(t, "hadith-voice-room", video["room"])
	assert.Equal(t, true, video["roomJoin"])
	assert.Equal(t, true, video["canPublish"])
	assert.Equal(t, true, video["canSubscribe"])
}

func TestCreateTokenDefaults(t *testing.T) {
	svc := NewTokenService(testLiveKitConfig())

	res, err := svc.CreateToken(context.Background(), &dto.CreateTokenRequest{})
	assert.NoError(t, err)

	token, _ := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("devsecret-devsecret-devsecret-00"), nil
	})
	claims := token.Claims.(jwt.MapClaims)

	identity := claims["sub"].(string)
	assert.Regexp(t, `^user-[0-9a-f]{8}$`, identity)

	video := claims["video"].(map[string]interface{})
	assert.Equal(t, DefaultRoomName, video["room"])
}

func TestCreateTokenFreshPerRequest(t *testing.T) {
	svc := NewTokenService(testLiveKitConfig())

	first, err := svc.CreateToken(context.Background(), &dto.CreateTokenRequest{})
	assert.NoError(t, err)
	second, err := svc.CreateToken(context.Background(), &dto.CreateTokenRequest{})
	assert.NoError(t, err)

	// Random identities: tokens are never reused across reconnects
	assert.NotEqual(t, first.Token, second.Token)
}

func TestCreateTokenMissingSigningConfig(t *testing.T) {
	svc := NewTokenService(config.LiveKitConfig{})

	_, err := svc.CreateToken(context.Background(), &dto.CreateTokenRequest{Identity: "x"})
	assert.Error(t, err)
}
