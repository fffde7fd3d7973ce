package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"hadith-voice-be/internal/config"
	"hadith-voice-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultRoomName = "hadith-voice-room"
	tokenTTL        = 6 * time.Hour
)

// ITokenService issues room access credentials for the voice service.
type ITokenService interface {
	CreateToken(ctx context.Context, request *dto.CreateTokenRequest) (*dto.CreateTokenResponse, error)
}

type tokenService struct {
	cfg config.LiveKitConfig
}

func NewTokenService(cfg config.LiveKitConfig) ITokenService {
	return &tokenService{cfg: cfg}
}

// videoGrant is the LiveKit room permission claim.
type videoGrant struct {
	Room         string `json:"room"`
	RoomJoin     bool   `json:"roomJoin"`
	CanPublish   bool   `json:"canPublish"`
	CanSubscribe bool   `json:"canSubscribe"`
}

type accessClaims struct {
	jwt.RegisteredClaims
	Name  string     `json:"name"`
	Video videoGrant `json:"video"`
}

// CreateToken mints a signed credential scoped to one identity and one
// room. Stateless; every session requests a fresh token.
func (s *tokenService) CreateToken(ctx context.Context, request *dto.CreateTokenRequest) (*dto.CreateTokenResponse, error) {
	if s.cfg.ApiKey == "" || s.cfg.ApiSecret == "" {
		return nil, fmt.Errorf("LIVEKIT_API_KEY and LIVEKIT_API_SECRET must be configured")
	}

	identity := request.Identity
	if identity == "" {
		identity = "user-" + randomHex(4)
	}
	roomName := request.RoomName
	if roomName == "" {
		roomName = DefaultRoomName
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.ApiKey,
			Subject:   identity,
			ID:        identity,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Name: identity,
		Video: videoGrant{
			Room:         roomName,
			RoomJoin:     true,
			CanPublish:   true,
			CanSubscribe: true,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.ApiSecret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &dto.CreateTokenResponse{
		Token: signed,
		URL:   s.cfg.URL,
	}, nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
