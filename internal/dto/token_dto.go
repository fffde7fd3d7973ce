package dto

type CreateTokenRequest struct {
	Identity string `json:"identity" validate:"omitempty,max=128"`
	RoomName string `json:"roomName" validate:"omitempty,max=128"`
}

type CreateTokenResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}
