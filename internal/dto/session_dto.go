package dto

type StartSessionRequest struct {
	RoomName string `json:"room_name" validate:"required,max=128"`
	Identity string `json:"identity" validate:"required,max=128"`
}

type FailSessionRequest struct {
	Message string `json:"message"`
}

type SessionResponse struct {
	RoomName   string `json:"room_name"`
	Identity   string `json:"identity"`
	State      string `json:"state"`
	AgentState string `json:"agent_state,omitempty"`
	LastError  string `json:"last_error,omitempty"`
}
