package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id"` // omitted on the first turn; the server assigns one
	Text      string `json:"text"`       // user's message (voice→text or typed)
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"` // natural-language reply
}
