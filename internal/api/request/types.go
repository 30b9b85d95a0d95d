package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

// UpdateRequest is the request body for a partial record update.
// The record is addressed by id or handle; absent fields are left
// unchanged.
type UpdateRequest struct {
	ID          string  `json:"id,omitempty"`
	Handle      string  `json:"handle,omitempty"`
	Password    string  `json:"password"`
	Email       *string `json:"email,omitempty"`
	Level       *int    `json:"level,omitempty"`
	Experience  *int    `json:"experience,omitempty"`
	Score       *int    `json:"score,omitempty"`
	Wins        *int    `json:"wins,omitempty"`
	Losses      *int    `json:"losses,omitempty"`
	NewPassword *string `json:"new_password,omitempty"`
}

// DeleteRequest is the request body for deleting a record. The path
// id, when present, overrides the body addressing.
type DeleteRequest struct {
	ID       string `json:"id,omitempty"`
	Handle   string `json:"handle,omitempty"`
	Password string `json:"password"`
}
