package types

import "encoding/json"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// User is the admin identity returned by a successful login and persisted
// alongside the session token.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

// LoginResult carries the bearer token and user record from a successful
// login, plus the server's message.
type LoginResult struct {
	Token   string
	User    User
	Message string
}

// loginData is the envelope payload of a successful login. The backend
// flattens the token and user fields into one object.
type loginData struct {
	Token       string `json:"token"`
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// DecodeLoginData unpacks the flattened login payload into a LoginResult.
func DecodeLoginData(raw []byte) (*LoginResult, error) {
	var d loginData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &LoginResult{
		Token: d.Token,
		User: User{
			ID:       d.UserID,
			Username: d.Username,
			Email:    d.Email,
			Phone:    d.PhoneNumber,
			Role:     d.Role,
		},
	}, nil
}
