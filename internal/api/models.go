package api

// Request and response models for the HTTP surface. Validation uses
// go-playground/validator struct tags via shared.ValidateRequest.

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse describes a registered account.
type AccountResponse struct {
	Login string `json:"login"`
	Name  string `json:"name,omitempty"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// EditProfileRequest is the payload for PUT /profile.
type EditProfileRequest struct {
	Attribute string `json:"attribute" validate:"required"`
	Value     string `json:"value"`
}

// AttributeResponse is the result of a public attribute read.
type AttributeResponse struct {
	Login     string `json:"login"`
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// RelationRequest names the target of a relation declaration. It serves the
// friends, idols, crushes and enemies endpoints alike.
type RelationRequest struct {
	Login string `json:"login" validate:"required"`
}

// RelationResponse answers a relation query.
type RelationResponse struct {
	Login    string `json:"login"`
	Other    string `json:"other"`
	Relation string `json:"relation"`
	Holds    bool   `json:"holds"`
}

// FriendsResponse lists an account's friends in acceptance order.
type FriendsResponse struct {
	Login   string   `json:"login"`
	Friends []string `json:"friends"`
}

// CommunitiesResponse lists the communities an account belongs to, in join order.
type CommunitiesResponse struct {
	Login       string   `json:"login"`
	Communities []string `json:"communities"`
}

// SendMessageRequest is the payload for POST /messages.
type SendMessageRequest struct {
	Recipient string `json:"recipient" validate:"required"`
	Body      string `json:"body"`
}

// MessageResponse carries one consumed, rendered message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateCommunityRequest is the payload for POST /communities.
type CreateCommunityRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// BroadcastRequest is the payload for POST /communities/{name}/messages.
type BroadcastRequest struct {
	Body string `json:"body"`
}

// CommunityResponse describes a community.
type CommunityResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Owner       string   `json:"owner"`
	Members     []string `json:"members"`
}
