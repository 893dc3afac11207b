package transport

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ProductForm carries the raw multipart field values; the service layer
// validates presence and parses the numeric fields.
type ProductForm struct {
	Name        string
	Serves      string
	Description string
	Price       string
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}
