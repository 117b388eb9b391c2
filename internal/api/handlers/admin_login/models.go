package admin_login

// LoginRequest HTTP request model входа администратора
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model успешного входа или выхода
type LoginResponse struct {
	Ok bool `json:"ok"`
}
