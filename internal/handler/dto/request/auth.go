package request

type LoginRequest struct {
	Operator string `json:"operator" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
