package response

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Operator    string `json:"operator"`
}
