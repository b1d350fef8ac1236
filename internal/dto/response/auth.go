package response

type APIKeyResponse struct {
	APIKey string `json:"api_key"`
}
