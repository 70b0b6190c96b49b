package dto

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type StatusChange struct {
	Status string `json:"status"`
}
