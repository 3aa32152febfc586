package models

// Response is the JSON envelope returned on API errors.
type Response struct {
	Success      int         `json:"success"`
	ErrorCode    string      `json:"error_code,omitempty"`
	ErrorDetails string      `json:"error_details,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// Status is the body of a successful health check.
type Status struct {
	Status string `json:"status"`
}
