package dto

type CustomerListResponse struct {
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
	Customers []CustomerResponse `json:"customers"`
}

type ImportResponse struct {
	Message string `json:"message"`
}
