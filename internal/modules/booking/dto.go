package booking

type CreateBookingRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	EventType string `json:"eventType"`
	Date      string `json:"date"`
	Message   string `json:"message"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
