package contact

// ContactRequest represents a contact form submission.
// Missing keys bind as empty strings; fields are trimmed before validation.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contact_email"`
	Message string `json:"message" validate:"required"`
}

// SubmitResponse represents the response after submitting a contact form
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// MessageResponse is the wire representation of a stored contact message
type MessageResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"created_at"`
	IsRead    bool    `json:"is_read"`
	IPAddress *string `json:"ip_address"`
}

// ListResponse is the paginated message listing for the admin dashboard
type ListResponse struct {
	Messages    []MessageResponse `json:"messages"`
	Total       int64             `json:"total"`
	Pages       int               `json:"pages"`
	CurrentPage int               `json:"current_page"`
}

// MarkReadResponse confirms a message was marked as read
type MarkReadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
