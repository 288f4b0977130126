package model

import "time"

// Message is a contact-form submission
type Message struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Interest   string    `json:"interest"`
	Message    string    `json:"message"`
	PropertyID *int      `json:"propertyId"` // Plain reference, not checked against the property table
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateMessageRequest struct {
	Name       string `json:"name" binding:"required,min=2"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,min=10"`
	Interest   string `json:"interest" binding:"required"`
	Message    string `json:"message" binding:"required"`
	PropertyID *int   `json:"propertyId" binding:"omitempty,gt=0"`
}

// UpdateMessageStatusRequest is the body of PUT /messages/:id/read.
// An absent isRead marks the message as read.
type UpdateMessageStatusRequest struct {
	IsRead *bool `json:"isRead"`
}

// NewMessage builds an unread message stamped with now.
func NewMessage(id int, req CreateMessageRequest, now time.Time) Message {
	var propertyID *int
	if req.PropertyID != nil {
		v := *req.PropertyID
		propertyID = &v
	}
	return Message{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Interest:   req.Interest,
		Message:    req.Message,
		PropertyID: propertyID,
		IsRead:     false,
		CreatedAt:  now,
	}
}
