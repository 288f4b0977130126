package model

// Testimonial is a customer review shown on the home page
type Testimonial struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Message  string  `json:"message"`
	Rating   int     `json:"rating"`
	Image    *string `json:"image"` // null when no picture was supplied
}

type CreateTestimonialRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location string  `json:"location" binding:"required"`
	Message  string  `json:"message" binding:"required"`
	Rating   int     `json:"rating" binding:"required,min=1,max=5"`
	Image    *string `json:"image"`
}

type UpdateTestimonialRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Location *string `json:"location,omitempty" binding:"omitempty,min=1"`
	Message  *string `json:"message,omitempty" binding:"omitempty,min=1"`
	Rating   *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Image    *string `json:"image,omitempty"`
}

// NewTestimonial normalizes req. A missing or empty image is stored as nil.
func NewTestimonial(id int, req CreateTestimonialRequest) Testimonial {
	return Testimonial{
		ID:       id,
		Name:     req.Name,
		Location: req.Location,
		Message:  req.Message,
		Rating:   req.Rating,
		Image:    normalizeImage(req.Image),
	}
}

// Apply merges the supplied fields of u into t. An empty image clears it.
func (t *Testimonial) Apply(u UpdateTestimonialRequest) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Location != nil {
		t.Location = *u.Location
	}
	if u.Message != nil {
		t.Message = *u.Message
	}
	if u.Rating != nil {
		t.Rating = *u.Rating
	}
	if u.Image != nil {
		t.Image = normalizeImage(u.Image)
	}
}

// Clone returns a copy that does not share the image pointer.
func (t Testimonial) Clone() Testimonial {
	t.Image = normalizeImage(t.Image)
	return t
}

func normalizeImage(img *string) *string {
	if img == nil || *img == "" {
		return nil
	}
	v := *img
	return &v
}
