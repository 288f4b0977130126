package service

import "errors"

var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrBlogPostNotFound    = errors.New("blog post not found")
	ErrMessageNotFound     = errors.New("message not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
)
