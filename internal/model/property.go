package model

import (
	"slices"
	"time"
)

// Property is a land listing shown in the public catalog
type Property struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"` // In the smallest currency unit
	Location     string    `json:"location"`
	Size         float64   `json:"size"`
	SizeUnit     string    `json:"sizeUnit"`
	Features     []string  `json:"features"`
	Images       []string  `json:"images"`
	VideoURL     string    `json:"videoUrl"`
	IsFeatured   bool      `json:"isFeatured"`
	PropertyType string    `json:"propertyType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreatePropertyRequest is used for creating a new property.
// Pointer and slice fields are optional and receive defaults in NewProperty.
type CreatePropertyRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Price        int64    `json:"price" binding:"required,gt=0"`
	Location     string   `json:"location" binding:"required"`
	Size         float64  `json:"size" binding:"required,gt=0"`
	SizeUnit     *string  `json:"sizeUnit"`
	Features     []string `json:"features" binding:"omitempty,dive,required"`
	Images       []string `json:"images" binding:"omitempty,dive,url"`
	VideoURL     *string  `json:"videoUrl"`
	IsFeatured   *bool    `json:"isFeatured"`
	PropertyType string   `json:"propertyType" binding:"required"`
}

// UpdatePropertyRequest is a partial update; nil fields are left untouched
type UpdatePropertyRequest struct {
	Title        *string  `json:"title,omitempty" binding:"omitempty,min=1"`
	Description  *string  `json:"description,omitempty"`
	Price        *int64   `json:"price,omitempty" binding:"omitempty,gt=0"`
	Location     *string  `json:"location,omitempty" binding:"omitempty,min=1"`
	Size         *float64 `json:"size,omitempty" binding:"omitempty,gt=0"`
	SizeUnit     *string  `json:"sizeUnit,omitempty"`
	Features     []string `json:"features,omitempty" binding:"omitempty,dive,required"`
	Images       []string `json:"images,omitempty" binding:"omitempty,dive,url"`
	VideoURL     *string  `json:"videoUrl,omitempty"`
	IsFeatured   *bool    `json:"isFeatured,omitempty"`
	PropertyType *string  `json:"propertyType,omitempty" binding:"omitempty,min=1"`
}

// NewProperty normalizes req into a stored record. Defaults:
// sizeUnit "", features [], images [], videoUrl "", isFeatured false.
func NewProperty(id int, req CreatePropertyRequest, now time.Time) Property {
	return Property{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Location:     req.Location,
		Size:         req.Size,
		SizeUnit:     valueOr(req.SizeUnit, ""),
		Features:     cloneOrEmpty(req.Features),
		Images:       cloneOrEmpty(req.Images),
		VideoURL:     valueOr(req.VideoURL, ""),
		IsFeatured:   valueOr(req.IsFeatured, false),
		PropertyType: req.PropertyType,
		CreatedAt:    now,
	}
}

// Apply merges the supplied fields of u into p.
func (p *Property) Apply(u UpdatePropertyRequest) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Size != nil {
		p.Size = *u.Size
	}
	if u.SizeUnit != nil {
		p.SizeUnit = *u.SizeUnit
	}
	if u.Features != nil {
		p.Features = slices.Clone(u.Features)
	}
	if u.Images != nil {
		p.Images = slices.Clone(u.Images)
	}
	if u.VideoURL != nil {
		p.VideoURL = *u.VideoURL
	}
	if u.IsFeatured != nil {
		p.IsFeatured = *u.IsFeatured
	}
	if u.PropertyType != nil {
		p.PropertyType = *u.PropertyType
	}
}

// Clone returns a copy that shares no slices with p.
func (p Property) Clone() Property {
	p.Features = cloneOrEmpty(p.Features)
	p.Images = cloneOrEmpty(p.Images)
	return p
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func cloneOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
