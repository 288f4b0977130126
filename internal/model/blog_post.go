package model

import "time"

// BlogPost is a long-form article
type BlogPost struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Author    string    `json:"author"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBlogPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Excerpt string `json:"excerpt" binding:"required"`
	Author  string `json:"author" binding:"required"`
	Image   string `json:"image" binding:"omitempty,url"`
}

type UpdateBlogPostRequest struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,min=1"`
	Content *string `json:"content,omitempty" binding:"omitempty,min=1"`
	Excerpt *string `json:"excerpt,omitempty" binding:"omitempty,min=1"`
	Author  *string `json:"author,omitempty" binding:"omitempty,min=1"`
	Image   *string `json:"image,omitempty"`
}

func NewBlogPost(id int, req CreateBlogPostRequest, now time.Time) BlogPost {
	return BlogPost{
		ID:        id,
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Author:    req.Author,
		Image:     req.Image,
		CreatedAt: now,
	}
}

func (b *BlogPost) Apply(u UpdateBlogPostRequest) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Content != nil {
		b.Content = *u.Content
	}
	if u.Excerpt != nil {
		b.Excerpt = *u.Excerpt
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Image != nil {
		b.Image = *u.Image
	}
}
