package repository

import "nainaland/internal/store"

// Repositories bundles every repository built over one Store
type Repositories struct {
	Users        UserRepository
	Properties   PropertyRepository
	BlogPosts    BlogPostRepository
	Messages     MessageRepository
	Testimonials TestimonialRepository
}

// NewRepositories creates the in-memory repositories for st.
// Build them once per Store: each repository owns the lock for its table.
func NewRepositories(st *store.Store) Repositories {
	return Repositories{
		Users:        NewUserRepository(st.Users),
		Properties:   NewPropertyRepository(st.Properties),
		BlogPosts:    NewBlogPostRepository(st.BlogPosts),
		Messages:     NewMessageRepository(st.Messages),
		Testimonials: NewTestimonialRepository(st.Testimonials),
	}
}
