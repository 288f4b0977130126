// Package seed fills a fresh store with the admin account and the demo
// catalog shown on the public site.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"nainaland/internal/model"
	"nainaland/internal/repository"
)

// Admin holds the credentials of the account created at startup
type Admin struct {
	Username string
	Password string
}

// Load creates the seed records through the normal repository operations.
// It is not idempotent: call it once per process.
func Load(ctx context.Context, repos repository.Repositories, admin Admin) error {
	if _, err := repos.Users.Create(ctx, model.CreateUserRequest{
		Username: admin.Username,
		Password: admin.Password,
		Role:     model.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	for _, req := range sampleProperties() {
		if _, err := repos.Properties.Create(ctx, req); err != nil {
			return fmt.Errorf("failed to seed property %q: %w", req.Title, err)
		}
	}
	for _, req := range sampleBlogPosts() {
		if _, err := repos.BlogPosts.Create(ctx, req); err != nil {
			return fmt.Errorf("failed to seed blog post %q: %w", req.Title, err)
		}
	}
	for _, req := range sampleTestimonials() {
		if _, err := repos.Testimonials.Create(ctx, req); err != nil {
			return fmt.Errorf("failed to seed testimonial from %q: %w", req.Name, err)
		}
	}

	slog.InfoContext(ctx, "seed data loaded",
		"admin", admin.Username,
		"properties", len(sampleProperties()),
		"blog_posts", len(sampleBlogPosts()),
		"testimonials", len(sampleTestimonials()),
	)
	return nil
}

func ptr[T any](v T) *T { return &v }
