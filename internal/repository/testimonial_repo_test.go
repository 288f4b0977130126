package repository

import (
	"context"
	"testing"

	"nainaland/internal/model"
	"nainaland/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestimonialRepo() TestimonialRepository {
	return NewTestimonialRepository(store.New().Testimonials)
}

func TestTestimonialCreateImageDefaultsToNil(t *testing.T) {
	repo := newTestimonialRepo()
	ctx := context.Background()

	noImage, err := repo.Create(ctx, model.CreateTestimonialRequest{Name: "A", Location: "Pune", Message: "Great", Rating: 5})
	require.NoError(t, err)
	assert.Nil(t, noImage.Image)

	empty := ""
	emptyImage, err := repo.Create(ctx, model.CreateTestimonialRequest{Name: "B", Location: "Pune", Message: "Good", Rating: 4, Image: &empty})
	require.NoError(t, err)
	assert.Nil(t, emptyImage.Image)
	assert.Equal(t, 2, emptyImage.ID)
}

func TestTestimonialUpdate(t *testing.T) {
	repo := newTestimonialRepo()
	ctx := context.Background()
	img := "https://example.com/a.jpg"

	created, err := repo.Create(ctx, model.CreateTestimonialRequest{Name: "A", Location: "Pune", Message: "Great", Rating: 5, Image: &img})
	require.NoError(t, err)

	rating := 3
	updated, err := repo.Update(ctx, created.ID, model.UpdateTestimonialRequest{Rating: &rating})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 3, updated.Rating)
	assert.Equal(t, "A", updated.Name)
	require.NotNil(t, updated.Image)
	assert.Equal(t, img, *updated.Image)

	noImage := ""
	updated, err = repo.Update(ctx, created.ID, model.UpdateTestimonialRequest{Image: &noImage})
	require.NoError(t, err)
	assert.Nil(t, updated.Image)
}

func TestTestimonialUpdateMissing(t *testing.T) {
	repo := newTestimonialRepo()
	rating := 3

	updated, err := repo.Update(context.Background(), 7, model.UpdateTestimonialRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestTestimonialDeleteTwice(t *testing.T) {
	repo := newTestimonialRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateTestimonialRequest{Name: "A", Location: "Pune", Message: "Great", Rating: 5})
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
