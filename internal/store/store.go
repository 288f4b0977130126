package store

import "nainaland/internal/model"

// Store holds one Table per entity kind for the lifetime of the process.
// It is constructed once in main and handed to the repositories.
type Store struct {
	Users        *Table[model.User]
	Properties   *Table[model.Property]
	BlogPosts    *Table[model.BlogPost]
	Messages     *Table[model.Message]
	Testimonials *Table[model.Testimonial]
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		Users:        NewTable[model.User](),
		Properties:   NewTable[model.Property](),
		BlogPosts:    NewTable[model.BlogPost](),
		Messages:     NewTable[model.Message](),
		Testimonials: NewTable[model.Testimonial](),
	}
}
