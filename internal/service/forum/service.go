package forum

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mindbridge/campus-care/backend/internal/model/forum"
)

// ErrInvalidPost is returned when a new post misses a required field or
// names an unknown topic.
var ErrInvalidPost = errors.New("title, content and a topic are required")

const (
	CreatedTitle               = "Post Created Successfully!"
	CreatedDescription         = "Your post has been published anonymously to the community."
	CreatedDescriptionWithName = "Your post has been published to the community."
	maxTags                    = 10
)

// NewPost is a submission from the composer. IsAnonymous defaults to true;
// Tags is a comma separated list.
type NewPost struct {
	Title       string `json:"title" validate:"required,max=200"`
	Content     string `json:"content" validate:"required,max=5000"`
	Category    string `json:"category" validate:"required,oneof=anxiety depression stress sleep motivation relationships support"`
	IsAnonymous *bool  `json:"isAnonymous,omitempty"`
	Tags        string `json:"tags,omitempty" validate:"max=500"`
}

// Created acknowledges a published post.
type Created struct {
	Post        forum.Post `json:"post"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
}

// Service publishes and lists peer support posts.
type Service struct {
	store    *forum.Store
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewService builds a forum service over store. logger may be nil.
func NewService(store *forum.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// List returns the posts matching q, newest first.
func (s *Service) List(_ context.Context, q forum.Query) []forum.Post {
	return s.store.Filter(q)
}

// Categories returns the topic filters, wildcard first.
func (s *Service) Categories() []forum.Category {
	return forum.Categories()
}

// Create validates p and puts it at the top of the board.
func (s *Service) Create(_ context.Context, p NewPost) (Created, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	p.Category = strings.TrimSpace(p.Category)
	if err := s.validate.Struct(p); err != nil {
		return Created{}, fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}

	anonymous := p.IsAnonymous == nil || *p.IsAnonymous
	post := forum.Post{
		ID:          uuid.NewString(),
		Title:       p.Title,
		Content:     p.Content,
		Category:    p.Category,
		Author:      forum.NamedAuthor,
		IsAnonymous: anonymous,
		Timestamp:   s.now().UTC(),
		Tags:        splitTags(p.Tags),
	}
	description := CreatedDescriptionWithName
	if anonymous {
		post.Author = forum.AnonymousAuthor
		description = CreatedDescription
	}
	s.store.Add(post)

	s.logger.Info("forum post created",
		zap.String("post_id", post.ID),
		zap.String("category", post.Category),
		zap.Bool("anonymous", anonymous),
		zap.Int("tags", len(post.Tags)),
	)
	return Created{Post: post, Title: CreatedTitle, Description: description}, nil
}

func splitTags(raw string) []string {
	tags := lo.Uniq(lo.Compact(lo.Map(strings.Split(raw, ","), func(tag string, _ int) string {
		return strings.TrimSpace(tag)
	})))
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}
