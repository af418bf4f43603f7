package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// BlogService defines the interface for the institute blog
type BlogService interface {
	ListPosts(ctx context.Context, tag string) *dto.PostListResponse
	GetPost(ctx context.Context, slug string) (*dto.PostResponse, error)
}

// blogServiceImpl implements the BlogService interface
type blogServiceImpl struct {
	posts []models.Post
}

// NewBlogService creates a new blog service. Posts are kept newest first;
// posts sharing a date keep their catalog order.
func NewBlogService(posts []models.Post) BlogService {
	sorted := append([]models.Post(nil), posts...)
	slices.SortStableFunc(sorted, func(a, b models.Post) int {
		return b.Date.Compare(a.Date)
	})
	return &blogServiceImpl{posts: sorted}
}

// ListPosts returns every post, or only those tagged with tag when it is non-empty.
// Tags are listed in order of first appearance.
func (s *blogServiceImpl) ListPosts(ctx context.Context, tag string) *dto.PostListResponse {
	resp := &dto.PostListResponse{
		Tag:   tag,
		Tags:  []string{},
		Posts: []dto.PostSummary{},
	}

	for _, p := range s.posts {
		for _, t := range p.Tags {
			if !slices.Contains(resp.Tags, t) {
				resp.Tags = append(resp.Tags, t)
			}
		}
		if tag != "" && !p.HasTag(tag) {
			continue
		}
		resp.Posts = append(resp.Posts, dto.NewPostSummary(p))
	}
	resp.Total = len(resp.Posts)

	return resp
}

// GetPost returns the post with the given slug
func (s *blogServiceImpl) GetPost(ctx context.Context, slug string) (*dto.PostResponse, error) {
	for _, p := range s.posts {
		if p.Slug == slug {
			resp := dto.NewPostResponse(p)
			return &resp, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("post %q not found", slug))
}
