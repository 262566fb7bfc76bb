package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// postService is the concrete implementation of PostService.
//
// Ownership is enforced here, not in the handlers: every mutation of an
// existing post first loads it and compares the owner against the caller's
// identity. Admins are not exempt — the moderation endpoints go through the
// dedicated admin methods instead.
type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService on top of the given PostRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// CreatePost persists a new post owned by the caller. The owner is taken
// from the authenticated identity, never from the request body.
func (p *postService) CreatePost(ctx context.Context, identity models.Identity, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.Title == "" || post.Content == "" {
		return models.Post{}, ErrInvalidDataProvided
	}

	post.UserID = identity.UserID
	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Int64("userID", identity.UserID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// GetPost returns a single post by identifier. Reading is public.
func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("post search by id failed: %w", err)
	}
	return post, nil
}

// ListPosts returns every post, newest first.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.FindAllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}
	return posts, nil
}

// ListUserPosts returns the posts owned by userID, newest first.
func (p *postService) ListUserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	posts, err := p.postRepository.FindPostsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user posts failed: %w", err)
	}
	return posts, nil
}

// UpdatePost applies a partial update to an existing post after verifying
// that the caller owns it.
//
// Returns ErrNotPostOwner when the post belongs to someone else — even for
// admins; a wrapped store.ErrPostNotFound when the post does not exist.
func (p *postService) UpdatePost(ctx context.Context, identity models.Identity, postID int64, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.checkOwnership(ctx, identity, postID); err != nil {
		return models.Post{}, err
	}

	updated, err := p.postRepository.UpdatePost(ctx, postID, update)
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	return updated, nil
}

// DeletePost removes an existing post after verifying that the caller owns it.
func (p *postService) DeletePost(ctx context.Context, identity models.Identity, postID int64) error {
	log := logger.FromContext(ctx)

	if err := p.checkOwnership(ctx, identity, postID); err != nil {
		return err
	}

	if err := p.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Int64("postID", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}

// checkOwnership loads the post and compares its owner with the caller.
// The existence check runs first, so a missing post is reported as not found
// rather than as a permission problem.
func (p *postService) checkOwnership(ctx context.Context, identity models.Identity, postID int64) error {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("post search by id failed: %w", err)
	}

	if post.UserID != identity.UserID {
		log.Error().
			Int64("postID", postID).
			Int64("ownerID", post.UserID).
			Int64("callerID", identity.UserID).
			Msg("post belongs to another user")
		return ErrNotPostOwner
	}

	return nil
}

// ListAllPosts is the moderation view of every post. Identical to ListPosts
// today; kept separate so the admin surface can diverge without touching the
// public one.
func (p *postService) ListAllPosts(ctx context.Context) ([]models.Post, error) {
	return p.ListPosts(ctx)
}

// DeletePostByAdmin removes any post without an ownership check. Reachable
// only behind the admin role middleware.
func (p *postService) DeletePostByAdmin(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	if err := p.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Int64("postID", postID).Msg("admin post deletion ended with error")
		return fmt.Errorf("admin post deletion ended with error: %w", err)
	}

	return nil
}
