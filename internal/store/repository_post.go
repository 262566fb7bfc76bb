package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// Tags are stored as a jsonb column and (un)marshalled at the boundary.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPost reads a full posts row (see postColumns) into a models.Post.
func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	var rawTags []byte

	err := row.Scan(
		&post.PostID,
		&post.UserID,
		&post.Title,
		&post.Content,
		&post.Author,
		&rawTags,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return models.Post{}, err
	}

	if len(rawTags) > 0 {
		if err := json.Unmarshal(rawTags, &post.Tags); err != nil {
			return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return post, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

// CreatePost persists a new post owned by post.UserID and returns the
// fully populated record with server-assigned fields.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	tags, err := marshalTags(post.Tags)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPost(r.db.QueryRowContext(ctx, createPost, post.UserID, post.Title, post.Content, post.Author, tags))
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error creating post")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindPostByID retrieves the post with the given identifier.
//
// Returns [ErrPostNotFound] when no row matches.
func (r *postRepository) FindPostByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := scanPost(r.db.QueryRowContext(ctx, findPostByID, postID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error finding post by id")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// FindAllPosts returns every post, newest first.
func (r *postRepository) FindAllPosts(ctx context.Context) ([]models.Post, error) {
	return r.queryPosts(ctx, findAllPosts)
}

// FindPostsByUser returns the posts owned by userID, newest first.
func (r *postRepository) FindPostsByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	return r.queryPosts(ctx, findPostsByUser, userID)
}

func (r *postRepository) queryPosts(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.queryPosts").Msg("error querying posts")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.queryPosts").Msg("error scanning post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// UpdatePost applies a partial update built dynamically from the non-nil
// fields of update. The owning user is never changed. updated_at is always
// refreshed.
//
// Returns [ErrPostNotFound] when no row matches.
func (r *postRepository) UpdatePost(ctx context.Context, postID int64, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update(models.Post{}.TableName()).
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Author != nil {
		builder = builder.Set("author", *update.Author)
	}
	if update.Tags != nil {
		tags, err := marshalTags(*update.Tags)
		if err != nil {
			return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Set("tags", tags)
	}

	query, args, err := builder.
		Where(sq.Eq{"post_id": postID}).
		Suffix("RETURNING " + postColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building update query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error updating post")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// DeletePost removes the post with the given identifier.
//
// Returns [ErrPostNotFound] when no row was deleted.
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
