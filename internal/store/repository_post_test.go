package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &postRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func postRows(posts ...models.Post) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"post_id", "user_id", "title", "content", "author", "tags", "created_at", "updated_at"})
	for _, p := range posts {
		tags, _ := marshalTags(p.Tags)
		rows.AddRow(p.PostID, p.UserID, p.Title, p.Content, p.Author, tags, p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	post := models.Post{
		UserID:  1,
		Title:   "First post",
		Content: "hello world",
		Author:  "John",
		Tags:    []string{"go", "blogging"},
	}

	saved := post
	saved.PostID = 10
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(post.UserID, post.Title, post.Content, post.Author, sqlmock.AnyArg()).
		WillReturnRows(postRows(saved))

	created, err := repo.CreatePost(context.Background(), post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PostID != 10 {
		t.Errorf("expected PostID=10, got %d", created.PostID)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "go" {
		t.Errorf("tags not round-tripped: %v", created.Tags)
	}
}

func TestCreatePost_NilTags(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	saved := models.Post{PostID: 11, UserID: 1, Title: "No tags"}

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(int64(1), "No tags", "", "", []byte(`[]`)).
		WillReturnRows(postRows(saved))

	created, err := repo.CreatePost(context.Background(), models.Post{UserID: 1, Title: "No tags"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created.Tags) != 0 {
		t.Errorf("expected empty tags, got %v", created.Tags)
	}
}

func TestFindPostByID_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindPostByID(context.Background(), 404)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestFindAllPosts_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WillReturnRows(postRows(
			models.Post{PostID: 2, UserID: 1, Title: "Newest", Tags: []string{"go"}},
			models.Post{PostID: 1, UserID: 2, Title: "Oldest"},
		))

	posts, err := repo.FindAllPosts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].PostID != 2 {
		t.Errorf("expected newest first, got %+v", posts[0])
	}
}

func TestFindPostsByUser_Empty(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WithArgs(int64(5)).
		WillReturnRows(postRows())

	posts, err := repo.FindPostsByUser(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}

func TestUpdatePost_PartialFields(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	title := "Renamed"
	updated := models.Post{PostID: 10, UserID: 1, Title: title, Content: "unchanged", UpdatedAt: time.Now()}

	mock.ExpectQuery("UPDATE posts SET").
		WillReturnRows(postRows(updated))

	got, err := repo.UpdatePost(context.Background(), 10, models.PostUpdate{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != title {
		t.Errorf("expected title %q, got %q", title, got.Title)
	}
	if got.Content != "unchanged" {
		t.Errorf("content must not change on a title-only update, got %q", got.Content)
	}
}

func TestUpdatePost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	title := "Renamed"
	mock.ExpectQuery("UPDATE posts SET").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdatePost(context.Background(), 404, models.PostUpdate{Title: &title})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestDeletePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeletePost(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePost(context.Background(), 404)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
