package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/mock"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPostSvc(t *testing.T, ctrl *gomock.Controller) (*postService, *mock.MockPostRepository) {
	t.Helper()
	mockPosts := mock.NewMockPostRepository(ctrl)
	svc := NewPostService(mockPosts, logger.Nop()).(*postService)
	return svc, mockPosts
}

func TestPostService_CreatePost_OwnerFromIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPosts := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	identity := models.Identity{UserID: 7, Role: models.RoleUser}

	mockPosts.EXPECT().
		CreatePost(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, post models.Post) (models.Post, error) {
			// owner comes from the session, not from the request body
			assert.Equal(t, int64(7), post.UserID)
			post.PostID = 1
			return post, nil
		})

	created, err := svc.CreatePost(ctx, identity, models.Post{UserID: 999, Title: "Title", Content: "Body"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.PostID)
	assert.Equal(t, int64(7), created.UserID)
}

func TestPostService_CreatePost_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestPostSvc(t, ctrl)
	identity := models.Identity{UserID: 7}

	_, err := svc.CreatePost(context.Background(), identity, models.Post{Content: "no title"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreatePost(context.Background(), identity, models.Post{Title: "no content"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPostService_UpdatePost_OwnerAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPosts := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	identity := models.Identity{UserID: 7, Role: models.RoleUser}
	title := "Renamed"

	gomock.InOrder(
		mockPosts.EXPECT().
			FindPostByID(ctx, int64(1)).
			Return(models.Post{PostID: 1, UserID: 7}, nil),
		mockPosts.EXPECT().
			UpdatePost(ctx, int64(1), models.PostUpdate{Title: &title}).
			Return(models.Post{PostID: 1, UserID: 7, Title: title}, nil),
	)

	updated, err := svc.UpdatePost(ctx, identity, 1, models.PostUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
}

func TestPostService_UpdatePost_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPosts := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	title := "Renamed"
	mockPosts.EXPECT().
		FindPostByID(ctx, int64(1)).
		Return(models.Post{PostID: 1, UserID: 8}, nil)

	_, err := svc.UpdatePost(ctx, models.Identity{UserID: 7}, 1, models.PostUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrNotPostOwner)
}

func TestPostService_UpdatePost_AdminNotExempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPosts := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	title := "Renamed"
	mockPosts.EXPECT().
		FindPostByID(ctx, int64(1)).
		Return(models.Post{PostID: 1, UserID: 8}, nil)

	// even an admin cannot edit someone else's post through the owner path
	_, err := svc.UpdatePost(ctx, models.Identity{UserID: 7, Role: models.RoleAdmin}, 1, models.PostUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrNotPostOwner)
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPosts := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	title := "Renamed"
	mockPosts.EXPECT().
		FindPostByID(ctx, int64(404)).
		Return(models.Post{}, store.ErrPostNotFound)

	// a missing post is not found, not a permission failure
	_, err := svc.UpdatePost(ctx, models.Identity{UserID: 7}, 404, models.PostUpdate{Title: &title})
	assert.ErrorIs(t, err, store.ErrPostNotFound)
	assert.NotErrorIs(t, err, ErrNotPostOwner)
}

func TestPostService_DeletePost_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPosts := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	mockPosts.EXPECT().
		FindPostByID(ctx, int64(1)).
		Return(models.Post{PostID: 1, UserID: 8}, nil)

	err := svc.DeletePost(ctx, models.Identity{UserID: 7}, 1)
	assert.ErrorIs(t, err, ErrNotPostOwner)
}

func TestPostService_DeletePost_OwnerAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPosts := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockPosts.EXPECT().
			FindPostByID(ctx, int64(1)).
			Return(models.Post{PostID: 1, UserID: 7}, nil),
		mockPosts.EXPECT().
			DeletePost(ctx, int64(1)).
			Return(nil),
	)

	err := svc.DeletePost(ctx, models.Identity{UserID: 7}, 1)
	require.NoError(t, err)
}

func TestPostService_DeletePostByAdmin_SkipsOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPosts := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	// no FindPostByID expected: the admin path goes straight to deletion
	mockPosts.EXPECT().
		DeletePost(ctx, int64(1)).
		Return(nil)

	err := svc.DeletePostByAdmin(ctx, 1)
	require.NoError(t, err)
}

func TestPostService_ListPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPosts := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	mockPosts.EXPECT().
		FindAllPosts(ctx).
		Return([]models.Post{{PostID: 2}, {PostID: 1}}, nil)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostService_ListUserPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPosts := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	mockPosts.EXPECT().
		FindPostsByUser(ctx, int64(7)).
		Return([]models.Post{{PostID: 1, UserID: 7}}, nil)

	posts, err := svc.ListUserPosts(ctx, 7)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(7), posts[0].UserID)
}
