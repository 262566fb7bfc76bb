package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/go-chi/chi/v5"
)

// idFromURL parses the {id} path parameter of the matched route.
func idFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathParameter
	}
	return id, nil
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeUnauthorized(w, ErrEmptyToken)
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	created, err := h.services.PostService.CreatePost(ctx, identity, post)
	if err != nil {
		log.Err(err).Msg("post creation failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusCreated, "post created", created)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := idFromURL(r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("post lookup failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "post found", post)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListPosts(ctx)
	if err != nil {
		log.Err(err).Msg("listing posts failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "posts listed", posts)
}

func (h *Handler) listUserPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeUnauthorized(w, ErrEmptyToken)
		return
	}

	posts, err := h.services.PostService.ListUserPosts(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Int64("id", identity.UserID).Msg("listing user posts failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "user posts listed", posts)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeUnauthorized(w, ErrEmptyToken)
		return
	}

	postID, err := idFromURL(r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	var update models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.PostService.UpdatePost(ctx, identity, postID, update)
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("post update failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "post updated", updated)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeUnauthorized(w, ErrEmptyToken)
		return
	}

	postID, err := idFromURL(r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	if err := h.services.PostService.DeletePost(ctx, identity, postID); err != nil {
		log.Err(err).Int64("postID", postID).Msg("post deletion failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "post deleted", nil)
}

func (h *Handler) listAllPostsAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListAllPosts(ctx)
	if err != nil {
		log.Err(err).Msg("admin post listing failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "posts listed", posts)
}

func (h *Handler) deletePostByAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := idFromURL(r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	if err := h.services.PostService.DeletePostByAdmin(ctx, postID); err != nil {
		log.Err(err).Int64("postID", postID).Msg("admin post deletion failed")
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, "post deleted", nil)
}
