package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/okuznetsov/blogware/internal/common"
	"github.com/okuznetsov/blogware/internal/postservice"
)

// itemResponse is the wire shape of a post item: the kind discriminator plus
// the union of variant fields.
type itemResponse struct {
	ID          uuid.UUID `json:"id"`
	Order       int       `json:"order"`
	Kind        string    `json:"kind"`
	Text        string    `json:"text,omitempty"`
	Style       string    `json:"style,omitempty"`
	Alt         string    `json:"alt,omitempty"`
	Description string    `json:"description,omitempty"`
	FileName    string    `json:"file_name,omitempty"`
}

type postResponse struct {
	ID         uuid.UUID      `json:"id"`
	Header     string         `json:"header"`
	Subheader  string         `json:"subheader,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	IsModified bool           `json:"is_modified"`
	BlogID     uuid.UUID      `json:"blog_id"`
	BlogTag    string         `json:"blog_tag"`
	Items      []itemResponse `json:"items"`
}

func newPostResponse(post *postservice.Post) postResponse {
	items := make([]itemResponse, 0, len(post.Items))

	for _, item := range post.Items {
		switch item := item.(type) {
		case *postservice.TextItem:
			items = append(items, itemResponse{
				ID:    item.ID,
				Order: item.Order,
				Kind:  string(postservice.ItemKindText),
				Text:  item.Text,
				Style: string(item.Style),
			})
		case *postservice.ImageItem:
			items = append(items, itemResponse{
				ID:          item.ID,
				Order:       item.Order,
				Kind:        string(postservice.ItemKindImage),
				Alt:         item.Alt,
				Description: item.Description,
				FileName:    item.FileName,
			})
		}
	}

	return postResponse{
		ID:         post.ID,
		Header:     post.Header,
		Subheader:  post.Subheader,
		CreatedAt:  post.CreatedAt,
		IsModified: post.IsModified,
		BlogID:     post.BlogID,
		BlogTag:    post.BlogTag,
		Items:      items,
	}
}

func (app *application) createPostHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input postservice.CreatePostInput

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	claims := app.getClaimsContext(r)
	userID, err := claims.UserID()
	if err != nil {
		app.invalidAuthenticationTokenResponse(w, r)
		return
	}

	post, err := app.postService.Create(r.Context(), userID, blogID, input)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"post": newPostResponse(post)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updatePostHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input postservice.UpdatePostInput

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	claims := app.getClaimsContext(r)
	userID, err := claims.UserID()
	if err != nil {
		app.invalidAuthenticationTokenResponse(w, r)
		return
	}

	post, err := app.postService.Update(r.Context(), userID, postID, input)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.Is(err, postservice.ErrItemNotInPost):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"post": newPostResponse(post)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	claims := app.getClaimsContext(r)
	userID, err := claims.UserID()
	if err != nil {
		app.invalidAuthenticationTokenResponse(w, r)
		return
	}

	err = app.postService.Delete(r.Context(), userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) getPostHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	post, err := app.postService.GetByID(r.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"post": newPostResponse(post)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getPostsHandler(w http.ResponseWriter, r *http.Request) {
	p, err := app.readPagination(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	page, err := app.postService.GetPaged(r.Context(), p)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"posts": page.Posts, "pagination": page.Pagination}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogPostsHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	p, err := app.readPagination(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	page, err := app.postService.GetPagedByBlogID(r.Context(), blogID, p)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"posts": page.Posts, "pagination": page.Pagination}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
