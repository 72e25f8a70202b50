package main

import (
	"errors"
	"net/http"

	"github.com/okuznetsov/blogware/internal/commentservice"
	"github.com/okuznetsov/blogware/internal/common"
)

func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input commentservice.CreateCommentInput

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

	comment, err := app.commentService.Create(r.Context(), userID, postID, input)
	if err != nil {
		switch {
		case errors.Is(err, commentservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"comment": comment}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input commentservice.UpdateCommentInput

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

	comment, err := app.commentService.Update(r.Context(), userID, commentID, input)
	if err != nil {
		switch {
		case errors.Is(err, commentservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comment": comment}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := app.readUUIDParam(r, "id")
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

	err = app.commentService.Delete(r.Context(), userID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, commentservice.ErrNotFound):
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

func (app *application) getPostCommentsHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	p, err := app.readPagination(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	page, err := app.commentService.GetPagedByPostID(r.Context(), postID, p)
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

	err = app.writeJSON(w, http.StatusOK, envelope{"comments": page.Comments, "pagination": page.Pagination}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
