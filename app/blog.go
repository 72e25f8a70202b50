package main

import (
	"errors"
	"net/http"

	"github.com/okuznetsov/blogware/internal/blogservice"
	"github.com/okuznetsov/blogware/internal/common"
)

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.CreateBlogInput

	err := app.parseJSON(w, r, &input)
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

	blog, err := app.blogService.Create(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrAlreadyExists):
			app.conflictErrorResponse(w, r, "a blog with this tag already exists or the user already has a blog")
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input blogservice.UpdateBlogInput

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

	blog, err := app.blogService.Update(r.Context(), userID, blogID, input)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.Is(err, blogservice.ErrAlreadyExists):
			app.conflictErrorResponse(w, r, "a blog with this tag already exists")
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogByTagHandler(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		app.badRequestErrorResponse(w, r, errors.New("missing tag parameter"))
		return
	}

	blog, err := app.blogService.GetByTag(r.Context(), tag)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
