package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/okuznetsov/blogware/internal/common"
	"github.com/okuznetsov/blogware/internal/mediaservice"
)

const maxImageBytes = 10 << 20

func (app *application) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)

	err := r.ParseMultipartForm(maxImageBytes)
	if err != nil {
		app.badRequestErrorResponse(w, r, errors.New("could not parse multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		app.badRequestErrorResponse(w, r, errors.New("missing file field"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	name, err := app.imageService.Upload(r.Context(), content, header.Filename, header.Header.Get("Content-Type"))
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

	err = app.writeJSON(w, http.StatusCreated, envelope{"file_name": name}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) downloadImageHandler(w http.ResponseWriter, r *http.Request) {
	name := app.readStringParam(r, "name")

	body, contentType, err := app.imageService.Download(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, mediaservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	defer body.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	_, err = io.Copy(w, body)
	if err != nil {
		app.logError(r, err)
	}
}
