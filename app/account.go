package main

import (
	"errors"
	"net/http"

	"github.com/okuznetsov/blogware/internal/accountservice"
	"github.com/okuznetsov/blogware/internal/common"
	"github.com/okuznetsov/blogware/internal/tokenservice"
)

func (app *application) registerAccountHandler(w http.ResponseWriter, r *http.Request) {
	var input accountservice.RegisterUserInput

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.accountService.Register(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrDuplicateEmail):
			app.failedValidationErrorResponse(w, r, map[string]string{"email": "a user with this email address already exists"})
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var input loginRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	result, err := app.accountService.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// a failed login is a normal 200 result, not an error status
	err = app.writeJSON(w, http.StatusOK, envelope{"result": result}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) refreshTokensHandler(w http.ResponseWriter, r *http.Request) {
	var input tokenservice.TokenPair

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	tokens, err := app.tokenService.Refresh(r.Context(), input)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		case errors.Is(err, tokenservice.ErrNotFound):
			app.invalidAuthenticationTokenResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"tokens": tokens}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type revokeTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (app *application) revokeTokenHandler(w http.ResponseWriter, r *http.Request) {
	var input revokeTokenRequest

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

	err = app.tokenService.Revoke(r.Context(), userID, input.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, tokenservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "refresh token revoked"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getAccountHandler(w http.ResponseWriter, r *http.Request) {
	claims := app.getClaimsContext(r)
	userID, err := claims.UserID()
	if err != nil {
		app.invalidAuthenticationTokenResponse(w, r)
		return
	}

	user, err := app.accountService.GetDetails(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var input accountservice.UpdateUserInput

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

	user, err := app.accountService.UpdateDetails(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
