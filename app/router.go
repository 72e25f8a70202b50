package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/okuznetsov/blogware/internal/accountservice"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/api/healthcheck", app.healthCheckHandler)

	// account service
	router.HandlerFunc(http.MethodPost, "/api/account/register", app.registerAccountHandler)
	router.HandlerFunc(http.MethodPost, "/api/account/login", app.loginHandler)
	router.HandlerFunc(http.MethodPost, "/api/account/refresh", app.refreshTokensHandler)
	router.HandlerFunc(http.MethodPost, "/api/account/revoke", app.requireAuth(app.revokeTokenHandler))
	router.HandlerFunc(http.MethodGet, "/api/account", app.requireAuth(app.getAccountHandler))
	router.HandlerFunc(http.MethodPut, "/api/account", app.requireAuth(app.updateAccountHandler))

	// blog service; tag lookup uses a query parameter because a path wildcard
	// would conflict with the /api/blogs/:id subtree
	router.HandlerFunc(http.MethodPost, "/api/blogs", app.requireAuth(app.createBlogHandler))
	router.HandlerFunc(http.MethodGet, "/api/blogs", app.getBlogByTagHandler)
	router.HandlerFunc(http.MethodPut, "/api/blogs/:id", app.requireRole(app.updateBlogHandler, accountservice.RoleAuthor))

	// post service
	router.HandlerFunc(http.MethodPost, "/api/blogs/:id/posts", app.requireRole(app.createPostHandler, accountservice.RoleAuthor))
	router.HandlerFunc(http.MethodGet, "/api/blogs/:id/posts", app.getBlogPostsHandler)
	router.HandlerFunc(http.MethodGet, "/api/posts", app.getPostsHandler)
	router.HandlerFunc(http.MethodGet, "/api/posts/:id", app.getPostHandler)
	router.HandlerFunc(http.MethodPut, "/api/posts/:id", app.requireRole(app.updatePostHandler, accountservice.RoleAuthor))
	router.HandlerFunc(http.MethodDelete, "/api/posts/:id", app.requireRole(app.deletePostHandler, accountservice.RoleAuthor))

	// comment service
	router.HandlerFunc(http.MethodPost, "/api/posts/:id/comments", app.requireAuth(app.createCommentHandler))
	router.HandlerFunc(http.MethodGet, "/api/posts/:id/comments", app.getPostCommentsHandler)
	router.HandlerFunc(http.MethodPut, "/api/comments/:id", app.requireAuth(app.updateCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/api/comments/:id", app.requireAuth(app.deleteCommentHandler))

	// media service
	router.HandlerFunc(http.MethodPost, "/api/images", app.requireAuth(app.uploadImageHandler))
	router.HandlerFunc(http.MethodGet, "/api/images/:name", app.downloadImageHandler)

	return app.recoverPanic(app.enableCORS(app.rateLimit(app.logRequest(app.authenticate(router)))))
}
