package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(""))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("ADMIN"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user/profile", authMiddleware.ThenFunc(app.userHandler.GetProfile))
	mux.Put("/user/profile", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))
	mux.Post("/user/log_out", authMiddleware.ThenFunc(app.userHandler.LogOut))

	// Categories
	mux.Get("/category", standardMiddleware.ThenFunc(app.categoryHandler.GetAllCategories))
	mux.Get("/category/:slug", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryBySlug))

	// Items
	mux.Post("/item", authMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Get("/item/top/rated", standardMiddleware.ThenFunc(app.itemHandler.GetTopRated))
	mux.Get("/item/mine", authMiddleware.ThenFunc(app.itemHandler.GetMyItems))
	mux.Get("/item/:id", standardMiddleware.ThenFunc(app.itemHandler.GetItemByID))
	mux.Add("PATCH", "/item/:id", authMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/item/:id", authMiddleware.ThenFunc(app.itemHandler.DeleteItem))
	mux.Get("/item", standardMiddleware.ThenFunc(app.itemHandler.GetItems))

	// Ratings
	mux.Post("/rating", authMiddleware.ThenFunc(app.ratingHandler.SubmitRating))
	mux.Get("/rating/:item_id", standardMiddleware.ThenFunc(app.ratingHandler.GetRatingsByItemID))

	// Uploads
	mux.Post("/upload", authMiddleware.ThenFunc(app.uploadHandler.UploadImage))

	// Admin
	mux.Get("/admin/stats", adminAuthMiddleware.ThenFunc(app.adminHandler.GetStats))
	mux.Get("/admin/users", adminAuthMiddleware.ThenFunc(app.adminHandler.GetUsers))
	mux.Del("/admin/users/:id", adminAuthMiddleware.ThenFunc(app.adminHandler.DeleteUser))
	mux.Add("PATCH", "/admin/users/:id", adminAuthMiddleware.ThenFunc(app.adminHandler.UpdateUserRole))
	mux.Del("/admin/items/:id", adminAuthMiddleware.ThenFunc(app.adminHandler.DeleteItem))

	return standardMiddleware.Then(mux)
}
