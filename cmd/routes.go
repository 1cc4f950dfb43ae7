package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)

	mux := pat.New()

	// Search
	mux.Get("/search", standardMiddleware.ThenFunc(app.searchHandler.Search))

	// Listings (public read surface)
	mux.Get("/listing/:slug", standardMiddleware.ThenFunc(app.listingHandler.GetBySlug))

	// City
	mux.Get("/city", standardMiddleware.ThenFunc(app.listingHandler.GetCities))

	return mux
}
