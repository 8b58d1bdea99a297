// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/matt-dz/cookbook/docs"
	"github.com/matt-dz/cookbook/internal/api/middleware"
	"github.com/matt-dz/cookbook/internal/api/routes/cart"
	"github.com/matt-dz/cookbook/internal/api/routes/categories"
	"github.com/matt-dz/cookbook/internal/api/routes/chat"
	"github.com/matt-dz/cookbook/internal/api/routes/mealplans"
	"github.com/matt-dz/cookbook/internal/api/routes/ping"
	"github.com/matt-dz/cookbook/internal/api/routes/recipes"
	"github.com/matt-dz/cookbook/internal/api/routes/users"
	"github.com/matt-dz/cookbook/internal/env"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func addDocs(r *chi.Mux) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL("/api/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Handle preflight
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Allow GET to serve Swagger
		if req.Method == http.MethodGet {
			swagger.ServeHTTP(w, req)
			return
		}

		// Block anything else
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
}

func addRoutes(router *chi.Mux) {
	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.LoadSession)

		r.Get("/ping", ping.HandlePing)
		r.Get("/categories", categories.ListCategories)
		r.Post("/chat", chat.Ask)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.ListRecipes)
			r.Get("/recommendations", recipes.Recommend)
			r.Get("/{id}", recipes.GetRecipe)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSession)
				r.Post("/", recipes.CreateRecipe)
				r.Put("/{id}", recipes.UpdateRecipe)
				r.Delete("/{id}", recipes.DeleteRecipe)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/login", users.HandleLogin)
			r.Post("/register", users.HandleRegister)
			r.Post("/logout", users.HandleLogout)
			r.Post("/check-email", users.HandleCheckEmail)
			r.Get("/verify-email", users.HandleVerifyEmail)
			r.Post("/resend-verification", users.HandleResendVerification)
			r.With(middleware.RequireSession).Get("/me", users.HandleMe)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireSession)
			r.Get("/", cart.GetCart)
			r.Delete("/", cart.Clear)
			r.Post("/items", cart.AddItem)
			r.Patch("/items/{id}", cart.UpdateItem)
			r.Delete("/items/{id}", cart.RemoveItem)
		})

		r.Route("/meal-plans", func(r chi.Router) {
			r.Use(middleware.RequireSession)
			r.Get("/", mealplans.ListMealPlans)
			r.Post("/", mealplans.CreateMealPlan)
			r.Get("/{id}", mealplans.GetMealPlan)
			r.Put("/{id}", mealplans.UpdateMealPlan)
			r.Delete("/{id}", mealplans.DeleteMealPlan)
			r.Post("/{id}/items", mealplans.AddItem)
			r.Delete("/{id}/items/{itemId}", mealplans.RemoveItem)
		})
	})
}

// NewRouter builds the handler tree for env.
func NewRouter(env *env.Env) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.AddCors)

	addRoutes(router)
	addDocs(router)
	return router
}

// Start godoc
//
//	@title						Cookbook API
//	@version					1.0
//	@description				Recipe browsing, cart and meal planning in front of the recipe backend.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//
//	@host						localhost:8080
//	@BasePath					/api
func Start(ctx context.Context, env *env.Env) error {
	addr := env.Config.Server.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(env),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		tls := env.Config.Server.TLS
		env.Logger.Info(fmt.Sprintf("Listening at %s", addr), "tls", tls.Enabled())
		env.Logger.Info(fmt.Sprintf("Swagger UI available at http://%s/api/swagger/index.html", addr))
		if tls.Enabled() {
			errCh <- srv.ListenAndServeTLS(tls.CertFile, tls.KeyFile)
			return
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	env.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
