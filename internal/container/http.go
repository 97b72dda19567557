package container

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/samber/do"
	"github.com/serroba/link-shortener/internal/audit"
	"github.com/serroba/link-shortener/internal/handlers"
	"github.com/serroba/link-shortener/internal/health"
	"github.com/serroba/link-shortener/internal/messaging"
	"github.com/serroba/link-shortener/internal/middleware"
	"github.com/serroba/link-shortener/internal/shortener"
	"go.uber.org/zap"
)

// HTTPPackage provides the router and the huma API with every route registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		router := do.MustInvoke[*chi.Mux](i)

		service, err := do.Invoke[*shortener.Service](i)
		if err != nil {
			return nil, err
		}

		linkStore, err := do.Invoke[LinkStore](i)
		if err != nil {
			return nil, err
		}

		publish, err := do.Invoke[messaging.Publish[audit.LinkCreatedEvent]](i)
		if err != nil {
			return nil, err
		}

		var redisChecker health.Checker
		if opts.RedisEnabled() {
			client, err := do.Invoke[*RedisClient](i)
			if err != nil {
				return nil, err
			}

			redisChecker = health.NewRedisChecker(client.Client)
		}

		api := humachi.New(router, huma.DefaultConfig("URL Shortener", "1.0.0"))
		api.UseMiddleware(middleware.RequestMeta(api))

		handlers.RegisterRoutes(api, handlers.NewURLHandler(service, opts.PublicBaseURL(), publish, logger))
		health.RegisterRoutes(api, health.NewHandler(linkStore, redisChecker))

		return api, nil
	})
}
