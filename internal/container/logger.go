package container

import (
	"github.com/samber/do"
	"go.uber.org/zap"
)

// LoggerPackage provides the zap logger selected by Options.LogFormat.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}
