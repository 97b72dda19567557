package container

import (
	"fmt"
	"strings"
)

// Options holds the service configuration. Every field is settable by flag or
// by SERVICE_<NAME> environment variable through humacli.
type Options struct {
	Port            int    `default:"8080"    help:"Port to listen on"                                       short:"p"`
	BaseURL         string `default:""        help:"Public prefix for short URLs (default http://127.0.0.1:<port>)"`
	Storage         string `default:"sqlite"  help:"Link storage backend: sqlite, postgres, redis or memory"  short:"s"`
	DatabasePath    string `default:""        help:"SQLite file path (default urls.db next to the executable)"`
	DatabaseURL     string `default:""        help:"PostgreSQL connection string"`
	RedisAddr       string `default:""        help:"Redis server address, empty disables Redis features"     short:"r"`
	CacheTTL        int    `default:"3600"    help:"Seconds a resolved link stays in the Redis cache, 0 disables"`
	ShortIDLength   int    `default:"8"       help:"Length of generated short ids"                           short:"c"`
	ShortIDAttempts int    `default:"3"       help:"Attempts at a fresh short id before giving up"`
	LogFormat       string `default:"console" help:"Log format: console or json"`
	ConsumerGroup   string `default:"audit"   help:"Redis stream consumer group of the audit consumer"`
}

// PublicBaseURL returns the prefix short ids are appended to.
func (o *Options) PublicBaseURL() string {
	if o.BaseURL != "" {
		return strings.TrimRight(o.BaseURL, "/")
	}

	return fmt.Sprintf("http://127.0.0.1:%d", o.Port)
}

// RedisEnabled reports whether a Redis address was configured.
func (o *Options) RedisEnabled() bool {
	return o.RedisAddr != ""
}
