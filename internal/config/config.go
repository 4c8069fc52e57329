package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr        string
	FrontendURL string

	MongoURI      string
	MongoDatabase string
	MongoTimeout  time.Duration

	TestimonialCollection string
	ContactCollection     string
	ServiceCollection     string
	PortfolioCollection   string
	BookingCollection     string
	UserCollection        string

	JWTSecret   []byte
	JWTIssuer   string
	JWTAudience string

	// AdminEmails is the allow-list fallback for identity providers that do
	// not issue role claims.
	AdminEmails []string

	UploadDir       string
	UploadURLPrefix string
}

// Load reads environment variables (after loading .env if present) and
// returns a fully populated Config.
func Load() Config {
	_ = godotenv.Load()

	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	return Config{
		Addr:        envOrDefault("HTTP_ADDR", ":5001"),
		FrontendURL: envOrDefault("FRONTEND_URL", "http://localhost:5173"),

		MongoURI:      envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: envOrDefault("MONGO_DB", "detailers-edge"),
		MongoTimeout:  timeout,

		TestimonialCollection: envOrDefault("TESTIMONIAL_COLLECTION", "testimonials"),
		ContactCollection:     envOrDefault("CONTACT_COLLECTION", "contact_submissions"),
		ServiceCollection:     envOrDefault("SERVICE_COLLECTION", "services"),
		PortfolioCollection:   envOrDefault("PORTFOLIO_COLLECTION", "portfolio_images"),
		BookingCollection:     envOrDefault("BOOKING_COLLECTION", "bookings"),
		UserCollection:        envOrDefault("USER_COLLECTION", "users"),

		JWTSecret:   []byte(strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))),
		JWTIssuer:   strings.TrimSpace(os.Getenv("AUTH_JWT_ISSUER")),
		JWTAudience: strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),

		AdminEmails: parseList("ADMIN_EMAILS", nil),

		UploadDir:       envOrDefault("UPLOAD_DIR", "./uploads"),
		UploadURLPrefix: envOrDefault("UPLOAD_URL_PREFIX", "/uploads"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
