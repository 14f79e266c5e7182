package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// customer session token lifetime (table + name claims)
	SessionTTL time.Duration

	AdminUsername string
	AdminPassword string

	MidtransServerKey  string
	MidtransProduction bool

	UploadDir string

	// how often the expiry sweeper cancels unpaid orders; 0 disables it
	PaymentSweepInterval time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:             getEnv("DB_SOURCE", "esbar.db"),
		Port:                 getEnv("PORT", "8000"),
		JWTSecret:            getEnv("JWT_SECRET", "changeme"),
		JWTTTL:               24 * time.Hour,
		SessionTTL:           12 * time.Hour,
		AdminUsername:        getEnv("ADMIN_USERNAME", ""),
		AdminPassword:        getEnv("ADMIN_PASSWORD", ""),
		MidtransServerKey:    os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransProduction:   getEnvBool("MIDTRANS_PRODUCTION", false),
		UploadDir:            getEnv("UPLOAD_DIR", "uploads"),
		PaymentSweepInterval: getEnvDuration("PAYMENT_SWEEP_INTERVAL", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("invalid bool for %s: %q", key, v)
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, v)
	}
	return d
}
