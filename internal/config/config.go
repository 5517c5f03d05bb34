package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Profile bundles an EAR threshold with a consecutive-frame count so the
// detection sensitivity can be switched with a single setting.
type Profile struct {
	EARThreshold float64
	ConsecFrames int
}

// Profiles are the named sensitivity presets. "default" matches the stock
// values; the others trade false positives against reaction time.
var Profiles = map[string]Profile{
	"default":   {EARThreshold: 0.22, ConsecFrames: 20},
	"sensitive": {EARThreshold: 0.25, ConsecFrames: 12},
	"relaxed":   {EARThreshold: 0.20, ConsecFrames: 30},
}

type Config struct {
	HTTPPort     string
	GRPCPort     string
	FaceMeshAddr string
	CORSOrigin   string
	Environment  string

	LogLevel string
	LogDir   string

	EARThreshold float64
	ConsecFrames int
	MARThreshold float64
	YawnFrames   int
	Profile      string

	BeepInterval time.Duration
	SMSCooldown  time.Duration

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	AlertRecipient   string
	AlertMessage     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// DSNForLog is the DSN without the password, safe for log output.
func (c *Config) DSNForLog() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=*** dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBSSLMode)
}

func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

// SMSEnabled reports whether outbound SMS is configured at all. The detector
// keeps working without it; alerts then stay local.
func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8081"),
		GRPCPort:     getEnv("GRPC_PORT", "50051"),
		FaceMeshAddr: getEnv("FACEMESH_ADDR", "localhost:9000"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:5000"),
		Environment:  getEnv("ENVIRONMENT", "production"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogDir:       getEnv("LOG_DIR", "logs"),

		EARThreshold: getEnvFloat("EAR_THRESHOLD", 0.22),
		ConsecFrames: getEnvInt("EAR_CONSEC_FRAMES", 20),
		MARThreshold: getEnvFloat("MAR_THRESHOLD", 0.6),
		YawnFrames:   getEnvInt("YAWN_CONSEC_FRAMES", 20),
		Profile:      getEnv("DETECTION_PROFILE", ""),

		BeepInterval: getEnvDuration("BEEP_INTERVAL_MS", 250*time.Millisecond),
		SMSCooldown:  getEnvDuration("SMS_COOLDOWN_MS", 60*time.Second),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		AlertRecipient:   getEnv("ALERT_RECIPIENT", ""),
		AlertMessage:     getEnv("ALERT_MESSAGE", "WAKEGUARD ALERT: Drowsiness detected! Please take a break and rest."),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "wakeguard"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// An explicit profile overrides the individual EAR settings.
	if cfg.Profile != "" {
		if p, ok := Profiles[cfg.Profile]; ok {
			cfg.EARThreshold = p.EARThreshold
			cfg.ConsecFrames = p.ConsecFrames
		} else {
			log.Printf("WARNING: unknown detection profile %q, keeping explicit thresholds", cfg.Profile)
		}
	}

	if cfg.DBPassword == "" {
		fmt.Println("WARNING: DB_PASSWORD is not set!")
	}
	if !cfg.SMSEnabled() {
		fmt.Println("WARNING: Twilio credentials not set, SMS alerts disabled")
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// getEnvDuration reads a millisecond count, matching how the detection
// settings were configured historically.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultVal
}
