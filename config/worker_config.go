package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// generateWorkerID creates a unique worker ID using hostname and PID
func generateWorkerID() string {
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "triage"
	}
	return fmt.Sprintf("%s-%d", hostname, os.Getpid())
}

type Config struct {
	Port        string
	Environment string

	// Database (batch/audit persistence)
	DatabaseURL string
	RedisURL    string

	// Neo4j (vector memory)
	Neo4jURL      string
	Neo4jUsername string
	Neo4jPassword string

	// Trigger API (bearer-token auth, rate limiting)
	TriggerToken string
	TriggerRPS   int
	TriggerBurst int

	// OpenAI (primary LLM)
	OpenAIAPIKey   string
	LLMModel       string
	LLMMaxTokens   int
	LLMTemperature float64
	LLMTimeoutSec  int
	LLMMaxRetries  int

	// Secondary LLM fallback (optional; selection policy tries primary then
	// secondary then template, per spec.md §6)
	SecondaryLLMAPIKey string
	SecondaryLLMModel  string

	// OAuth - Google (Gmail mailbox)
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// OAuth - Microsoft (Outlook mailbox)
	MicrosoftClientID     string
	MicrosoftClientSecret string
	MicrosoftRedirectURL  string
	MicrosoftTenantID     string

	// Mailbox - the operator's own domain, used to classify SenderType=TEAM
	// (spec.md §9 open question: the ingestion capability must surface it)
	OwnDomain string

	// GmailTokenFile points at a JSON-encoded oauth2.Token obtained out of
	// band by a separate consent flow; triagectl and the trigger API read
	// it rather than performing their own OAuth dance.
	GmailTokenFile string

	// Worker (classification worker pool, go-pkgz/pool)
	WorkerID        string
	WorkerMin       int
	WorkerMax       int
	WorkerQueueSize int

	// Drafter pool (separate, bounded to the LLM capability's concurrency limit)
	DrafterMaxWorkers int

	// Batch
	BatchDeadlineSec int // per-batch cancellation deadline (spec.md §5)

	// Cache
	CacheDefaultTTLMin int
	CacheMaxEntries    int

	// Chat notifier
	ChatToken   string
	ChatChannel string

	// Task tracker
	TrackerToken      string
	TrackerDatabaseID string
	TrackerWebhookURL string

	// Guardrails
	AllowedDomains []string

	// Do-not-disturb window, local-time HH:MM, inclusive start / exclusive end
	DNDStart string
	DNDEnd   string

	// Scheduler (periodic triage runs via robfig/cron)
	SchedulerEnabled bool
	ScheduleCron     string

	// Feature flags
	VectorMemoryEnabled bool
}

func Load() (*Config, error) {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		Neo4jURL:      getEnv("NEO4J_URL", ""),
		Neo4jUsername: getEnv("NEO4J_USERNAME", "neo4j"),
		Neo4jPassword: getEnv("NEO4J_PASSWORD", ""),

		TriggerToken: getEnv("TRIGGER_TOKEN", ""),
		TriggerRPS:   getEnvInt("TRIGGER_RPS", 5),
		TriggerBurst: getEnvInt("TRIGGER_BURST", 10),

		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		LLMModel:       getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMMaxTokens:   getEnvInt("LLM_MAX_TOKENS", 2048),
		LLMTemperature: getEnvFloat("LLM_TEMPERATURE", 0.7),
		LLMTimeoutSec:  getEnvInt("LLM_TIMEOUT_SEC", 20),
		LLMMaxRetries:  getEnvInt("LLM_MAX_RETRIES", 2),

		SecondaryLLMAPIKey: getEnv("SECONDARY_LLM_API_KEY", ""),
		SecondaryLLMModel:  getEnv("SECONDARY_LLM_MODEL", "gpt-4o-mini"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),

		MicrosoftClientID:     getEnv("MICROSOFT_CLIENT_ID", ""),
		MicrosoftClientSecret: getEnv("MICROSOFT_CLIENT_SECRET", ""),
		MicrosoftRedirectURL:  getEnv("MICROSOFT_REDIRECT_URL", ""),
		MicrosoftTenantID:     getEnv("MICROSOFT_TENANT_ID", "common"),

		OwnDomain:      getEnv("OWN_DOMAIN", ""),
		GmailTokenFile: getEnv("GMAIL_TOKEN_FILE", ""),

		WorkerID:        getEnv("WORKER_ID", generateWorkerID()),
		WorkerMin:       getEnvInt("WORKER_MIN", 2),
		WorkerMax:       getEnvInt("WORKER_MAX", 16),
		WorkerQueueSize: getEnvInt("WORKER_QUEUE_SIZE", 500),

		DrafterMaxWorkers: getEnvInt("DRAFTER_MAX_WORKERS", 4),

		BatchDeadlineSec: getEnvInt("BATCH_DEADLINE_SEC", 120),

		CacheDefaultTTLMin: getEnvInt("CACHE_DEFAULT_TTL_MIN", 30),
		CacheMaxEntries:    getEnvInt("CACHE_MAX_ENTRIES", 10000),

		ChatToken:   getEnv("CHAT_TOKEN", ""),
		ChatChannel: getEnv("CHAT_CHANNEL", ""),

		TrackerToken:      getEnv("TRACKER_TOKEN", ""),
		TrackerDatabaseID: getEnv("TRACKER_DATABASE_ID", ""),
		TrackerWebhookURL: getEnv("TRACKER_WEBHOOK_URL", ""),

		AllowedDomains: getEnvSlice("ALLOWED_DOMAINS", nil),

		DNDStart: getEnv("DND_START", "22:00"),
		DNDEnd:   getEnv("DND_END", "07:00"),

		SchedulerEnabled: getEnvBool("SCHEDULER_ENABLED", false),
		ScheduleCron:     getEnv("SCHEDULE_CRON", "0 */2 * * *"),

		VectorMemoryEnabled: getEnvBool("VECTOR_MEMORY_ENABLED", false),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// BatchDeadline returns the per-batch cancellation deadline as a Duration.
func (c *Config) BatchDeadline() time.Duration {
	return time.Duration(c.BatchDeadlineSec) * time.Second
}

// LLMTimeout returns the per-call LLM timeout as a Duration.
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSec) * time.Second
}
