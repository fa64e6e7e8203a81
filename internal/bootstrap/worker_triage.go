package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"

	"worker_server/adapter/out/chat"
	"worker_server/adapter/out/frequency"
	"worker_server/adapter/out/graph"
	"worker_server/adapter/out/llm"
	"worker_server/adapter/out/mailbox"
	"worker_server/adapter/out/persistence"
	"worker_server/adapter/out/realtime"
	"worker_server/adapter/out/tracker"
	"worker_server/adapter/out/vector"
	"worker_server/config"
	"worker_server/core/pipeline"
	"worker_server/core/port/out"
	"worker_server/infra/database"
	"worker_server/pkg/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// NewTriage wires the triage pipeline (C9) from config, following the
// same optional-dependency-degrades-gracefully pattern as NewAPI/NewWorker:
// a missing Redis/Neo4j/secondary-LLM credential disables that concern
// rather than failing startup, since only the mailbox and primary LLM are
// load-bearing for a triage run.
func NewTriage(cfg *config.Config) (*pipeline.Pipeline, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	mbox, err := newMailbox(cfg)
	if err != nil {
		return nil, cleanup, fmt.Errorf("mailbox: %w", err)
	}

	llmPort := llm.New(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.SecondaryLLMAPIKey, cfg.SecondaryLLMModel)

	realtimeAdapter := realtime.NewSSEAdapter(zlog)
	operatorID := cfg.ChatChannel
	if operatorID == "" {
		operatorID = "triage-operator"
	}
	chatPort := chat.New(realtimeAdapter, operatorID)

	trackerPort := tracker.New(cfg.TrackerWebhookURL, cfg.TrackerToken)

	var freqPort out.SenderFrequencyPort
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn("triage: redis connection failed, sender-frequency notes disabled: %v", err)
		} else {
			freqPort = frequency.New(redisClient)
			cleanups = append(cleanups, func() { redisClient.Close() })
		}
	}

	var vectorPort out.VectorMemoryPort
	if cfg.VectorMemoryEnabled && cfg.Neo4jURL != "" {
		driver, err := graph.NewDriver(cfg.Neo4jURL, cfg.Neo4jUsername, cfg.Neo4jPassword)
		if err != nil {
			logger.Warn("triage: neo4j connection failed, vector memory disabled: %v", err)
		} else {
			vectorAdapter := graph.NewVectorAdapter(driver, "neo4j")
			vectorPort = vector.New(vectorAdapter)
			cleanups = append(cleanups, func() { driver.Close(context.Background()) })
		}
	}

	var auditPort out.AuditPort
	if cfg.DatabaseURL != "" {
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Warn("triage: postgres connection failed, batch audit disabled: %v", err)
		} else {
			auditPort = persistence.NewBatchAuditAdapter(db)
			cleanups = append(cleanups, func() { db.Close() })
		}
	}

	tables := config.DefaultTables()
	p := pipeline.New(cfg, tables, out.SystemClock{}, mbox, llmPort, chatPort, trackerPort, freqPort, vectorPort, auditPort, zlog)

	return p, cleanup, nil
}

// newMailbox builds the Gmail mailbox capability from a token persisted
// out of band by a separate OAuth consent flow.
func newMailbox(cfg *config.Config) (out.MailboxPort, error) {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not configured")
	}
	if cfg.GmailTokenFile == "" {
		return nil, fmt.Errorf("GMAIL_TOKEN_FILE not configured")
	}

	raw, err := os.ReadFile(cfg.GmailTokenFile)
	if err != nil {
		return nil, fmt.Errorf("reading gmail token file: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("parsing gmail token file: %w", err)
	}

	return mailbox.NewGmailMailbox(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, &token, cfg.OwnDomain), nil
}
