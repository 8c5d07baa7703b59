package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"

	"github.com/primary-workspace/asha-ai-techx/internal/assistant"
	"github.com/primary-workspace/asha-ai-techx/internal/chatlog"
	"github.com/primary-workspace/asha-ai-techx/internal/config"
	"github.com/primary-workspace/asha-ai-techx/internal/extract"
	"github.com/primary-workspace/asha-ai-techx/internal/llm"
	"github.com/primary-workspace/asha-ai-techx/internal/server"
	"github.com/primary-workspace/asha-ai-techx/internal/stt"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asha-server",
		Short: "Maternal health AI assistant API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := newLogger(cfg)

			client, err := llm.New(cfg)
			if err != nil {
				return fmt.Errorf("init llm client: %w", err)
			}

			// Transcription handle is lazily initialized; the first upload
			// pays for construction, all later callers share it.
			transcriber := stt.NewCached(func() (stt.Transcriber, error) {
				logger.Info().Str("url", cfg.WhisperURL).Msg("initializing transcription client")
				return stt.NewWhisperClient(cfg.WhisperURL, time.Duration(cfg.WhisperTimeoutSecs)*time.Second), nil
			})

			chat := assistant.NewChatService(client, logger)
			extractor := extract.NewService(client, transcriber, logger)

			var logs *chatlog.Service
			if cfg.DatabaseURL != "" {
				db, err := openDB(cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := chatlog.Migrate(context.Background(), db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				logs = chatlog.NewService(chatlog.NewPGRepository(db))
			} else {
				logger.Warn().Msg("DATABASE_URL not set, chat logging endpoints disabled")
			}

			srv := &server.Server{
				Chat:          chat,
				Extractor:     extractor,
				Transcriber:   transcriber,
				LLM:           client,
				Logs:          logs,
				MaxAudioBytes: cfg.MaxAudioBytes,
				Log:           logger,
			}
			e := srv.NewEcho()

			go func() {
				addr := ":" + cfg.Port
				logger.Info().Str("addr", addr).Msg("listening")
				if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server error")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			logger.Info().Msg("shutting down")
			return e.Shutdown(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the chat log schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL must be set")
			}
			db, err := openDB(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()
			return chatlog.Migrate(context.Background(), db)
		},
	}
}

func openDB(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
