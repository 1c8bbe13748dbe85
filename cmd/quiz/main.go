package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/config"
	"github.com/aliskhannn/quiz-runner/internal/delivery/console"
	"github.com/aliskhannn/quiz-runner/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/quiz-runner/internal/infra/postgres/repository"
	"github.com/aliskhannn/quiz-runner/internal/infra/sqlite"
	sqliterepo "github.com/aliskhannn/quiz-runner/internal/infra/sqlite/repository"
	"github.com/aliskhannn/quiz-runner/internal/logger"
	"github.com/aliskhannn/quiz-runner/internal/repository"
	"github.com/aliskhannn/quiz-runner/internal/service"
	"github.com/aliskhannn/quiz-runner/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	appLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, console.ErrInputClosed) {
			appLogger.Info("quiz aborted", zap.Error(err))
		} else {
			appLogger.Error("quiz failed", zap.Error(err))
		}
		stop()
		_ = appLogger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// Initialize repositories. The question source is read after the name prompt.
	questionRepo := repository.NewQuestionRepository(cfg.Quiz.QuestionsPath)

	scoreRepo, closeScores, err := newScoreRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeScores()

	// Initialize services.
	questionService := service.NewQuestionService(questionRepo, logger)
	quizService := service.NewQuizService(service.NewAnswerValidator(), logger)
	scoreService := service.NewScoreService(scoreRepo, logger)

	handler := console.NewHandler(
		os.Stdin,
		os.Stdout,
		logger,
		questionService,
		quizService,
		scoreService,
		console.Options{
			NameMaxLength: cfg.Quiz.NameMaxLength,
			Styled:        console.IsTerminal(os.Stdout),
		},
	)

	return handler.Run(ctx)
}

// newScoreRepository builds the score backend selected by scores.driver.
func newScoreRepository(ctx context.Context, cfg *config.Config) (service.ScoreRepository, func(), error) {
	switch cfg.Scores.Driver {
	case config.DriverFile:
		return repository.NewScoreFileRepository(cfg.Scores.Path, cfg.Scores.ColumnWidth), func() {}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Scores.SQLiteDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return sqliterepo.NewScoreRepository(db), func() { _ = db.Close() }, nil

	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pgrepo.NewScoreRepository(postgres.NewTransactor(pool)), pool.Close, nil

	case config.DriverMemory:
		return storage.NewScoreStorage(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownScoresDriver, cfg.Scores.Driver)
	}
}
