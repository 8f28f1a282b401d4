package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"gorm.io/gorm"

	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/persistence"
	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/snapshotfile"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/common"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/routing/queries"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
	"github.com/andrescamacho/galaxy-routing-go/internal/infrastructure/config"
	"github.com/andrescamacho/galaxy-routing-go/internal/infrastructure/database"
)

// session bundles what a command needs to answer routing questions
type session struct {
	cfg     *config.Config
	planner domainRouting.RoutePlanner
	gameID  string
	ctx     context.Context
	closers []func() error
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
}

// withTimeout bounds one command by the configured request timeout
func withTimeout(s *session) (context.Context, context.CancelFunc) {
	return context.WithTimeout(s.ctx, s.cfg.Routing.RequestTimeout)
}

// loadConfig loads the system config, falling back to defaults on error
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		}
		return config.LoadConfigOrDefault("")
	}
	return cfg
}

// newLogger builds the CLI logger; verbose forces debug text output
func newLogger(cfg *config.Config) common.Logger {
	level, format := "warn", "text"
	if verbose {
		level = "debug"
	} else if cfg.Logging.Level == "error" {
		level = "error"
	}
	logger, err := common.NewStdLogger(os.Stderr, level, format)
	if err != nil {
		return common.LoggerFromContext(context.Background())
	}
	return logger
}

// openSession picks the snapshot source from flags and user defaults:
// --remote > --snapshot > --game (database) > user config defaults
func openSession() (*session, error) {
	cfg := loadConfig()
	s := &session{cfg: cfg, gameID: gameID}

	userCfg := &config.UserConfig{}
	if handler, err := config.NewUserConfigHandler(); err == nil {
		if loaded, err := handler.Load(); err == nil {
			userCfg = loaded
		}
	}
	if s.gameID == "" && snapshotPath == "" {
		s.gameID = userCfg.DefaultGameID
	}

	logger := newLogger(cfg)
	s.ctx = common.WithLogger(context.Background(), logger)

	if remote {
		client, err := routing.NewGRPCRoutingClient(cfg.Routing.Address, cfg.Routing.ConnectTimeout)
		if err != nil {
			return nil, err
		}
		s.planner = client
		s.closers = append(s.closers, client.Close)
		return s, nil
	}

	var repo galaxy.SnapshotRepository
	path := snapshotPath
	if path == "" && gameID == "" {
		path = userCfg.DefaultSnapshot
	}

	if path != "" {
		repo = snapshotfile.NewRepository(path, cfg.Galaxy.Constants())
	} else {
		if s.gameID == "" {
			return nil, fmt.Errorf("no snapshot source: use --snapshot, --game or --remote, or set a default with 'galaxy-router config set-game'")
		}
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() error { return database.Close(db) })
		repo = persistence.NewGormSnapshotRepository(db)
	}

	mode, err := domainRouting.ParseSearchMode(cfg.Routing.Mode)
	if err != nil {
		s.Close()
		return nil, err
	}

	m := common.NewMediator()
	if err := queries.RegisterHandlers(m, repo, mode, shared.RealClock{}); err != nil {
		s.Close()
		return nil, err
	}
	s.planner = routing.NewLocalRoutePlanner(m)
	return s, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// maskPassword hides the password of a connection URL for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}
