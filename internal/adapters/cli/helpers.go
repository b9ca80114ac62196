package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sporelab/fungal-evolution/internal/adapters/persistence"
	"github.com/sporelab/fungal-evolution/internal/application/common"
	appengine "github.com/sporelab/fungal-evolution/internal/application/engine"
	"github.com/sporelab/fungal-evolution/internal/domain/mission"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
	"github.com/sporelab/fungal-evolution/internal/infrastructure/config"
	"github.com/sporelab/fungal-evolution/internal/infrastructure/database"
)

// session is one CLI invocation's view of the game: config, database, and a
// live engine loaded from the save with offline progress already credited.
type session struct {
	cfg     *config.Config
	db      *gorm.DB
	repo    *persistence.GormSaveRepository
	journal *persistence.GormJournalRepository
	engine  *appengine.Engine
}

// withSession opens the save, runs fn against the engine, and writes the
// resulting state back. Every CLI command goes through here.
func withSession(fn func(s *session) error) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close(db)

	clock := shared.NewRealClock()
	repo := persistence.NewGormSaveRepository(db)
	journal := persistence.NewGormJournalRepository(db, clock)

	var logger common.GameLogger = journal
	if !cfg.Logging.Journal {
		logger = &common.ConsoleLogger{}
	}

	ctx := context.Background()
	state := appengine.LoadState(ctx, repo, clock, logger)
	eng := appengine.New(state, clock, nil, logger)

	// Resolve any missions that came due while the engine was offline, so
	// completed expeditions are claimable right away
	poller := appengine.NewMissionPoller(eng, mission.NewResolver(nil), clock, cfg.Daemon.MissionPollInterval)
	poller.ResolveDue(logger)

	s := &session{cfg: cfg, db: db, repo: repo, journal: journal, engine: eng}
	runErr := fn(s)

	if err := repo.Save(ctx, eng.CurrentState()); err != nil {
		if runErr == nil {
			return fmt.Errorf("failed to save game: %w", err)
		}
	}
	return runErr
}
