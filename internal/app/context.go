package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/oggyb/matchbot/internal/cache"
	"github.com/oggyb/matchbot/internal/config"
	"github.com/oggyb/matchbot/internal/coordinator"
	"github.com/oggyb/matchbot/internal/ledger"
	"github.com/oggyb/matchbot/internal/registration"
	"github.com/oggyb/matchbot/internal/repository"
	"github.com/oggyb/matchbot/internal/session"
)

// AppContext holds shared dependencies (DB, Redis, Logger) and the services
// built on them.
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger

	Profiles     *repository.ProfileRepository
	Ledger       *ledger.Ledger
	Sessions     *session.Engine
	Coordinator  *coordinator.Coordinator
	Registration *registration.Service
}

// New creates a new AppContext and wires the services.
// rdb may be nil, which disables the counter cache.
func New(
	cfg *config.Config,
	db *gorm.DB,
	rdb *cache.RedisCache,
	logger *slog.Logger,
	transport coordinator.Transport,
) *AppContext {
	profiles := repository.NewProfileRepository(db)
	relations := repository.NewRelationshipRepository(db)
	l := ledger.New(repository.NewLedgerRepository(db), logger.With("subsystem", "ledger"))

	engine := session.New(
		coordinator.CandidateSource(profiles, relations),
		session.WithCooldown(cfg.Discovery.RefetchCooldown),
		session.WithLogger(logger.With("subsystem", "session")),
	)

	deps := coordinator.Deps{
		Profiles:   profiles,
		Relations:  relations,
		Messages:   repository.NewMessageRepository(db),
		Payments:   repository.NewPaymentRepository(db),
		Complaints: repository.NewComplaintRepository(db),
		Ledger:     l,
		Sessions:   engine,
		Transport:  transport,
		Logger:     logger.With("subsystem", "coordinator"),
	}
	if rdb != nil {
		deps.Counters = rdb
	}

	return &AppContext{
		Config:       cfg,
		DB:           db,
		RedisCache:   rdb,
		Logger:       logger,
		Profiles:     profiles,
		Ledger:       l,
		Sessions:     engine,
		Coordinator:  coordinator.New(deps, coordinator.SettingsFromConfig(cfg)),
		Registration: registration.New(profiles, l, engine, registration.RulesFromConfig(cfg), logger.With("subsystem", "registration")),
	}
}
