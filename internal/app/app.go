package app

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"library-app-go/internal/auth"
	"library-app-go/internal/config"
	"library-app-go/internal/db"
	catalogdomain "library-app-go/internal/domain/catalog"
	circulationdomain "library-app-go/internal/domain/circulation"
	memberdomain "library-app-go/internal/domain/member"
	userdomain "library-app-go/internal/domain/user"
	"library-app-go/internal/repository/gormrepo"
	"library-app-go/internal/seed"
	"library-app-go/internal/transport/httpserver"
	"library-app-go/internal/transport/httpserver/handler"
	"library-app-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	seeder     *seed.Seeder
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	return NewWithConfig(cfg, log)
}

func NewWithConfig(cfg config.Config, log logger.Logger) (*App, error) {
	log.Info("app: initializing database", "driver", cfg.DB.Driver)
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		_ = db.Close(dbConn)
		return nil, err
	}

	hasher := auth.NewBcrypt(cfg.Auth.BcryptCost)
	seeder := NewSeeder(dbConn, hasher, log)

	memberService := memberdomain.NewService(gormrepo.NewMembers(dbConn))
	catalogService := catalogdomain.NewService(gormrepo.NewCatalog(dbConn))
	circulationService := circulationdomain.NewService(gormrepo.NewCirculation(dbConn))
	userService := userdomain.NewService(gormrepo.NewUsers(dbConn), hasher)
	handlers := handler.New(memberService, catalogService, circulationService, userService, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, userService, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		seeder:     seeder,
		log:        log,
	}, nil
}

// NewSeeder wires the seeder to gorm-backed stores. Books keep their
// author links so the join table is written with them.
func NewSeeder(dbConn *gorm.DB, hasher seed.PasswordHasher, log logger.Logger) *seed.Seeder {
	return seed.New(seed.Stores{
		Members:       gormrepo.NewStore[memberdomain.LibraryMember](dbConn),
		Cards:         gormrepo.NewStore[memberdomain.MembershipCard](dbConn),
		Authors:       gormrepo.NewStore[catalogdomain.Author](dbConn),
		Books:         gormrepo.NewStore[catalogdomain.Book](dbConn, gormrepo.WithReferences("Authors")),
		BorrowRecords: gormrepo.NewStore[circulationdomain.BorrowRecord](dbConn),
		Users:         gormrepo.NewStore[userdomain.User](dbConn),
	}, hasher, log.With("component", "seed"))
}

// Seed runs the startup seeder once.
func (a *App) Seed(ctx context.Context) (bool, error) {
	return a.seeder.Run(ctx)
}

func (a *App) Config() config.Config {
	return a.cfg
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	return db.Close(a.db)
}
