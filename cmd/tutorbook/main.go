package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"tutorbook/internal/app"
	"tutorbook/internal/config"
	"tutorbook/internal/ident"
	"tutorbook/internal/model"
	"tutorbook/internal/repository"
	"tutorbook/internal/service"
	"tutorbook/internal/session"
	"tutorbook/internal/storage"
)

const migrationsPath = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer closeStore()

	ids := ident.NewGenerator(nil)
	users := repository.NewUserRepository(store)
	teachers := repository.NewTeacherRepository(store)
	appointments := repository.NewAppointmentRepository(store)
	audit := repository.NewAuditRepository(store)

	sessions := session.NewManager(store, users, teachers, ids, logger)
	booking := service.NewBookingService(sessions, teachers, appointments, audit, ids, logger)
	dashboard := service.NewDashboardService(users, teachers, appointments)

	allUsers, err := users.GetAll(ctx)
	if err != nil {
		logger.Fatal("Failed to read user collection", zap.Error(err))
	}
	allTeachers, err := booking.ListTeachers(ctx, "")
	if err != nil {
		logger.Fatal("Failed to read teacher collection", zap.Error(err))
	}
	allAppointments, err := appointments.GetAll(ctx)
	if err != nil {
		logger.Fatal("Failed to read appointment collection", zap.Error(err))
	}

	logger.Sugar().Infow("Scheduler store ready",
		"environment", cfg.Environment,
		"driver", cfg.StoreDriver,
		"users", len(allUsers),
		"teachers", len(allTeachers),
		"appointments", len(allAppointments),
	)

	// Same contract as the page entry: no session means the login screen,
	// otherwise the role decides which dashboard the renderer shows.
	current, err := sessions.Current(ctx)
	if err != nil {
		logger.Fatal("Failed to read session", zap.Error(err))
	}
	switch {
	case current == nil:
		logger.Info("No active session, renderer starts at login")
	case current.Role == model.RoleStudent:
		views, err := dashboard.StudentAppointments(ctx, current.ID)
		if err != nil {
			logger.Fatal("Failed to build student dashboard", zap.Error(err))
		}
		logger.Info("Active student session",
			zap.String("username", current.Username),
			zap.Int("appointments", len(views)),
		)
	default:
		pending, err := dashboard.PendingRequests(ctx, current.ID)
		if err != nil {
			logger.Fatal("Failed to build teacher dashboard", zap.Error(err))
		}
		logger.Info("Active teacher session",
			zap.String("username", current.Username),
			zap.Int("pending_requests", len(pending)),
		)
	}
}

// openStore builds the configured store and runs migrations for the SQL
// drivers. The returned func releases whatever the driver holds open.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return storage.NewMemoryStore(), func() {}, nil

	case config.DriverSQLite:
		store, err := storage.OpenSQLite(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}

		migrator, err := app.NewMigrator(store.DB(), "sqlite3", migrationsPath)
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		if err := migrator.Run(ctx); err != nil {
			store.Close()
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil

	case config.DriverPostgres:
		store, err := storage.OpenPostgres(ctx, cfg.StoreDSN)
		if err != nil {
			return nil, nil, err
		}

		db := store.SQLDB()
		migrator, err := app.NewMigrator(db, "postgres", migrationsPath)
		if err != nil {
			db.Close()
			store.Close()
			return nil, nil, err
		}
		if err := migrator.Run(ctx); err != nil {
			db.Close()
			store.Close()
			return nil, nil, err
		}
		db.Close()
		return store, func() { store.Close() }, nil
	}

	// config.Load validates the driver, so this is unreachable.
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
