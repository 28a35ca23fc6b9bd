package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jadwal/internal/config"
	"jadwal/internal/infrastructure/database"
	"jadwal/internal/infrastructure/memory"
	"jadwal/internal/infrastructure/mongostore"
	"jadwal/internal/ports/output"
)

type storage struct {
	schedules output.ScheduleRepository
	courses   output.CourseRepository
	rooms     output.RoomRepository
	users     output.UserRepository
	close     func()
}

// openStorage builds the repositories for cfg.StorageDriver.
func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*storage, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		q := database.New(pool)
		return &storage{
			schedules: database.NewScheduleRepository(q),
			courses:   database.NewCourseRepository(q),
			rooms:     database.NewRoomRepository(q),
			users:     database.NewUserRepository(q),
			close:     pool.Close,
		}, nil

	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDB, logger)
		if err != nil {
			return nil, err
		}
		return &storage{
			schedules: mongostore.NewScheduleRepository(db),
			courses:   mongostore.NewCourseRepository(db),
			rooms:     mongostore.NewRoomRepository(db),
			users:     mongostore.NewUserRepository(db),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Warn("⚠️ Déconnexion MongoDB", zap.Error(err))
				}
			},
		}, nil

	case config.DriverMemory:
		logger.Info("💾 Stockage en mémoire (données perdues à l'arrêt)")
		return &storage{
			schedules: memory.NewScheduleRepository(),
			courses:   memory.NewCourseRepository(),
			rooms:     memory.NewRoomRepository(),
			users:     memory.NewUserRepository(),
			close:     func() {},
		}, nil
	}
	return nil, fmt.Errorf("stockage inconnu: %q", cfg.StorageDriver)
}
