package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jadwal/internal/adapters/discord"
	"jadwal/internal/adapters/httpapi"
	"jadwal/internal/application"
	"jadwal/internal/config"
	"jadwal/internal/infrastructure/auth"
	"jadwal/internal/infrastructure/export"
	"jadwal/internal/infrastructure/i18n"
	"jadwal/internal/infrastructure/logger"
	"jadwal/internal/infrastructure/memory"
	"jadwal/internal/infrastructure/notify"
	"jadwal/internal/jobs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation du logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if err := run(cfg, zl); err != nil {
		zl.Error("❌ Arrêt sur erreur", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer store.close()

	hasher := auth.NewBcryptHasher(0)
	if cfg.SeedDemo {
		if err := memory.Seed(ctx, store.courses, store.rooms, store.schedules, store.users, hasher, cfg.SeedPassword); err != nil {
			return err
		}
		zl.Info("🌱 Données de démonstration chargées")
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, zl)

	broadcaster := notify.NewBroadcaster(32, zl)
	notifiers := notify.Fanout{broadcaster}

	if cfg.NATSURL != "" {
		publisher, err := notify.ConnectNATS(ctx, cfg.NATSURL, zl)
		if err != nil {
			return err
		}
		defer publisher.Close()
		notifiers = append(notifiers, publisher)
	}

	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		bot, err = discord.NewBot(cfg.DiscordToken, cfg.DiscordGuildID, zl)
		if err != nil {
			return err
		}
		notifiers = append(notifiers, discord.NewChannelNotifier(bot.Session(), cfg.DiscordChannelID, translator, cfg.DefaultLocale))
	}

	schedules := application.NewScheduleService(
		store.schedules, store.courses, store.rooms,
		notifiers, translator, cfg.Calendar, zl,
	)
	pdf := export.NewPDFRenderer(cfg.Location)
	exports := application.NewExportService(schedules, application.Renderers{
		List:     pdf,
		Grid:     pdf,
		Sheet:    export.NewXLSXRenderer(),
		Calendar: export.NewICalRenderer(cfg.TermStart, cfg.TermWeeks, cfg.Location),
	}, cfg.ExportTitle)

	if bot != nil {
		if err := bot.Open(discord.NewHandler(schedules, translator, cfg.DefaultLocale, zl)); err != nil {
			return err
		}
		defer bot.Close() //nolint:errcheck
	}

	digest, err := jobs.NewScheduler(cfg.DigestCron, cfg.Location,
		jobs.NewDigest(schedules, notifiers, cfg.DefaultLocale, zl), zl)
	if err != nil {
		return err
	}
	digest.Start()
	defer digest.Stop()

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := httpapi.NewRouter(httpapi.Deps{
		Schedules:      schedules,
		Courses:        application.NewCourseService(store.courses),
		Rooms:          application.NewRoomService(store.rooms),
		Auth:           application.NewAuthService(store.users, hasher, auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)),
		Export:         exports,
		Localizer:      translator,
		Logger:         zl,
		AllowedOrigins: cfg.CORSOrigins,
		Changes:        broadcaster,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Streams end with the process.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	errCh := make(chan error, 1)
	go func() {
		zl.Info("🚀 Serveur HTTP démarré", zap.String("addr", cfg.HTTPAddr), zap.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("🛑 Arrêt demandé, fermeture du serveur")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
