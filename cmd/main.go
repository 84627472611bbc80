package main

import (
	"context"
	"flag"
	"github.com/asaskevich/EventBus"
	"github.com/projectnexus/jobboard/internal/api"
	"github.com/projectnexus/jobboard/internal/config"
	"github.com/projectnexus/jobboard/internal/logger"
	"github.com/projectnexus/jobboard/internal/mailer"
	"github.com/projectnexus/jobboard/internal/metrics"
	"github.com/projectnexus/jobboard/internal/repositories"
	"github.com/projectnexus/jobboard/internal/seed"
	"github.com/projectnexus/jobboard/internal/services"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func newSender(cfg config.MailConfig) mailer.Sender {
	if cfg.Enabled {
		return mailer.NewSMTPSender(cfg)
	}
	return &mailer.LogSender{}
}

func main() {

	seedFlag := flag.Bool("seed", false, "load sample data and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	if *seedFlag {
		if err = seed.Run(dbContext.DB); err != nil {
			log.Fatalf("can't seed database: %v", err)
		}
		return
	}

	if err = os.MkdirAll(cfg.Uploads.Dir, 0755); err != nil {
		log.Fatalf("can't create uploads directory: %v", err)
	}

	users := repositories.NewUsersRepository(dbContext.DB)
	adverts := repositories.NewAdvertsRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	taxonomy := repositories.NewCachedTaxonomy(repositories.NewTaxonomyRepository(dbContext.DB))

	bus := EventBus.New()
	notifier, err := services.NewNotifier(bus, newSender(cfg.Mail), applications, users)
	if err != nil {
		log.Fatalf("can't create notifier: %v", err)
	}
	defer notifier.Stop()

	consistency := services.NewConsistencyEngine(applications, adverts)

	expirer, err := services.NewAdvertsExpirer(consistency, cfg.Server.SweepSchedule)
	if err != nil {
		log.Fatalf("can't create adverts expirer: %v", err)
	}
	defer expirer.Stop()

	server := api.NewServer(*cfg, api.Deps{
		Auth:         services.NewAuthService(users, notifier, cfg.Auth),
		Adverts:      services.NewAdvertsService(adverts, repositories.NewTaxonomyRepository(dbContext.DB)),
		Applications: services.NewApplicationsService(applications, adverts, consistency, notifier),
		Taxonomy:     taxonomy,
		Metrics:      metrics.Handler(),
	})

	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Infof("server listening on port %d", cfg.Server.Port)

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
