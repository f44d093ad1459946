package main

import (
	"URL_Ping_Monitor/internal/ping-monitor/api/handler"
	"URL_Ping_Monitor/internal/ping-monitor/api/routes"
	"URL_Ping_Monitor/internal/ping-monitor/config"
	"URL_Ping_Monitor/internal/ping-monitor/control"
	"URL_Ping_Monitor/internal/ping-monitor/notifier"
	"URL_Ping_Monitor/internal/ping-monitor/prober"
	"URL_Ping_Monitor/internal/ping-monitor/publisher"
	"URL_Ping_Monitor/internal/ping-monitor/reconciler"
	"URL_Ping_Monitor/internal/ping-monitor/repository"
	"URL_Ping_Monitor/internal/ping-monitor/scheduler"
	"URL_Ping_Monitor/internal/ping-monitor/service"
	"URL_Ping_Monitor/internal/ping-monitor/store"
	"URL_Ping_Monitor/pkg/infra"
	"URL_Ping_Monitor/pkg/logger"
	"URL_Ping_Monitor/pkg/mail"
	"URL_Ping_Monitor/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(logger.Config{
		Level:    appConfig.Server.LogLevel,
		Encoding: appConfig.Server.LogEncoding,
	}, fileSyncer).With(zap.String("service.name", "ping-monitor"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// set up redis
	var redisClient *redis.Client
	if appConfig.Redis.Enabled {
		redisClient, err = infra.NewRedisConnection(infra.RedisConfig{
			Addr:     appConfig.Redis.Addr,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		})
		if err != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(err))
		} else {
			zapLogger.Info("connected to redis successfully")
		}
		defer redisClient.Close()
	}

	// set up persistent store
	backend, err := openBackend(ctx, appConfig, redisClient)
	if err != nil {
		zapLogger.Fatal("failed to open store", zap.String("driver", appConfig.Store.Driver), zap.Error(err))
	}
	var bus store.EventBus
	if redisClient != nil {
		bus = store.NewRedisEventBus(redisClient, appConfig.Redis.EventsChannel, zapLogger)
	}
	st := store.NewStore(backend, bus, zapLogger)
	defer st.Close()
	if bus != nil {
		go listenForChanges(ctx, st, zapLogger)
	}

	// set up publisher sinks
	hub := publisher.NewHub(0)
	sinks := []publisher.Sink{hub}
	if redisClient != nil {
		sinks = append(sinks, publisher.NewRedisSink(redisClient, appConfig.Redis.StatusChannel))
	}
	if appConfig.Kafka.Enabled {
		statusWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.StatusTopic)
		defer statusWriter.Close()
		sinks = append(sinks, publisher.NewKafkaSink(statusWriter))
	}
	pub := publisher.NewPublisher(zapLogger, sinks...)

	// set up notifier
	var mailSender mail.Sender
	var platform notifier.Platform
	if appConfig.Mail.Enabled {
		mailSender = mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
		platform = notifier.NewMailPlatform(mailSender, appConfig.Mail.AlertRecipients)
	} else {
		platform = notifier.NewLogPlatform(zapLogger)
	}

	// set up dependencies
	endpointRepo := repository.NewEndpointRepository(st)
	settingsRepo := repository.NewSettingsRepository(st, appConfig.Monitor.DefaultPingInterval)
	n := notifier.NewNotifier(platform, settingsRepo, pub, zapLogger)
	r := reconciler.NewReconciler(endpointRepo, pub, n, zapLogger)
	p := prober.NewHTTPProber(appConfig.Monitor.ProbeTimeout, zapLogger)
	sched := scheduler.NewScheduler(scheduler.Config{
		DefaultInterval:   time.Duration(appConfig.Monitor.DefaultPingInterval) * time.Second,
		InitialCheckDelay: appConfig.Monitor.InitialCheckDelay,
	}, endpointRepo, settingsRepo, p, r, zapLogger)
	st.Subscribe(hub.OnStorageChange)
	st.Subscribe(sched.OnStorageChange)

	if err = sched.Start(ctx); err != nil {
		zapLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	dispatcher := control.NewDispatcher(sched, zapLogger)
	if appConfig.Kafka.Enabled {
		reader := infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.ConsumerGroupID, appConfig.Kafka.ControlTopic)
		consumer := control.NewConsumer(dispatcher, zapLogger, reader)
		consumer.Start()
		defer consumer.Stop()
		zapLogger.Info("kafka control consumer started", zap.String("topic", appConfig.Kafka.ControlTopic))
	}

	endpointService := service.NewEndpointService(endpointRepo, dispatcher, mailSender, zapLogger)
	settingsService := service.NewSettingsService(settingsRepo, dispatcher, appConfig.Monitor.MinPingInterval, zapLogger)

	// Create cronjob for daily report
	if mailSender != nil {
		cronJob := cron.New()
		_, err = cronJob.AddFunc("0 0 * * *", func() {
			ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
			zapLogger.Info("cronjob called")
			e := endpointService.SendSummaryReport(ctx2, appConfig.Mail.AlertRecipients)
			cancel2()
			if e != nil {
				zapLogger.Error("failed to send daily report", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
		}
		cronJob.Start()
		defer cronJob.Stop()
	}

	// Set up http server
	handlerLogger := handler.NewLogger(zapLogger)
	m := middleware.NewAuthMiddleware(appConfig.Server.ControlToken)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestID())

	routes.AddControlRoutes(engine, handler.NewControlHandler(handlerLogger, dispatcher), m)
	routes.AddEndpointRoutes(engine, handler.NewEndpointHandler(handlerLogger, endpointService), m)
	routes.AddSettingsRoutes(engine, handler.NewSettingsHandler(handlerLogger, settingsService), m)
	routes.AddEventRoutes(engine, handler.NewEventHandler(hub, sched), m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: engine,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}

func openBackend(ctx context.Context, appConfig config.AppConfig, redisClient *redis.Client) (store.Backend, error) {
	switch appConfig.Store.Driver {
	case config.StoreDriverSQLite:
		db, err := infra.NewSQLiteConnection(appConfig.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store.NewSQLiteBackend(ctx, db)
	case config.StoreDriverPostgres:
		db, err := infra.NewPostgresConnection(infra.PostgresConfig{
			Host:         appConfig.Postgres.Host,
			Port:         appConfig.Postgres.Port,
			User:         appConfig.Postgres.User,
			Password:     appConfig.Postgres.Password,
			DBName:       appConfig.Postgres.DBName,
			MaxOpenConns: appConfig.Postgres.MaxOpenConns,
		})
		if err != nil {
			return nil, err
		}
		if err = store.MigratePostgres(ctx, db); err != nil {
			return nil, err
		}
		return store.NewPostgresBackend(db), nil
	case config.StoreDriverRedis:
		return store.NewRedisBackend(redisClient, appConfig.Redis.StoreKey), nil
	default:
		return store.NewMemoryBackend(), nil
	}
}

// listenForChanges keeps the cross-process change subscription alive until ctx is done.
func listenForChanges(ctx context.Context, st store.Store, zapLogger *zap.Logger) {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 0
	for ctx.Err() == nil {
		err := backoff.RetryNotify(func() error {
			return st.Listen(ctx)
		}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
			zapLogger.Warn("storage change subscription failed, retrying", zap.Error(err), zap.Duration("retry_in", next))
		})
		if err != nil && ctx.Err() == nil {
			zapLogger.Error("storage change subscription stopped", zap.Error(err))
			return
		}
		b.Reset()
	}
}
