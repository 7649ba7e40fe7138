package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/clock"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/metrics"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/platform/otel"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/cache"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/gateway"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/iri"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/network"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/repository/clickhouse"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/service"
	"github.com/goodnatureofminers/tangleinsight-backend/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const serviceName = "tangleinsight-api-gateway"

var config struct {
	Addr           string        `long:"addr" env:"API_GATEWAY_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr       string        `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"REST listen address" default:":8001"`
	NetworksFile   string        `long:"networks-file" env:"API_GATEWAY_NETWORKS_FILE" description:"YAML list of served networks" default:"configs/networks.yaml"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"archive DSN, required when a network enables the archive"`
	BackendTimeout time.Duration `long:"backend-timeout" env:"API_GATEWAY_BACKEND_TIMEOUT" description:"timeout of every node or archive call" default:"20s"`
	SweepSchedule  string        `long:"sweep-schedule" env:"API_GATEWAY_SWEEP_SCHEDULE" description:"cron schedule of the stale cache sweeper" default:"@every 60s"`
	ArchiveWrite   bool          `long:"archive-write" env:"API_GATEWAY_ARCHIVE_WRITE" description:"store transactions served only by the node in the archive"`
	OtelEndpoint   string        `long:"otel-endpoint" env:"API_GATEWAY_OTEL_ENDPOINT" description:"OTLP/HTTP traces endpoint, tracing is off when empty"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	shutdownTracing, err := otel.Setup(ctx, serviceName, config.OtelEndpoint)
	if err != nil {
		logger.Fatal("Failed to set up tracing", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to flush traces", zap.Error(err))
		}
	}()

	networks, err := network.Load(config.NetworksFile)
	if err != nil {
		logger.Fatal("Failed to load networks", zap.Error(err), zap.String("file", config.NetworksFile))
	}

	repo, err := openArchive(networks)
	if err != nil {
		logger.Fatal("Failed to open archive", zap.Error(err))
	}
	if repo != nil {
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("Failed to close archive", zap.Error(err))
			}
		}()
	}

	backends, err := buildBackends(networks, repo, logger)
	if err != nil {
		logger.Fatal("Failed to register backends", zap.Error(err))
	}

	caches := cache.NewRegistry(networks.List(), metrics.NewCache())
	sweeper, err := cache.NewSweeper(caches, clock.Real{}, config.SweepSchedule, logger.Named("sweeper"))
	if err != nil {
		logger.Fatal("Failed to schedule cache sweeper", zap.Error(err))
	}
	sweeper.Start()
	defer sweeper.Stop()

	var archive service.Archive
	if config.ArchiveWrite && repo != nil {
		archiver := service.NewArchiver(repo, logger)
		for _, cfg := range networks.Configs() {
			if cfg.HasArchival() {
				archiver.AddNetwork(cfg.ID, metrics.NewArchiver(cfg.ID))
			}
		}
		archiver.Start(ctx)
		defer archiver.Stop()
		archive = archiver
	}

	explorer := service.NewExplorer(networks, backends, caches, archive, clock.Real{}, metrics.NewExplorer(), logger)

	confirmations := service.NewConfirmationListener(caches.Payloads, clock.Real{}, logger)
	for _, cfg := range networks.Configs() {
		if err := startConfirmationFeed(ctx, cfg.ZMQAddr, cfg.ID, confirmations, logger); err != nil {
			logger.Fatal("Failed to subscribe to confirmations", zap.Error(err), zap.String("network", string(cfg.ID)))
		}
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient("passthrough:///"+config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Dial gRPC server", zap.Error(err))
	}
	defer func() {
		_ = conn.Close()
	}()

	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))
	if err := transport.NewExplorerHandler(explorer, logger).Register(gw); err != nil {
		logger.Fatal("Register explorer handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2*config.BackendTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", config.RestAddr),
		zap.Int("networks", len(networks.List())),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

// openArchive connects to ClickHouse when at least one network enables the archive.
func openArchive(networks *network.Registry) (*clickhouse.Repository, error) {
	for _, cfg := range networks.Configs() {
		if cfg.HasArchival() {
			return clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
		}
	}
	return nil, nil
}

func buildBackends(networks *network.Registry, repo *clickhouse.Repository, logger *zap.Logger) (*gateway.Registry, error) {
	backends := gateway.NewRegistry()
	httpClient := &http.Client{Timeout: config.BackendTimeout}

	for _, cfg := range networks.Configs() {
		client := iri.NewClient(cfg.NodeURL, httpClient, metrics.NewNodeClient(cfg.ID))
		set := gateway.Set{
			Primary: gateway.New(gateway.KindPrimary, cfg.ID,
				gateway.NewPrimaryNode(client, cfg.Window),
				config.BackendTimeout, metrics.NewBackend(string(gateway.KindPrimary), cfg.ID), logger),
		}
		if cfg.HasArchival() {
			set.Archival = gateway.New(gateway.KindArchival, cfg.ID,
				gateway.NewArchival(cfg.ID, repo, cfg.ArchivalPageSize, cfg.ArchivalChunkSize),
				config.BackendTimeout, metrics.NewBackend(string(gateway.KindArchival), cfg.ID), logger)
		}
		if err := backends.Register(cfg.ID, set); err != nil {
			return nil, err
		}
		logger.Info("Registered network",
			zap.String("network", string(cfg.ID)),
			zap.String("node", cfg.NodeURL),
			zap.Bool("archive", cfg.HasArchival()),
		)
	}
	return backends, nil
}
