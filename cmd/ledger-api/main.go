package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/goodnatureofminers/h2credit-ledger/internal/anomaly"
	"github.com/goodnatureofminers/h2credit-ledger/internal/archive"
	"github.com/goodnatureofminers/h2credit-ledger/internal/chain"
	"github.com/goodnatureofminers/h2credit-ledger/internal/chain/evm"
	"github.com/goodnatureofminers/h2credit-ledger/internal/ledger"
	"github.com/goodnatureofminers/h2credit-ledger/internal/lifecycle"
	"github.com/goodnatureofminers/h2credit-ledger/internal/metrics"
	"github.com/goodnatureofminers/h2credit-ledger/internal/registry"
	"github.com/goodnatureofminers/h2credit-ledger/internal/repository/postgres"
	"github.com/goodnatureofminers/h2credit-ledger/internal/transport/health"
	"github.com/goodnatureofminers/h2credit-ledger/internal/transport/httpapi"
	"github.com/goodnatureofminers/h2credit-ledger/pkg/batcher"
)

type config struct {
	HTTPAddr    string `long:"http-addr" env:"LEDGER_HTTP_ADDR" description:"REST API address" default:":3000"`
	GRPCAddr    string `long:"grpc-addr" env:"LEDGER_GRPC_ADDR" description:"gRPC health service address" default:":3001"`
	MetricsAddr string `long:"metrics-addr" env:"LEDGER_METRICS_ADDR" description:"address for metrics server" default:":2112"`

	PostgresDSN   string `long:"postgres-dsn" env:"LEDGER_POSTGRES_DSN" description:"Postgres DSN" required:"true"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"LEDGER_CLICKHOUSE_DSN" description:"ClickHouse DSN for the lifecycle event archive; archive disabled when empty"`

	EthRPCURL          string        `long:"eth-rpc-url" env:"LEDGER_ETH_RPC_URL" description:"EVM JSON-RPC endpoint" default:"http://127.0.0.1:8545"`
	ContractAddress    string        `long:"contract-address" env:"LEDGER_CONTRACT_ADDRESS" description:"hydrogen credit contract address" required:"true"`
	OperatorPrivateKey string        `long:"operator-private-key" env:"LEDGER_OPERATOR_PRIVATE_KEY" description:"hex key that signs issuance and wallet funding" required:"true"`
	GatewayTimeout     time.Duration `long:"gateway-timeout" env:"LEDGER_GATEWAY_TIMEOUT" description:"upper bound on a single blockchain call" default:"90s"`
	ChainRPS           int           `long:"chain-rps" env:"LEDGER_CHAIN_RPS" description:"blockchain calls per second" default:"10"`
	WalletFundingWei   string        `long:"wallet-funding-wei" env:"LEDGER_WALLET_FUNDING_WEI" description:"wei sent to every new wallet, 0 disables funding" default:"10000000000000000"`
	FundTimeout        time.Duration `long:"fund-timeout" env:"LEDGER_FUND_TIMEOUT" description:"upper bound on wallet funding" default:"1m"`

	JWTSecret   string        `long:"jwt-secret" env:"LEDGER_JWT_SECRET" description:"HS256 signing secret" required:"true"`
	TokenTTL    time.Duration `long:"token-ttl" env:"LEDGER_TOKEN_TTL" description:"bearer token lifetime" default:"24h"`
	CORSOrigins []string      `long:"cors-origin" env:"LEDGER_CORS_ORIGINS" env-delim:"," description:"allowed CORS origin, repeatable; any origin when unset"`

	ArchiveFlushSize     int           `long:"archive-flush-size" env:"LEDGER_ARCHIVE_FLUSH_SIZE" description:"events per archive batch" default:"500"`
	ArchiveFlushInterval time.Duration `long:"archive-flush-interval" env:"LEDGER_ARCHIVE_FLUSH_INTERVAL" description:"max delay before an archive batch is written" default:"2s"`
	ArchiveRPS           int           `long:"archive-rps" env:"LEDGER_ARCHIVE_RPS" description:"archive batches per second" default:"5"`

	HealthInterval time.Duration `long:"health-interval" env:"LEDGER_HEALTH_INTERVAL" description:"dependency probe interval" default:"10s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Infof)); err != nil {
		logger.Warn("failed to set GOMAXPROCS", zap.Error(err))
	}
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	fundingWei, ok := new(big.Int).SetString(cfg.WalletFundingWei, 10)
	if !ok {
		return fmt.Errorf("invalid wallet funding amount %q", cfg.WalletFundingWei)
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	store, err := postgres.NewRepository(cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init postgres repository: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	client, chainID, err := evm.Dial(ctx, cfg.EthRPCURL)
	if err != nil {
		return err
	}
	defer client.Close()

	signer, err := evm.NewCustodialSigner(store, chainID)
	if err != nil {
		return fmt.Errorf("init custodial signer: %w", err)
	}
	backend, err := evm.NewGateway(client, cfg.ContractAddress, cfg.OperatorPrivateKey, chainID, signer)
	if err != nil {
		return fmt.Errorf("init contract gateway: %w", err)
	}
	gateway, err := chain.NewObservedGateway(backend, metrics.NewChainGateway(chainID.String()), cfg.ChainRPS)
	if err != nil {
		return fmt.Errorf("init observed gateway: %w", err)
	}
	logger.Info("connected to chain",
		zap.String("chain_id", chainID.String()),
		zap.String("contract", cfg.ContractAddress),
		zap.String("operator", backend.OperatorAddress()),
	)

	probes := []health.Probe{{Name: "postgres", Pinger: store}}
	var (
		events  lifecycle.EventSink = archive.Nop{}
		history httpapi.Archive     = archive.Nop{}
	)
	if cfg.ClickhouseDSN != "" {
		repo, err := archive.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init event archive: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()

		archiver := archive.NewArchiver(repo, batcher.Config{
			FlushSize:     cfg.ArchiveFlushSize,
			FlushInterval: cfg.ArchiveFlushInterval,
			RPS:           cfg.ArchiveRPS,
		}, logger.Named("archive"))
		archiver.Start(ctx)
		defer archiver.Stop()

		events, history = archiver, repo
		probes = append(probes, health.Probe{Name: "clickhouse", Pinger: repo})
	} else {
		logger.Info("clickhouse dsn not set, lifecycle event archive disabled")
	}

	engine, err := lifecycle.NewEngine(
		store,
		gateway,
		anomaly.NewDetector(logger.Named("anomaly")),
		events,
		metrics.NewLifecycle(),
		logger,
		cfg.GatewayTimeout,
	)
	if err != nil {
		return fmt.Errorf("init lifecycle engine: %w", err)
	}
	aggregator, err := ledger.NewAggregator(store, gateway, cfg.GatewayTimeout, logger.Named("ledger"))
	if err != nil {
		return fmt.Errorf("init ledger aggregator: %w", err)
	}
	users, err := registry.NewService(store, gateway, fundingWei, cfg.FundTimeout, logger.Named("registry"))
	if err != nil {
		return fmt.Errorf("init registry: %w", err)
	}
	tokens, err := httpapi.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("init token issuer: %w", err)
	}
	api, err := httpapi.NewHandler(engine, aggregator, users, history, tokens, metrics.NewHTTP(), logger.Named("http"))
	if err != nil {
		return fmt.Errorf("init http handler: %w", err)
	}

	probe, err := health.NewHandler(logger.Named("health"), cfg.HealthInterval, 2*time.Second, probes...)
	if err != nil {
		return fmt.Errorf("init health handler: %w", err)
	}
	go func() {
		_ = probe.Run(ctx)
	}()

	if err := startGRPCServer(ctx, cfg.GRPCAddr, probe, logger); err != nil {
		return err
	}

	conn, err := grpc.NewClient(cfg.GRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial health service: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()
	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))

	mux := http.NewServeMux()
	mux.Handle("/healthz", gw)
	mux.Handle("/", api.Router(cfg.CORSOrigins))

	// Accepts wait for the chain, so writes must outlive the gateway timeout.
	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.GatewayTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GatewayTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func startGRPCServer(ctx context.Context, addr string, probe *health.Handler, logger *zap.Logger) error {
	interceptors := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(interceptors...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	probe.Register(grpcServer)
	grpcPrometheus.Register(grpcServer)
	reflection.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
