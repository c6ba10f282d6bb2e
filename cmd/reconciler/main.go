package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/h2credit-ledger/internal/archive"
	"github.com/goodnatureofminers/h2credit-ledger/internal/chain"
	"github.com/goodnatureofminers/h2credit-ledger/internal/chain/evm"
	"github.com/goodnatureofminers/h2credit-ledger/internal/ledger"
	"github.com/goodnatureofminers/h2credit-ledger/internal/metrics"
	"github.com/goodnatureofminers/h2credit-ledger/internal/reconcile"
	"github.com/goodnatureofminers/h2credit-ledger/internal/repository/postgres"
	"github.com/goodnatureofminers/h2credit-ledger/pkg/batcher"
)

type config struct {
	PostgresDSN   string `long:"postgres-dsn" env:"RECONCILER_POSTGRES_DSN" description:"Postgres DSN" required:"true"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"RECONCILER_CLICKHOUSE_DSN" description:"ClickHouse DSN for replay events; archive disabled when empty"`

	EthRPCURL          string `long:"eth-rpc-url" env:"RECONCILER_ETH_RPC_URL" description:"EVM JSON-RPC endpoint" default:"http://127.0.0.1:8545"`
	ContractAddress    string `long:"contract-address" env:"RECONCILER_CONTRACT_ADDRESS" description:"hydrogen credit contract address" required:"true"`
	OperatorPrivateKey string `long:"operator-private-key" env:"RECONCILER_OPERATOR_PRIVATE_KEY" description:"hex key of the operator account" required:"true"`
	ChainRPS           int    `long:"chain-rps" env:"RECONCILER_CHAIN_RPS" description:"blockchain calls per second" default:"5"`

	Interval        time.Duration `long:"interval" env:"RECONCILER_INTERVAL" description:"delay between outbox scans" default:"30s"`
	GracePeriod     time.Duration `long:"grace-period" env:"RECONCILER_GRACE_PERIOD" description:"age before an unresolved operation is taken over" default:"5m"`
	Workers         int           `long:"workers" env:"RECONCILER_WORKERS" description:"operations resolved concurrently" default:"4"`
	BatchSize       int           `long:"batch-size" env:"RECONCILER_BATCH_SIZE" description:"operations per scan" default:"100"`
	RebuildHoldings bool          `long:"rebuild-holdings" env:"RECONCILER_REBUILD_HOLDINGS" description:"replay the request logs into the holdings projection before the first scan"`

	MetricsAddr string `long:"metrics-addr" env:"RECONCILER_METRICS_ADDR" description:"address for metrics server" default:":2113"`
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

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("reconciler failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
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

	var events reconcile.EventSink = archive.Nop{}
	if cfg.ClickhouseDSN != "" {
		repo, err := archive.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init event archive: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		archiver := archive.NewArchiver(repo, batcher.Config{FlushSize: 100, FlushInterval: 5 * time.Second}, logger.Named("archive"))
		archiver.Start(ctx)
		defer archiver.Stop()
		events = archiver
	}

	if cfg.RebuildHoldings {
		aggregator, err := ledger.NewAggregator(store, gateway, 0, logger.Named("ledger"))
		if err != nil {
			return fmt.Errorf("init ledger aggregator: %w", err)
		}
		if _, err := aggregator.RebuildHoldings(ctx); err != nil {
			return fmt.Errorf("rebuild holdings: %w", err)
		}
	}

	r, err := reconcile.NewReconciler(store, gateway, metrics.NewReconciler(), events, logger.Named("reconciler"), reconcile.Config{
		Interval:    cfg.Interval,
		GracePeriod: cfg.GracePeriod,
		Workers:     cfg.Workers,
		BatchSize:   cfg.BatchSize,
	})
	if err != nil {
		return fmt.Errorf("init reconciler: %w", err)
	}

	logger.Info("reconciler started",
		zap.Duration("interval", cfg.Interval),
		zap.Duration("grace_period", cfg.GracePeriod),
		zap.String("chain_id", chainID.String()),
	)
	return r.Run(ctx)
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
