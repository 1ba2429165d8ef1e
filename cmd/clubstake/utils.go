package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/furysport/furycontracts-sub000/clubstaking"
	"github.com/furysport/furycontracts-sub000/config"
	"github.com/furysport/furycontracts-sub000/logger"
	"github.com/furysport/furycontracts-sub000/network"
	"github.com/furysport/furycontracts-sub000/storage"
)

// node is an opened ledger with its configuration.
type node struct {
	cfg   config.Config
	store *storage.BoltStore
	svc   *clubstaking.Service
}

func (n *node) close() {
	if err := n.store.Close(); err != nil {
		logger.Error(fmt.Errorf("close ledger: %w", err))
	}
	logger.Flush(2 * time.Second)
}

// loadConfig reads the config file, falling back to defaults plus the
// environment when it does not exist, then applies global flags.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	dataDir := ctx.GlobalString(dataDirFlag.Name)
	path := ctx.GlobalString(configFlag.Name)
	if path == "" {
		dir := dataDir
		if dir == "" {
			dir = config.DefaultDataDir()
		}
		path = config.ConfigPath(dir)
	}

	cfg, err := config.LoadConfig(path)
	if errors.Is(err, config.ErrConfigNotFound) {
		cfg, err = config.LoadEnv()
	}
	if err != nil {
		return config.Config{}, err
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if v := ctx.GlobalString(logLevelFlag.Name); v != "" {
		cfg.LogLevel = v
	}
	if ctx.GlobalBool(debugFlag.Name) {
		cfg.Debug = true
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func initLogger(cfg config.Config) error {
	return logger.Initialize(logger.Config{
		Debug:      cfg.Debug,
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogFile,
		SentryDSN:  cfg.SentryDSN,
		Tags:       map[string]string{"service": "clubstake"},
	})
}

// environ returns the process environment as a map.
func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// serviceOptions wires the optional oracle and token ledger endpoints.
func serviceOptions(cfg config.Config) ([]clubstaking.Option, error) {
	opts := []clubstaking.Option{clubstaking.WithLogger(logger.Default())}
	env := environ()

	endpoints := []struct {
		prefix string
		url    string
		wire   func(*network.RPCClient) clubstaking.Option
	}{
		{config.EnvPrefix + "_ORACLE", cfg.OracleURL, func(c *network.RPCClient) clubstaking.Option {
			return clubstaking.WithOracle(network.NewRPCPriceOracle(c))
		}},
		{config.EnvPrefix + "_TOKEN_LEDGER", cfg.TokenLedgerURL, func(c *network.RPCClient) clubstaking.Option {
			return clubstaking.WithTokenLedger(network.NewRPCTokenLedger(c))
		}},
	}
	for _, ep := range endpoints {
		rpc, err := network.ResolveConfig(&network.RPCConfig{URL: ep.url}, env, ep.prefix)
		if errors.Is(err, network.ErrMissingURL) {
			continue
		}
		if err != nil {
			return nil, err
		}
		logger.Info("endpoint configured", zap.String("endpoint", strings.ToLower(ep.prefix)), zap.String("url", rpc.URL))
		opts = append(opts, ep.wire(network.NewRPCClient(*rpc)))
	}
	return opts, nil
}

func openNode(ctx *cli.Context) (*node, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := initLogger(cfg); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	store, err := clubstaking.OpenBoltLedger(config.LedgerPath(cfg.DataDir))
	if err != nil {
		return nil, err
	}
	opts, err := serviceOptions(cfg)
	if err != nil {
		store.Close()
		return nil, err
	}
	svc, err := clubstaking.NewService(store, cfg.Params(), opts...)
	if err != nil {
		store.Close()
		return nil, err
	}
	return &node{cfg: cfg, store: store, svc: svc}, nil
}

func initAction(ctx *cli.Context) error {
	n, err := openNode(ctx)
	if err != nil {
		return err
	}
	defer n.close()

	cfgPath := ctx.GlobalString(configFlag.Name)
	if cfgPath == "" {
		cfgPath = config.ConfigPath(n.cfg.DataDir)
	}
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		if err := config.SaveConfig(cfgPath, n.cfg); err != nil {
			return err
		}
		logger.Info("config written", zap.String("path", cfgPath))
	}

	if v := ctx.String(firstDistributionFlag.Name); v != "" {
		n.cfg.FirstDistribution = v
	}
	first, err := n.cfg.FirstDistributionTime()
	if err != nil {
		return err
	}
	acc, err := n.svc.Init(context.Background(), first)
	if err != nil {
		return err
	}
	return printJSON(ctx, acc)
}

func execAction(build func(*cli.Context) clubstaking.Command) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		n, err := openNode(ctx)
		if err != nil {
			return err
		}
		defer n.close()

		res, err := n.svc.Execute(context.Background(), build(ctx))
		if res != nil {
			if perr := printJSON(ctx, res); perr != nil {
				return perr
			}
		}
		return err
	}
}

func printJSON(ctx *cli.Context, v interface{}) error {
	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// handleExitSignal returns a context cancelled on SIGINT or SIGTERM.
func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)
		sig := <-exitSignalCh
		logger.Info("exit signal received", zap.String("signal", sig.String()))
		cancel()
	}()
	return ctx
}
