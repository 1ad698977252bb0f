package cli

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framechart/internal/server"
	"github.com/matzehuels/framechart/pkg/cache"
	"github.com/matzehuels/framechart/pkg/pipeline"
	"github.com/matzehuels/framechart/pkg/store"
)

// Environment variables read by the serve command.
const (
	envRedisAddr     = "FRAMECHART_REDIS_ADDR"
	envRedisPassword = "FRAMECHART_REDIS_PASSWORD"
	envRedisDB       = "FRAMECHART_REDIS_DB"
	envMongoURI      = "FRAMECHART_MONGO_URI"
	envMongoDatabase = "FRAMECHART_MONGO_DB"
)

const defaultAddr = "127.0.0.1:8080"

type serveOpts struct {
	addr     string
	noCache  bool
	inMemory bool
}

// serveCommand creates the serve command, which runs the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

The layout and artifact cache lives in Redis when ` + envRedisAddr + ` is set and
on disk otherwise. Fitted layouts are archived in MongoDB when ` + envMongoURI + `
is set, on disk otherwise, or in memory with --memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.inMemory, "memory", false, "keep archived layouts in memory")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	cc, err := serveCache(ctx, opts.noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(cc, newKeyer(), logger)
	defer runner.Close()

	st, err := serveStore(ctx, opts.inMemory)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	logger.Info("starting server", "addr", opts.addr)
	return server.New(runner, st, logger).ListenAndServe(ctx, opts.addr)
}

// serveCache picks Redis when configured and falls back to the CLI cache.
func serveCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	addr := os.Getenv(envRedisAddr)
	if noCache || addr == "" {
		return newCache(noCache)
	}
	db, _ := strconv.Atoi(os.Getenv(envRedisDB))
	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     addr,
		Password: os.Getenv(envRedisPassword),
		DB:       db,
		Prefix:   appName + ":",
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// serveStore picks MongoDB when configured, then memory or the data directory.
func serveStore(ctx context.Context, inMemory bool) (store.Store, error) {
	if uri := os.Getenv(envMongoURI); uri != "" {
		ms, err := store.NewMongoStore(ctx, store.MongoConfig{
			URI:      uri,
			Database: os.Getenv(envMongoDatabase),
		})
		if err != nil {
			return nil, err
		}
		return ms, nil
	}
	if inMemory {
		return store.NewMemoryStore(), nil
	}
	dir, err := dataDir()
	if err != nil {
		return store.NewMemoryStore(), nil
	}
	fs, err := store.NewFileStore(filepath.Join(dir, "layouts"))
	if err != nil {
		return nil, err
	}
	return fs, nil
}
