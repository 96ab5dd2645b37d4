package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orbital/internal/server"
	orberr "github.com/matzehuels/orbital/pkg/errors"
	"github.com/matzehuels/orbital/pkg/publish"
)

const connectTimeout = 15 * time.Second

// serveCommand creates the "serve" command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve attributes and images over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			ctx := cmd.Context()
			runner, err := c.openRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			err = server.New(runner, loggerFromContext(ctx)).ListenAndServe(ctx, addr)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the document cache")
	return cmd
}

// publishCommand creates the "publish" command.
func (c *CLI) publishCommand() *cobra.Command {
	var (
		start, end uint64
		batch      int
		uri        string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upsert collection metadata into MongoDB",
		Long: `Upsert collection metadata into MongoDB.

One document per index is written, keyed by the index, holding the attribute
set and the BLAKE3 digest of the image. Re-running a range is idempotent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if uri != "" {
				cfg.Publish.MongoURI = uri
			}
			if err := cfg.ValidatePublish(); err != nil {
				return err
			}
			ctx := cmd.Context()
			runner, err := c.openRunner(ctx, cfg, false)
			if err != nil {
				return err
			}
			defer runner.Close()
			if end == 0 {
				end = runner.Info().Supply
			}

			connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
			store, err := publish.OpenMongo(connectCtx, cfg.Publish.MongoURI, cfg.Publish.Database, cfg.Publish.Collection)
			cancel()
			if err != nil {
				return orberr.Wrap(orberr.ErrCodeNetwork, err, "connect to MongoDB")
			}
			defer store.Close(context.WithoutCancel(ctx))

			p := publish.NewPublisher(runner, store, loggerFromContext(ctx))
			if batch > 0 {
				p.BatchSize = batch
			}

			spinner := newSpinnerWithContext(ctx, "Publishing...")
			spinner.Start()
			res, err := p.Publish(ctx, start, end)
			if err != nil {
				spinner.StopWithError("Publish failed after %d documents", res.Documents)
				return err
			}
			spinner.StopWithSuccess("Published %d documents (%d changed)", res.Documents, res.Changed)
			printDetail("%s.%s", cfg.Publish.Database, cfg.Publish.Collection)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&start, "start", 0, "first index (inclusive)")
	cmd.Flags().Uint64Var(&end, "end", 0, "last index (exclusive, default supply)")
	cmd.Flags().IntVar(&batch, "batch", publish.DefaultBatchSize, "documents per bulk write")
	cmd.Flags().StringVar(&uri, "mongo-uri", "", "MongoDB connection string (default from config)")
	return cmd
}
