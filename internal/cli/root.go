// Package cli wires the access layer into the omsctl command tree. The CLI is
// a thin consumer: every cache and invalidation decision stays in the service
// layer, the commands only format results.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oms-client/internal/cache"
	"oms-client/internal/config"
	"oms-client/internal/imageurl"
	"oms-client/internal/kafka"
	"oms-client/internal/observability"
	"oms-client/internal/service"
	"oms-client/internal/transport"
)

// app carries the wired dependencies between PersistentPreRunE and the leaf
// commands.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	store    *cache.Store
	services *service.Services
	images   *imageurl.Resolver
}

func New(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:           "omsctl",
		Short:         "Order management client with a read-through snapshot cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The stub command serves data, it does not consume it.
			if cmd.Name() == "stub" {
				return nil
			}
			return a.init()
		},
	}

	root.AddCommand(
		a.ordersCmd(),
		a.productsCmd(),
		a.salesCmd(),
		a.statsCmd(),
		a.watchCmd(),
		a.stubCmd(),
	)
	return root
}

func (a *app) init() error {
	a.cfg = config.Load()

	client := transport.New(a.cfg.API.BaseURL, a.cfg.API.Timeout, a.logger)
	a.store = cache.NewStore(a.cfg.Cache.TTL)
	a.services = service.New(client, a.store, a.logger, observability.NewInmem(256))

	images, err := imageurl.NewResolver(a.cfg.API.BaseURL)
	if err != nil {
		return err
	}
	a.images = images
	return nil
}

// runConsumer starts the invalidation consumer when brokers are configured.
// Long-lived commands call it; one-shot commands never hold a cache long
// enough to care.
func (a *app) runConsumer(ctx context.Context) func() {
	if !a.cfg.Kafka.Enabled() {
		return func() {}
	}

	reader := kafka.NewReader(a.cfg.Kafka)
	consumer := kafka.NewConsumer(reader, a.store, a.logger)

	cctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		consumer.Run(cctx)
		close(done)
	}()
	return func() {
		cancel()
		if err := reader.Close(); err != nil {
			a.logger.Warn("closing kafka reader failed", zap.Error(err))
		}
		<-done
	}
}

// signalContext is canceled on SIGINT/SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
