package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oms-client/internal/pkg/breaker"
	"oms-client/internal/pkg/retry"
	"oms-client/internal/report"
)

// watchCmd polls the dashboard numbers on an interval. Retries and the
// circuit breaker live here, around the poll loop; the access layer itself
// issues exactly one request per call.
func (a *app) watchCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll and print dashboard aggregates until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			stopConsumer := a.runConsumer(ctx)
			defer stopConsumer()

			if interval <= 0 {
				interval = a.cfg.WatchInterval
			}
			a.services.Warm(ctx)

			br := breaker.New(a.cfg.Breaker)
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				a.poll(ctx, cmd, br)
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "poll interval, defaults to WATCH_INTERVAL")
	return cmd
}

func (a *app) poll(ctx context.Context, cmd *cobra.Command, br *breaker.Breaker) {
	if err := br.Allow(); err != nil {
		a.logger.Warn("poll skipped, breaker open")
		return
	}

	var summary report.OrderSummary
	err := retry.Do(ctx, a.cfg.Retry, func() error {
		orders, err := a.services.Orders.List(ctx)
		if err != nil {
			return err
		}
		summary = report.SummarizeOrders(orders)
		return nil
	})
	if err != nil {
		br.Failure()
		a.logger.Error("poll failed", zap.Error(err))
		return
	}
	br.Success()

	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %d orders, %d pending, revenue %.2f\n",
		time.Now().Format("15:04:05"), summary.TotalOrders, summary.Pending, summary.TotalRevenue)
}
