package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/phixelforge/internal/docstore"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// newLegacyCmd groups commands that work on the Redis document store directly.
func (a *app) newLegacyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legacy",
		Short: "Inspect and feed the legacy document store",
	}
	cmd.AddCommand(a.newLegacyListCmd(), a.newLegacySaveCmd(), a.newLegacyWatchCmd(), a.newLegacyPushCmd())
	return cmd
}

func (a *app) newLegacyListCmd() *cobra.Command {
	var uid string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List legacy documents, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rdb, err := a.openRedis(cmd.Context())
			if err != nil {
				return err
			}
			defer rdb.Close()

			docs := docstore.New(rdb)
			var records []models.ImageRecord
			if uid != "" {
				records, err = docs.ListByUser(cmd.Context(), uid)
			} else {
				records, err = docs.List(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("listing documents: %w", err)
			}

			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), records)
			}
			recordTable(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().StringVar(&uid, "uid", "", "Only documents of this user")
	return cmd
}

func (a *app) newLegacySaveCmd() *cobra.Command {
	var rec models.ImageRecord

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Store one legacy document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rdb, err := a.openRedis(cmd.Context())
			if err != nil {
				return err
			}
			defer rdb.Close()

			id, err := docstore.New(rdb).Save(cmd.Context(), rec)
			if err != nil {
				return fmt.Errorf("saving document: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&rec.UserID, "uid", "", "Owner uid")
	cmd.Flags().StringVar(&rec.Prompt, "prompt", "", "Prompt the image was generated from")
	cmd.Flags().StringVar(&rec.ImageData, "data", "", "Data URI or bare base64 PNG payload")
	_ = cmd.MarkFlagRequired("uid")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func (a *app) newLegacyWatchCmd() *cobra.Command {
	var (
		uid   string
		count int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print a user's documents every time they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rdb, err := a.openRedis(ctx)
			if err != nil {
				return err
			}
			defer rdb.Close()

			limiter := newSnapshotLimiter(count)
			cancel, err := docstore.New(rdb).Watch(ctx, uid, func(records []models.ImageRecord) {
				limiter.run(func() { a.printSnapshot(cmd, records) })
			})
			if err != nil {
				return fmt.Errorf("watching documents: %w", err)
			}
			defer cancel()

			limiter.wait(ctx)
			return nil
		},
	}

	cmd.Flags().StringVar(&uid, "uid", "", "Owner uid")
	cmd.Flags().IntVar(&count, "count", 0, "Stop after this many snapshots (0 runs until interrupted)")
	_ = cmd.MarkFlagRequired("uid")
	return cmd
}

func (a *app) newLegacyPushCmd() *cobra.Command {
	var uid string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Save a user's legacy documents as images through the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}

			rdb, err := a.openRedis(cmd.Context())
			if err != nil {
				return err
			}
			defer rdb.Close()

			records, err := docstore.New(rdb).ListByUser(cmd.Context(), uid)
			if err != nil {
				return fmt.Errorf("listing documents: %w", err)
			}

			for _, rec := range records {
				id, err := c.SaveImage(cmd.Context(), rec)
				if err != nil {
					return fmt.Errorf("saving document %s: %w", rec.ID, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", rec.ID, id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&uid, "uid", "", "Owner uid")
	_ = cmd.MarkFlagRequired("uid")
	return cmd
}

func (a *app) printSnapshot(cmd *cobra.Command, records []models.ImageRecord) {
	if a.jsonOutput {
		_ = printJSON(cmd.OutOrStdout(), records)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "--- %d image(s)\n", len(records))
	recordTable(cmd.OutOrStdout(), records)
}

// snapshotLimiter runs snapshot callbacks until stopped or until limit of
// them have run. A zero limit never closes done.
type snapshotLimiter struct {
	mu      sync.Mutex
	stopped bool
	seen    int
	limit   int
	done    chan struct{}
}

func newSnapshotLimiter(limit int) *snapshotLimiter {
	return &snapshotLimiter{limit: limit, done: make(chan struct{})}
}

func (l *snapshotLimiter) run(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	fn()
	l.seen++
	if l.limit > 0 && l.seen == l.limit {
		l.stopped = true
		close(l.done)
	}
}

// stop waits for a running callback and drops later ones.
func (l *snapshotLimiter) stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
}

// wait blocks until ctx ends or the limit is reached, then stops the limiter.
func (l *snapshotLimiter) wait(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-l.done:
	}
	l.stop()
}
