package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/phixelforge/internal/client"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

func (a *app) newImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Browse and watch images",
	}

	var limit, offset int
	list := &cobra.Command{
		Use:   "list",
		Short: "List a page of the public gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			images, err := c.GetPublicImages(cmd.Context(), limit, offset)
			if err != nil {
				return fmt.Errorf("listing images: %w", err)
			}
			return a.printImages(cmd, images)
		},
	}
	list.Flags().IntVar(&limit, "limit", 50, "Page size")
	list.Flags().IntVar(&offset, "offset", 0, "Page offset")

	mine := &cobra.Command{
		Use:   "mine",
		Short: "List your images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			images, err := c.GetUserImages(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing images: %w", err)
			}
			return a.printImages(cmd, images)
		},
	}

	var (
		uid   string
		count int
	)
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Poll your images and print each refresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			limiter := newSnapshotLimiter(count)
			cancel := c.StreamImages(ctx, uid, func(records []models.ImageRecord) {
				limiter.run(func() { a.printSnapshot(cmd, records) })
			})
			defer cancel()

			limiter.wait(ctx)
			return nil
		},
	}
	watch.Flags().StringVar(&uid, "uid", "", "Uid stamped on the printed records")
	watch.Flags().IntVar(&count, "count", 0, "Stop after this many refreshes (0 runs until interrupted)")

	cmd.AddCommand(list, mine, watch)
	return cmd
}

func (a *app) printImages(cmd *cobra.Command, images []models.Image) error {
	if a.jsonOutput {
		return printJSON(cmd.OutOrStdout(), images)
	}
	imageTable(cmd.OutOrStdout(), images)
	return nil
}

func (a *app) newLikesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "likes",
		Short: "Read and toggle likes",
	}

	run := func(toggle bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			imageID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid image id %q", args[0])
			}
			if toggle {
				if err := a.requireToken(); err != nil {
					return err
				}
			}
			c, err := a.client()
			if err != nil {
				return err
			}

			var state *models.LikeState
			if toggle {
				state, err = c.ToggleLike(cmd.Context(), imageID)
			} else {
				state, err = c.GetLikeStatus(cmd.Context(), imageID)
			}
			if err != nil {
				return fmt.Errorf("like request failed: %w", err)
			}

			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), state)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "likes: %d, liked: %v\n", state.LikeCount, state.IsLiked)
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status <image-id>",
			Short: "Show the like count of an image",
			Args:  cobra.ExactArgs(1),
			RunE:  run(false),
		},
		&cobra.Command{
			Use:   "toggle <image-id>",
			Short: "Like or unlike an image",
			Args:  cobra.ExactArgs(1),
			RunE:  run(true),
		},
	)
	return cmd
}

func (a *app) newAlbumsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "albums",
		Short: "Manage your albums",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your albums",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			albums, err := c.GetUserAlbums(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing albums: %w", err)
			}
			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), albums)
			}
			albumTable(cmd.OutOrStdout(), albums)
			return nil
		},
	}

	var in client.CreateAlbumInput
	var description, cover string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an album",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			if description != "" {
				in.Description = &description
			}
			if cover != "" {
				in.CoverImageID = &cover
			}

			album, err := c.CreateAlbum(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("creating album: %w", err)
			}
			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), album)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created album %s (%s)\n", album.Name, album.ID)
			return nil
		},
	}
	create.Flags().StringVar(&in.Name, "name", "", "Album name")
	create.Flags().StringVar(&description, "description", "", "Album description")
	create.Flags().StringVar(&cover, "cover", "", "Cover image id")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(list, create)
	return cmd
}
