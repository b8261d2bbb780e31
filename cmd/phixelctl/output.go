package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func imageTable(w io.Writer, images []models.Image) {
	if len(images) == 0 {
		fmt.Fprintln(w, "No images found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tPUBLIC\tCREATED")
	for _, img := range images {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%s\n",
			img.ID, deref(img.Title), deref(img.MimeType), img.IsPublic, img.CreatedAt.Format(time.RFC3339))
	}
	tw.Flush()
}

func recordTable(w io.Writer, records []models.ImageRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No images found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tPROMPT\tCREATED")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			rec.ID, rec.UserID, rec.Prompt, time.UnixMilli(rec.CreatedAt).UTC().Format(time.RFC3339))
	}
	tw.Flush()
}

func albumTable(w io.Writer, albums []models.Album) {
	if len(albums) == 0 {
		fmt.Fprintln(w, "No albums found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tIMAGES\tCREATED")
	for _, album := range albums {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", album.ID, album.Name, album.ImageCount, album.CreatedAt.Format(time.RFC3339))
	}
	tw.Flush()
}
