package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// OverlapPolicy decides what happens when a poll tick fires while the previous fetch is still in flight.
type OverlapPolicy int

const (
	// OverlapSkip drops the tick.
	OverlapSkip OverlapPolicy = iota
	// OverlapAllow starts another fetch. The last delivery wins.
	OverlapAllow
)

func (p OverlapPolicy) String() string {
	switch p {
	case OverlapSkip:
		return "skip"
	case OverlapAllow:
		return "allow"
	}
	return fmt.Sprintf("OverlapPolicy(%d)", int(p))
}

// ParseOverlapPolicy parses "skip" or "allow".
func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	switch s {
	case "skip":
		return OverlapSkip, nil
	case "allow":
		return OverlapAllow, nil
	}
	return 0, fmt.Errorf("unknown overlap policy %q", s)
}

// StreamImages delivers the caller's images to callback right away and then on
// every poll interval, until the returned function is called or ctx ends.
// Each delivery replaces the previous list. A failed fetch delivers an empty
// list. Callbacks never run concurrently, and fetches that complete after
// cancellation are dropped.
func (c *Client) StreamImages(ctx context.Context, userID string, callback func([]models.ImageRecord)) func() {
	ctx, cancel := context.WithCancel(ctx)

	var mu sync.Mutex
	deliver := func(records []models.ImageRecord) {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		callback(records)
	}

	fetch := func() {
		images, err := c.GetUserImages(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			logger.Log.Errorw("error streaming images", "user_id", userID, "error", err)
			deliver([]models.ImageRecord{})
			return
		}
		deliver(toRecords(userID, images))
	}

	inFlight := semaphore.NewWeighted(1)
	tick := func() {
		if c.overlap == OverlapAllow {
			go fetch()
			return
		}
		if !inFlight.TryAcquire(1) {
			logger.Log.Debugw("previous fetch still running, skipping tick", "user_id", userID)
			return
		}
		go func() {
			defer inFlight.Release(1)
			fetch()
		}()
	}

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		tick()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tick()
			}
		}
	}()

	return cancel
}

func toRecords(userID string, images []models.Image) []models.ImageRecord {
	records := make([]models.ImageRecord, 0, len(images))
	for _, img := range images {
		prompt := ""
		switch {
		case img.Description != nil && *img.Description != "":
			prompt = *img.Description
		case img.Title != nil:
			prompt = *img.Title
		}
		records = append(records, models.ImageRecord{
			ID:        img.ID.String(),
			UserID:    userID,
			Prompt:    prompt,
			ImageData: img.FilePath,
			CreatedAt: img.CreatedAt.UnixMilli(),
		})
	}
	return records
}
