package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/store"
)

// BootReport records which partitions failed to load during startup. Any
// failure leaves the app running on built-in defaults but flips the degraded
// flag, which the web layer surfaces as a fatal initialization banner.
type BootReport struct {
	mu     sync.Mutex
	failed []string
}

func (r *BootReport) fail(partition string) {
	r.mu.Lock()
	r.failed = append(r.failed, partition)
	r.mu.Unlock()
}

func (r *BootReport) Degraded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failed) > 0
}

func (r *BootReport) Failed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.failed...)
}

// Bootstrap loads all four partitions concurrently. Each load is isolated: a
// failure is logged and recorded, and never prevents the other partitions
// from loading.
func Bootstrap(ctx context.Context, gallery *GalleryService, mailbox *MailboxService, access *AccessService, logger *slog.Logger) *BootReport {
	report := &BootReport{}

	var wg sync.WaitGroup
	load := func(partition string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				logger.Error("failed to load partition", "partition", partition, "error", err)
				report.fail(partition)
			}
		}()
	}

	load(store.PartitionPhotos, gallery.loadPhotos)
	load(store.PartitionAbout, gallery.loadAbout)
	load(store.PartitionInquiries, func(ctx context.Context) error {
		_, err := mailbox.inquiries.List(ctx)
		return err
	})
	load(store.PartitionAccessKeys, func(ctx context.Context) error {
		_, err := access.keys.List(ctx)
		return err
	})

	wg.Wait()
	if report.Degraded() {
		logger.Error("initialization degraded, serving built-in defaults", "partitions", report.Failed())
	}
	return report
}
