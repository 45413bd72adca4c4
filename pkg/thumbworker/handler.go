package thumbworker

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"file-manager-api/internal/application/ports"
	"file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/user"
	"file-manager-api/internal/infrastructure/mq"
)

// ErrPermanent marks job failures that redelivery cannot fix (missing
// file, missing user, malformed payload). The consumer reports them to
// the queue without requeueing.
var ErrPermanent = errors.New("permanent job failure")

func permanent(err error) error {
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

type Handler struct {
	log      *zap.Logger
	files    file.Repository
	users    user.Repository
	blob     ports.BlobStore
	mCounter *prometheus.CounterVec
}

func NewHandler(
	logger *zap.Logger,
	files file.Repository,
	users user.Repository,
	blob ports.BlobStore,
	mCounter *prometheus.CounterVec,
) *Handler {
	return &Handler{
		log:      logger,
		files:    files,
		users:    users,
		blob:     blob,
		mCounter: mCounter,
	}
}

func (h *Handler) Handle(ctx context.Context, job mq.Job) error {
	switch job.Kind {
	case mq.JobGenerateThumbnails:
		return h.generateThumbnails(ctx, job)
	case mq.JobWelcomeNotification:
		return h.welcome(ctx, job)
	}

	return permanent(fmt.Errorf("unknown job kind %q", job.Kind))
}

// generateThumbnails computes every derived width for one image. The three
// variants run concurrently; one failing fails the whole job so redelivery
// retries them all, and since each variant lands at a deterministic path
// a retry just overwrites what already succeeded.
func (h *Handler) generateThumbnails(ctx context.Context, job mq.Job) error {
	if job.FileID == "" {
		return permanent(errors.New("missing fileId"))
	}
	if job.UserID == "" {
		return permanent(errors.New("missing userId"))
	}
	fileID, err := uuid.Parse(job.FileID)
	if err != nil {
		return permanent(fmt.Errorf("invalid fileId: %w", err))
	}
	ownerID, err := uuid.Parse(job.UserID)
	if err != nil {
		return permanent(fmt.Errorf("invalid userId: %w", err))
	}

	f, err := h.files.FetchFileByID(ctx, fileID)
	if err != nil {
		return fmt.Errorf("fetch file: %w", err)
	}
	if f == nil || f.OwnerID != ownerID {
		return permanent(errors.New("file not found"))
	}
	if f.Kind != file.KindImage || f.StoragePath == "" {
		return permanent(fmt.Errorf("file %s has no image content", f.UUID))
	}

	src, err := h.blob.Read(f.StoragePath)
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}

	g, _ := errgroup.WithContext(ctx)
	for _, width := range file.ThumbnailWidths {
		width := width
		g.Go(func() error {
			thumb, err := Resize(src, width)
			if err != nil {
				return permanent(fmt.Errorf("resize to %d: %w", width, err))
			}
			if err = h.blob.WriteAt(f.VariantPath(width), thumb); err != nil {
				return fmt.Errorf("write variant %d: %w", width, err)
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	h.mCounter.WithLabelValues("thumbnails_generated_total").Inc()
	h.log.Info("thumbnails generated",
		zap.Stringer("file_uuid", f.UUID),
		zap.Ints("widths", file.ThumbnailWidths),
	)

	return nil
}

func (h *Handler) welcome(ctx context.Context, job mq.Job) error {
	if job.UserID == "" {
		return permanent(errors.New("missing userId"))
	}
	userID, err := uuid.Parse(job.UserID)
	if err != nil {
		return permanent(fmt.Errorf("invalid userId: %w", err))
	}

	u, err := h.users.FetchUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch user: %w", err)
	}
	if u == nil {
		return permanent(errors.New("user not found"))
	}

	fmt.Fprintf(os.Stdout, "Welcome %s!\n", u.Email)

	h.mCounter.WithLabelValues("welcome_notifications_total").Inc()

	return nil
}
