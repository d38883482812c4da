package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/budget-planner/internal/config"
	"github.com/GregMSThompson/budget-planner/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
}

// Run builds the process-wide dependencies. Log is always set, even when an
// error is returned, so callers can report the failure.
func Run(ctx context.Context, cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.ForFormat(cfg.LogFormat))
	slog.SetDefault(bs.Log)

	bs.Firestore, err = InitFirestore(ctx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore == nil {
		return
	}
	if err := bs.Firestore.Close(); err != nil {
		bs.Log.Warn("failed to close firestore client", "error", err)
	}
}
