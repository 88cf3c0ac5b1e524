package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/chartd/pkg/domain/model"
)

// Handle logs err. Errors caused by the caller's input are logged at info
// level with their reason; everything else is an application error.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if reason := model.ClientReason(err); reason != "" {
		logger.Info("request rejected", "reason", reason, "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
