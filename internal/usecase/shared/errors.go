package shared

import (
	"context"

	"lift-reservation/internal/infra"
	"lift-reservation/internal/pkg/errs"
)

var ErrStoreUnavailable = errs.New("store unavailable")

// StoreErr marks timeouts and database failures as ErrStoreUnavailable. Other
// errors are returned as they are.
func StoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errs.Is(err, context.DeadlineExceeded) ||
		infra.IsKind(err, infra.KindTimeout) ||
		infra.IsKind(err, infra.KindDBFailure) {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return err
}
