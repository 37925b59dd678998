package session

import (
	"errors"
	"fmt"

	"github.com/pithecene-io/peerlink/transfer"
)

// FailureMessage converts a transfer failure into the inline message shown
// to the user. Each error class gets a distinct, actionable message so a
// 404, a 5xx, and an unreachable backend are never conflated.
func FailureMessage(op string, err error) string {
	var terr *transfer.TransferError
	if !errors.As(err, &terr) {
		return fmt.Sprintf("%s failed: %v", op, err)
	}

	switch {
	case errors.Is(err, transfer.ErrUnreachable):
		return "Network error: backend is unreachable. Check the API URL configuration."
	case errors.Is(err, transfer.ErrNotFound):
		return "Identifier not found. It may have expired or be incorrect."
	case errors.Is(err, transfer.ErrBadResponse):
		if terr.Detail != "" {
			return "Invalid server response: " + terr.Detail + "."
		}
		return "Invalid server response."
	case terr.Status >= 500:
		return "Server error. The backend might be starting up or misconfigured."
	case terr.Detail != "":
		return terr.Detail
	}
	return fmt.Sprintf("%s failed (status %d)", op, terr.Status)
}
