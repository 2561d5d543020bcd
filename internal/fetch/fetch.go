// Package fetch retrieves publication bytes from a URL for the CLI façade.
// It is a thin net/http adapter — no parsing semantics live here (spec §1,
// §6 Collaborator interfaces).
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/jwsched/parser/internal/xerrors"
)

// Limits bounds one fetch: a request timeout and a response-body size cap.
type Limits struct {
	Timeout  time.Duration
	MaxBytes int64
}

// DefaultLimits returns limits suitable for fetching a single publication
// archive over HTTP.
func DefaultLimits() Limits {
	return Limits{Timeout: 30 * time.Second, MaxBytes: 512 << 20}
}

// Get retrieves url's body, enforcing limits.Timeout and limits.MaxBytes.
func Get(ctx context.Context, url string, limits Limits) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, limits.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.IOError, err, "building request")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.IOError, err, "performing request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, xerrors.Newf(xerrors.IOError, "unexpected status %s fetching %s", resp.Status, url)
	}

	limited := io.LimitReader(resp.Body, limits.MaxBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.IOError, err, "reading response body")
	}
	if int64(len(data)) > limits.MaxBytes {
		return nil, xerrors.Newf(xerrors.FileTooLarge, "response body exceeds %d bytes", limits.MaxBytes)
	}

	return data, nil
}
