package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const downloadRetries = 3

// Download fetches url into memory, retrying failed requests with an exponential backoff.
// Client errors other than 429 are not retried.
func Download(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", "txc2gtfs")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("unexpected status %s", resp.Status)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return backoff.Permanent(statusErr)
			}
			return statusErr
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("url", url).Dur("wait", wait).Msg("Download failed, retrying")
	}

	retry := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), downloadRetries), ctx)
	if err := backoff.RetryNotify(operation, retry, notify); err != nil {
		return nil, errors.Wrapf(err, "downloading %s", url)
	}

	return body, nil
}
