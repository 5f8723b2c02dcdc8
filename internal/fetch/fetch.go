// Package fetch downloads remote catalogue data files over HTTP.
package fetch

import (
	"fmt"
	"io"
	stdlog "log"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/percal/percal/internal/utils"
)

// Get downloads url with retries and returns the response body. The
// body is decoded elsewhere; this layer only cares about transport.
func Get(url string) ([]byte, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = stdlog.New(io.Discard, "", 0)

	utils.Log.Debug("Fetching catalogue data from ", url)

	resp, err := retryClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}
