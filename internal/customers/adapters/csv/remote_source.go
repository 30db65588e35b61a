package csv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/customers/core/ports"
	"customer-behaviour-dashboard/internal/platform/logger"

	"github.com/valyala/fasthttp"
)

// DefaultSnapshotURL is the published dataset export.
const DefaultSnapshotURL = "https://drive.google.com/uc?id=12h0Dt1rLuxRHtacCMwCkXEKd5iooLYHG"

var log = logger.New("customers.csv")

// Fetcher downloads a document body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// RemoteSource downloads the snapshot once, keeps a copy at cachePath and
// parses it.
type RemoteSource struct {
	url       string
	cachePath string
	fetcher   Fetcher
}

func NewRemoteSource(url, cachePath string, fetcher Fetcher) *RemoteSource {
	return &RemoteSource{url: url, cachePath: cachePath, fetcher: fetcher}
}

var _ ports.TableSourcePort = (*RemoteSource)(nil)

func (s *RemoteSource) LoadTable(ctx context.Context) (*domain.Table, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ports.ErrSourceUnavailable, s.url, err)
	}
	log.Debugf("downloaded %d bytes from %s", len(body), s.url)

	if s.cachePath != "" {
		if err := writeCache(s.cachePath, body); err != nil {
			// the snapshot is still usable from memory
			log.Warnf("could not write cache %s: %v", s.cachePath, err)
		}
	}

	return Parse(bytes.NewReader(body))
}

func writeCache(path string, body []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, body, 0o644)
}

// HTTPFetcher is a Fetcher backed by fasthttp. It follows redirects, which
// the Drive export link relies on.
type HTTPFetcher struct {
	client       *fasthttp.Client
	maxRedirects int
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		maxRedirects: 10,
	}
}

type fetchResult struct {
	body []byte
	err  error
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	done := make(chan fetchResult, 1)

	go func() {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(url)
		req.Header.SetMethod(fasthttp.MethodGet)

		if err := f.client.DoRedirects(req, resp, f.maxRedirects); err != nil {
			done <- fetchResult{err: err}
			return
		}
		if code := resp.StatusCode(); code != fasthttp.StatusOK {
			done <- fetchResult{err: fmt.Errorf("unexpected status %d", code)}
			return
		}
		// resp is recycled after return
		done <- fetchResult{body: append([]byte(nil), resp.Body()...)}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.body, r.err
	}
}
