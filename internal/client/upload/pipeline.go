// Package upload drives every staged file through the object-storage
// protocol at submit time: request a pre-signed destination from the remote
// API, PUT the raw bytes there, then record the canonical URL.
package upload

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/inocencio/inoauto/internal/client/staging"
	"github.com/inocencio/inoauto/internal/logging"
	"github.com/inocencio/inoauto/internal/netx"
)

// StorageClient is the slice of the API client the pipeline needs.
type StorageClient interface {
	RequestUploadURL(ctx context.Context, contentType string, contentLength int) (string, error)
}

// Notifier surfaces a non-fatal, user-visible notice.
type Notifier func(message string)

// Pipeline uploads the staged photos and documents of one submission
// attempt. All items of both kinds start in parallel; each item's own
// sequence (request URL, PUT bytes, mark uploaded) is strictly ordered.
type Pipeline struct {
	storage    StorageClient
	httpClient *http.Client
	notify     Notifier
	logger     logging.Logger
}

func NewPipeline(storage StorageClient, httpClient *http.Client, notify Notifier, logger logging.Logger) *Pipeline {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if notify == nil {
		notify = func(string) {}
	}
	return &Pipeline{storage: storage, httpClient: httpClient, notify: notify, logger: logger}
}

// Run uploads everything staged in m and returns the canonical URLs of both
// kinds, in list order. Photo and document URLs are collected separately.
//
// Items already uploaded are skipped and their stored URL reused. If any
// item fails, its entry reverts to pending, a notice naming the kind is
// emitted, and Run returns an error after the remaining in-flight uploads
// are canceled; items that completed keep their uploaded state so a retry
// does not resend them.
func (p *Pipeline) Run(ctx context.Context, m *staging.Manager) (photos []string, documents []string, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	photoItems := m.Items(staging.KindPhoto)
	documentItems := m.Items(staging.KindDocument)

	photos = make([]string, len(photoItems))
	documents = make([]string, len(documentItems))

	for i, it := range photoItems {
		g.Go(p.sendOne(ctx, m, staging.KindPhoto, it, &photos[i]))
	}
	for i, it := range documentItems {
		g.Go(p.sendOne(ctx, m, staging.KindDocument, it, &documents[i]))
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return photos, documents, nil
}

// sendOne returns the upload task for a single item. The destination slot is
// owned exclusively by this task, so writes need no extra synchronization.
func (p *Pipeline) sendOne(ctx context.Context, m *staging.Manager, kind staging.Kind, it staging.Item, slot *string) func() error {
	return func() error {
		if it.Status == staging.StatusUploaded {
			*slot = it.RemoteURL
			return nil
		}

		if err := m.MarkUploading(it.ID); err != nil {
			return err
		}

		canonical, err := p.send(ctx, it)
		if err != nil {
			if revertErr := m.Revert(it.ID); revertErr != nil {
				p.logger.Error(ctx, "revert failed", "item", it.ID, "err", revertErr)
			}
			p.notify(failNotice(kind))
			p.logger.Warn(ctx, "upload failed", "kind", kind.Label(), "name", it.Name, "err", err)
			return fmt.Errorf("upload %s %s: %w", kind.Label(), it.Name, err)
		}

		if err := m.MarkUploaded(it.ID, canonical); err != nil {
			return err
		}
		*slot = canonical
		return nil
	}
}

func (p *Pipeline) send(ctx context.Context, it staging.Item) (string, error) {
	target, err := p.storage.RequestUploadURL(ctx, it.ContentType, len(it.Content))
	if err != nil {
		return "", fmt.Errorf("request upload url: %w", err)
	}

	if err := netx.PutPresigned(ctx, p.httpClient, target, it.ContentType, it.Content); err != nil {
		return "", err
	}

	return CanonicalURL(target)
}

func failNotice(kind staging.Kind) string {
	if kind == staging.KindPhoto {
		return "Não foi possível salvar a foto na nuvem"
	}
	return "Não foi possível salvar o documento na nuvem"
}

// CanonicalURL strips the pre-signed query string, leaving the stable
// object URL that is stored with the registration.
func CanonicalURL(presigned string) (string, error) {
	u, err := url.Parse(presigned)
	if err != nil {
		return "", fmt.Errorf("parse presigned url: %w", err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
