package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/integrations"
	"github.com/kerbaras/movies/pkg/sources"
)

// DownloadProgress reports on one image of a batch.
type DownloadProgress struct {
	ItemID  string
	Title   string
	Current int
	Total   int
	Status  string // "downloading", "complete", "skipped", "error"
	Error   error
}

// Downloader fetches posters and profile pictures for exports, a few at a
// time and rate limited.
type Downloader struct {
	images       sources.Images
	client       *http.Client
	concurrency  int
	rateLimiter  *time.Ticker
	progressChan chan DownloadProgress
	closeOnce    sync.Once
}

func NewDownloader(images sources.Images, client *http.Client) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Downloader{
		images:       images,
		client:       client,
		concurrency:  3,
		rateLimiter:  time.NewTicker(100 * time.Millisecond),
		progressChan: make(chan DownloadProgress, 100),
	}
}

func (d *Downloader) GetProgressChannel() <-chan DownloadProgress {
	return d.progressChan
}

// DownloadImages fetches the image named by pathField ("poster_path" or
// "profile_path") for each item. Items without a path, and images that
// fail to download, are left out of the returned map.
func (d *Downloader) DownloadImages(ctx context.Context, items []data.Item, pathField string) map[string]integrations.ImageData {
	out := make(map[string]integrations.ImageData)
	var mu sync.Mutex
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, d.concurrency)

	for i, item := range items {
		progress := DownloadProgress{
			ItemID:  item.ID(),
			Title:   item.Title(),
			Current: i + 1,
			Total:   len(items),
		}

		url := d.images.URL(item.String(pathField), sources.Small)
		if url == "" {
			progress.Status = "skipped"
			d.sendProgress(progress)
			continue
		}

		wg.Add(1)
		go func(i int, progress DownloadProgress) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			select {
			case <-ctx.Done():
				progress.Status = "error"
				progress.Error = ctx.Err()
				d.sendProgress(progress)
				return
			case <-d.rateLimiter.C:
			}

			progress.Status = "downloading"
			d.sendProgress(progress)

			img, err := d.downloadImage(ctx, url, i)
			if err != nil {
				progress.Status = "error"
				progress.Error = err
				d.sendProgress(progress)
				return
			}

			mu.Lock()
			out[progress.ItemID] = img
			mu.Unlock()

			progress.Status = "complete"
			d.sendProgress(progress)
		}(i, progress)
	}

	wg.Wait()
	return out
}

func (d *Downloader) downloadImage(ctx context.Context, url string, index int) (integrations.ImageData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return integrations.ImageData{}, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return integrations.ImageData{}, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return integrations.ImageData{}, fmt.Errorf("bad status: %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return integrations.ImageData{}, fmt.Errorf("failed to read image content: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return integrations.ImageData{
		Content:     content,
		ContentType: contentType,
		Index:       index,
	}, nil
}

// sendProgress drops the update when nobody is listening fast enough.
func (d *Downloader) sendProgress(progress DownloadProgress) {
	select {
	case d.progressChan <- progress:
	default:
	}
}

func (d *Downloader) Close() {
	d.closeOnce.Do(func() {
		d.rateLimiter.Stop()
		close(d.progressChan)
	})
}
