package pdf

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds one headless render.
const DefaultTimeout = 30 * time.Second

// screenshot renders the HTML document in a headless browser and
// returns a full-page PNG capture. Requires Chrome/Chromium on the
// system.
func screenshot(ctx context.Context, htmlContent string, timeout time.Duration) ([]byte, error) {
	dir, err := os.MkdirTemp("", "careertrack-render-*")
	if err != nil {
		return nil, &RenderError{Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "document.html")
	if err := os.WriteFile(path, []byte(htmlContent), 0644); err != nil {
		return nil, &RenderError{Message: "failed to write document", Cause: err}
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.WindowSize(pageWidthPx, 1123),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var buf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+path),
		chromedp.WaitReady("body"),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, &RenderError{Message: "browser rendering failed", Cause: err}
	}
	return buf, nil
}
