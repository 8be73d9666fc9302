// Package scraper fetches job postings from careers pages with a headless
// browser, so recruiters can prefill a Job record from a URL instead of
// retyping the posting.
package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

const pageLoadTimeout = 30 * time.Second

// createBrowserContext creates a new browser context with appropriate options
func createBrowserContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancel2 := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		// Filter out noisy unmarshal warnings
		msg := fmt.Sprintf(format, v...)
		if strings.Contains(msg, "could not unmarshal event") {
			return
		}
		log.Printf(format, v...)
	}))

	return ctx, func() {
		cancel2()
		cancel()
	}
}

// FetchPosting loads a careers-page posting and extracts a Job record
// from it. Title comes from the page's first heading, the description
// from the rendered body text. The caller reviews and completes the
// record before saving; this is a prefill, not an authority.
func FetchPosting(parent context.Context, url string) (*models.Job, error) {
	ctx, cancel := createBrowserContext(parent)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, pageLoadTimeout)
	defer cancel()

	var title, body string
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.Sleep(2*time.Second), // let client-rendered boards settle
		chromedp.Text("h1", &title, chromedp.ByQuery, chromedp.AtLeast(0)),
		chromedp.Text("body", &body, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch posting %s: %w", url, err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("no title found at %s", url)
	}

	job := &models.Job{
		Title:          title,
		Description:    condense(body),
		EmploymentType: "full-time",
	}
	return job, nil
}

// condense trims the rendered body down to something reviewable: blank
// lines collapsed, hard cap on length so a CV-sized page does not flood
// the record.
func condense(body string) string {
	lines := strings.Split(body, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	out := strings.Join(kept, "\n")
	const maxLen = 4000
	if len(out) > maxLen {
		out = out[:maxLen] + "\n…"
	}
	return out
}
