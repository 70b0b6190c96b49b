package pdf

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"builty-service/internal/entities"
	"builty-service/internal/pkg/amount_words"
	"builty-service/internal/pkg/config"
	"builty-service/pkg/logger"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

//go:embed templates/builty.html
var templatesFS embed.FS

const (
	defaultTimeout = 30 * time.Second

	// A4 в дюймах
	paperWidth  = 8.27
	paperHeight = 11.69
)

var (
	ErrRenderTimeout = errors.New("pdf rendering timed out")

	copies = []string{"Consignor Copy", "Consignee Copy", "Driver Copy"}
)

type pageData struct {
	Copies       []string
	Builty       *entities.Builty
	IssuedOn     string
	TotalInWords string
	QRPayload    string
}

// Renderer prints receipts through a headless Chrome, local or remote.
type Renderer struct {
	log         logger.Logger
	tmpl        *template.Template
	timeout     time.Duration
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func New(cfg *config.PDF, log logger.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/builty.html")
	if err != nil {
		return nil, fmt.Errorf("parse builty template: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	r := &Renderer{
		log:     log.With(logger.NewField("component", "pdf")),
		tmpl:    tmpl,
		timeout: timeout,
	}

	if cfg.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
	} else {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("disable-extensions", true),
		)
		r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	}

	return r, nil
}

func (r *Renderer) Close() {
	r.allocCancel()
}

// HTML renders the three printable copies of the receipt.
func (r *Renderer) HTML(b *entities.Builty) (string, error) {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, pageData{
		Copies:       copies,
		Builty:       b,
		IssuedOn:     b.CreatedAt.Format("02-Jan-2006"),
		TotalInWords: amount_words.Rupees(b.TotalAmount),
		QRPayload:    b.QRPayload(),
	})
	if err != nil {
		return "", fmt.Errorf("execute builty template: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) RenderBuilty(ctx context.Context, b *entities.Builty) ([]byte, error) {
	html, err := r.HTML(b)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx)
	defer browserCancel()

	// браузерный контекст живет от allocCtx, поэтому дедлайн запроса пробрасываем вручную
	stop := context.AfterFunc(ctx, browserCancel)
	defer stop()

	start := time.Now()
	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %v", ErrRenderTimeout, r.timeout)
		}
		return nil, fmt.Errorf("chromedp: %w", err)
	}

	r.log.Info("builty pdf rendered",
		logger.NewField("document_number", b.DocumentNumber),
		logger.NewField("bytes", len(pdf)),
		logger.NewField("duration", time.Since(start).String()),
	)
	return pdf, nil
}
