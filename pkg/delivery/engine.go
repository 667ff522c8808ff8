// Package delivery renders queued test sends and mails them with rate limiting and retries.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/textproto"
	"strings"
	"time"

	"github.com/joeblew999/plat-mailcraft/pkg/mail"
	"github.com/joeblew999/plat-mailcraft/pkg/queue"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/rescue"
	"github.com/zeromicro/go-zero/core/syncx"
	"github.com/zeromicro/go-zero/core/threading"
	"golang.org/x/time/rate"
	"maragu.dev/goqite"
)

// ErrPermanent marks failures that retrying cannot fix.
var ErrPermanent = errors.New("permanent delivery failure")

// Config holds delivery engine configuration.
type Config struct {
	RetryBackoff time.Duration
	MaxBackoff   time.Duration
	RateLimit    int // emails per minute, 0 for unlimited
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		RetryBackoff: 5 * time.Minute,
		MaxBackoff:   4 * time.Hour,
		RateLimit:    60,
	}
}

// Message is a rendered email ready to send.
type Message struct {
	Subject string
	HTML    string
}

// Renderer turns a stored template into a Message.
type Renderer interface {
	RenderMessage(ctx context.Context, templateID int64) (*Message, error)
}

// Sender delivers one HTML email.
type Sender func(cfg mail.Config, to, subject, html string) error

// Option customizes an Engine.
type Option func(*Engine)

// WithSender replaces the SMTP sender.
func WithSender(s Sender) Option {
	return func(e *Engine) {
		e.send = s
	}
}

// Engine handles email delivery with retry logic.
type Engine struct {
	config      Config
	queue       *queue.Queue
	renderer    Renderer
	smtpConfig  mail.Config
	send        Sender
	rateLimiter *rate.Limiter
	running     *syncx.AtomicBool

	ctx    context.Context
	cancel context.CancelFunc
	group  *threading.RoutineGroup
}

// NewEngine creates a new delivery engine.
func NewEngine(q *queue.Queue, r Renderer, smtp mail.Config, cfg Config, opts ...Option) *Engine {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RateLimit))
	}

	ctx, cancel := context.WithCancel(context.Background())

	e := &Engine{
		config:      cfg,
		queue:       q,
		renderer:    r,
		smtpConfig:  smtp,
		send:        mail.Send,
		rateLimiter: rate.NewLimiter(limit, 1),
		running:     syncx.NewAtomicBool(),
		ctx:         ctx,
		cancel:      cancel,
		group:       threading.NewRoutineGroup(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start starts the delivery engine with the specified number of workers.
func (e *Engine) Start(workers int) {
	if !e.running.CompareAndSwap(false, true) {
		return
	}

	logx.Infow("Delivery engine started", logx.Field("workers", workers))
	for i := 0; i < workers; i++ {
		e.group.RunSafe(e.worker)
	}
}

// Stop gracefully stops the delivery engine.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	logx.Info("Delivery engine stopping, waiting for workers")
	e.cancel()
	e.group.Wait()
	logx.Info("Delivery engine stopped")
}

func (e *Engine) worker() {
	const (
		minIdle = 100 * time.Millisecond
		maxIdle = 5 * time.Second
	)
	backoff := minIdle

	for {
		if e.processNext(e.ctx) {
			backoff = minIdle
			continue
		}

		e.updateQueueDepth()
		select {
		case <-e.ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxIdle)
	}
}

// processNext handles one job and reports whether there was one.
func (e *Engine) processNext(ctx context.Context) bool {
	job, msg, err := e.queue.Receive(ctx)
	if err != nil {
		if msg != nil {
			// Undecodable body, drop it so it is not received forever.
			logx.WithContext(ctx).Errorf("Dropping malformed job: %v", err)
			_ = e.queue.Delete(ctx, msg)
			return true
		}
		if ctx.Err() == nil {
			logx.WithContext(ctx).Errorf("Receive job: %v", err)
		}
		return false
	}
	if job == nil {
		return false
	}

	e.processJob(ctx, job, msg)
	return true
}

func (e *Engine) processJob(ctx context.Context, job *queue.SendJob, msg *goqite.Message) {
	label := templateLabel(job.TemplateID)
	ctx = logx.ContextWithFields(ctx,
		logx.Field("job_id", job.ID),
		logx.Field("template_id", job.TemplateID),
		logx.Field("attempt", job.Attempts+1),
	)

	defer rescue.RecoverCtx(ctx, func() {
		emailsFailed.Inc(label, "panic")
		_ = e.queue.MarkFailed(ctx, job, msg, errors.New("panic during delivery"))
	})

	logx.WithContext(ctx).Info("Processing test send")
	start := time.Now()

	if err := e.rateLimiter.Wait(ctx); err != nil {
		e.handleError(ctx, job, msg, err)
		return
	}

	m, err := e.renderer.RenderMessage(ctx, job.TemplateID)
	if err != nil {
		e.handleError(ctx, job, msg, fmt.Errorf("render template: %w", err))
		return
	}

	if err := e.send(e.smtpConfig, job.Recipient, m.Subject, m.HTML); err != nil {
		e.handleError(ctx, job, msg, fmt.Errorf("send to %s: %w", job.Recipient, err))
		return
	}

	if err := e.queue.MarkSent(ctx, job, msg); err != nil {
		logx.WithContext(ctx).Errorf("Mark sent: %v", err)
	}
	emailsSent.Inc(label)
	deliveryDuration.ObserveFloat(time.Since(start).Seconds(), label)

	logx.WithContext(ctx).Info("Test send delivered")
}

func (e *Engine) handleError(ctx context.Context, job *queue.SendJob, msg *goqite.Message, err error) {
	job.Attempts++
	label := templateLabel(job.TemplateID)

	permanent := isPermanentFailure(err)
	if permanent || job.Attempts >= job.MaxAttempts {
		reason := "exhausted"
		if permanent {
			reason = "permanent"
		}
		if markErr := e.queue.MarkFailed(ctx, job, msg, err); markErr != nil {
			logx.WithContext(ctx).Errorf("Mark failed: %v", markErr)
		}
		emailsFailed.Inc(label, reason)
		logx.WithContext(ctx).Errorf("Test send failed: %v", err)
		return
	}

	backoff := e.calculateBackoff(job.Attempts)
	if markErr := e.queue.MarkRetry(ctx, job, msg, backoff, err); markErr != nil {
		logx.WithContext(ctx).Errorf("Mark retry: %v", markErr)
		return
	}
	emailsRetried.Inc(label)

	logx.WithContext(ctx).Infof("Test send retrying in %s: %v", backoff, err)
}

func (e *Engine) calculateBackoff(attempts int) time.Duration {
	backoff := e.config.RetryBackoff * time.Duration(math.Pow(2, float64(attempts-1)))
	if backoff > e.config.MaxBackoff {
		return e.config.MaxBackoff
	}
	return backoff
}

// isPermanentFailure reports SMTP 5xx replies and errors marked ErrPermanent.
func isPermanentFailure(err error) bool {
	if errors.Is(err, ErrPermanent) {
		return true
	}

	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return tpErr.Code >= 500 && tpErr.Code < 600
	}

	msg := err.Error()
	for _, code := range []string{"550", "551", "552", "553", "554"} {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}

func (e *Engine) updateQueueDepth() {
	depth, err := e.queue.Depth(e.ctx)
	if err != nil {
		return
	}
	queueDepth.Set(float64(depth), queue.DefaultName)
}

func templateLabel(id int64) string {
	return fmt.Sprintf("%d", id)
}
