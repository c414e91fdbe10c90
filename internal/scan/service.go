// Package scan implements the inbox scan pipeline: fetch recent mail, filter
// it down to job-related messages, store references, link them to existing
// applications and auto-create applications from confirmation subjects.
package scan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobtracker/internal/config"
	"jobtracker/pkg/domain"
	"jobtracker/pkg/logger"
	"jobtracker/pkg/mailbox"
	"jobtracker/pkg/metrics"
	"jobtracker/pkg/storage"
)

// ProgressFunc receives a stage name and a human-readable detail line at each
// step of a running scan. Implementations must not block.
type ProgressFunc func(stage, detail string)

// Result carries the counters of one completed scan.
type Result struct {
	// Fetched is how many messages the mailbox returned.
	Fetched int `json:"fetched"`
	// Matched is how many of them looked job-related.
	Matched int `json:"matched"`
	// Inserted is how many new email references were stored.
	Inserted int `json:"inserted"`
	// Skipped is how many references were dropped as duplicates.
	Skipped int `json:"skipped"`
	// ApplicationsCreated is how many applications were auto-created.
	ApplicationsCreated int `json:"applications_created"`
}

// Options configure how scans run and how background scan jobs are enqueued.
// These settings are typically derived from application configuration.
type Options struct {
	// Mailbox names the inbox being scanned; it keys unique background jobs.
	Mailbox string
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing a scan job before marking it failed.
	MaxAttempts int
	// RateLimitWindow is the minimum time between two scans. Both the inline
	// and the background trigger paths share it.
	RateLimitWindow time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Mailbox:         cfg.Gmail.User,
		MaxAttempts:     cfg.Scanner.MaxAttempts,
		RateLimitWindow: cfg.Scanner.RateLimitWindow,
	}
}

// service is the concrete implementation of the Scanner interface. It
// coordinates the mailbox client, the storage layer and the rate limiter.
type service struct {
	options Options
	storage storage.Storage
	mailbox mailbox.Client
	limiter *Limiter
}

// New creates a Scanner backed by the provided storage and mailbox client.
func New(store storage.Storage, mb mailbox.Client, options Options) Scanner {
	return &service{
		options: options,
		storage: store,
		mailbox: mb,
		limiter: NewLimiter(options.RateLimitWindow),
	}
}

// Run executes one scan end to end, emitting progress through the callback.
// It takes the shared rate-limit slot; inside the window it fails fast with a
// RateLimitedError before touching the mailbox or the database.
func (s *service) Run(ctx context.Context, progress ProgressFunc) (Result, error) {
	if retryAfter, ok := s.limiter.Acquire(); !ok {
		return Result{}, &RateLimitedError{RetryAfter: retryAfter}
	}

	emit := func(stage, detail string) {
		if progress != nil {
			progress(stage, detail)
		}
	}

	// the audit record is best-effort: a failure to write it never blocks the scan
	var runID domain.ScanRunID
	if run, err := s.storage.BeginScanRun(ctx); err != nil {
		logger.Warn(ctx, "could not record scan run start", zap.Error(err))
	} else {
		runID = run.ID
	}

	start := time.Now()
	result, err := s.scan(ctx, emit)
	if err != nil {
		if runID != 0 {
			if failErr := s.storage.FailScanRun(ctx, runID, err.Error()); failErr != nil {
				logger.Warn(ctx, "could not record scan run failure", zap.Error(failErr))
			}
		}
		metrics.ScansFinished.WithLabelValues("failed").Inc()

		return Result{}, err
	}

	if runID != 0 {
		err := s.storage.CompleteScanRun(ctx, runID, result.Fetched, result.Inserted, result.ApplicationsCreated)
		if err != nil {
			logger.Warn(ctx, "could not record scan run completion", zap.Error(err))
		}
	}

	metrics.ScansFinished.WithLabelValues("completed").Inc()
	metrics.ScanDuration.Observe(time.Since(start).Seconds())
	metrics.EmailsInserted.Add(float64(result.Inserted))
	metrics.ApplicationsCreated.Add(float64(result.ApplicationsCreated))

	logger.Info(ctx, "inbox scan completed",
		zap.Int("fetched", result.Fetched),
		zap.Int("matched", result.Matched),
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
		zap.Int("applications_created", result.ApplicationsCreated))

	return result, nil
}

func (s *service) scan(ctx context.Context, emit ProgressFunc) (Result, error) {
	var result Result

	emit("fetching", "Connecting to mailbox…")
	messages, err := s.mailbox.FetchRecent(ctx)
	if err != nil {
		return result, fmt.Errorf("could not fetch messages: %w", err)
	}
	result.Fetched = len(messages)
	emit("fetching", fmt.Sprintf("Fetched %d emails", len(messages)))

	emit("filtering", "Filtering for job-related emails…")
	var emails []domain.Email
	for _, msg := range messages {
		if !matchesKeywords(msg.Subject, msg.Snippet) {
			continue
		}
		emails = append(emails, domain.Email{
			MessageID:  msg.ID,
			Subject:    msg.Subject,
			Sender:     msg.Sender,
			Snippet:    msg.Snippet,
			ReceivedAt: msg.ReceivedAt,
		})
	}
	result.Matched = len(emails)
	emit("filtering", fmt.Sprintf("Found %d job-related emails", len(emails)))

	emit("saving", fmt.Sprintf("Saving %d emails to database…", len(emails)))
	stored, err := s.storage.StoreEmails(ctx, emails...)
	if err != nil {
		return result, fmt.Errorf("could not store emails: %w", err)
	}
	result.Inserted = stored.Inserted
	result.Skipped = stored.Skipped
	emit("saving", fmt.Sprintf("Saved %d new emails (%d duplicates skipped)", stored.Inserted, stored.Skipped))

	// linking and auto-creation share one transaction so a partial run never
	// leaves links pointing at applications that were rolled back
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		emit("matching", "Matching emails to existing applications…")
		if err := s.matchUnlinked(ctx, tx); err != nil {
			return err
		}

		emit("creating", "Auto-creating applications from email subjects…")
		created, err := s.autoCreate(ctx, tx)
		if err != nil {
			return err
		}
		result.ApplicationsCreated = created
		emit("creating", fmt.Sprintf("Created %d new applications", created))

		return nil
	}); err != nil {
		return result, fmt.Errorf("could not link emails: %w", err)
	}

	emit("done", fmt.Sprintf("Scan complete — %d emails · %d applications",
		result.Inserted, result.ApplicationsCreated))

	return result, nil
}

// matchUnlinked links unlinked email references to existing applications via
// the heuristic matcher.
func (s *service) matchUnlinked(ctx context.Context, tx storage.AllStorage) error {
	unlinked, err := tx.UnlinkedEmails(ctx)
	if err != nil {
		return fmt.Errorf("could not load unlinked emails: %w", err)
	}
	if len(unlinked) == 0 {
		return nil
	}

	apps, err := tx.AllApplications(ctx)
	if err != nil {
		return fmt.Errorf("could not load applications: %w", err)
	}
	if len(apps) == 0 {
		return nil
	}

	var linked int
	for _, email := range unlinked {
		best := matchApplication(email, apps)
		if best == nil {
			continue
		}
		if err := s.link(ctx, tx, email, best.ID); err != nil {
			return err
		}
		linked++
	}
	if linked > 0 {
		logger.Info(ctx, "linked emails to existing applications", zap.Int("linked", linked))
	}

	return nil
}

// autoCreate parses applications out of the emails still unlinked after
// matching, deduplicating by lower-cased (company, role). Company-only
// parses borrow a role from sibling subjects of the same company when one
// can be extracted.
func (s *service) autoCreate(ctx context.Context, tx storage.AllStorage) (int, error) {
	stillUnlinked, err := tx.UnlinkedEmails(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not load unlinked emails: %w", err)
	}
	if len(stillUnlinked) == 0 {
		return 0, nil
	}

	existingKeys, err := tx.ApplicationKeys(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not load application keys: %w", err)
	}
	apps, err := tx.AllApplications(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not load applications: %w", err)
	}

	// sibling subjects per company, for role inference on company-only parses
	companySubjects := make(map[string][]string)
	for _, email := range stillUnlinked {
		if parsed := parseApplication(email); parsed != nil && parsed.Company != "" {
			key := strings.ToLower(parsed.Company)
			companySubjects[key] = append(companySubjects[key], email.Subject)
		}
	}

	var created int
	for _, email := range stillUnlinked {
		parsed := parseApplication(email)
		if parsed == nil {
			continue
		}

		if parsed.Role == "" {
			var siblings []string
			for _, subject := range companySubjects[strings.ToLower(parsed.Company)] {
				if subject != email.Subject {
					siblings = append(siblings, subject)
				}
			}
			// company-only applications are fine when no role can be inferred
			parsed.Role = extractRoleFromSubjects(siblings)
		}

		key := storage.ApplicationKey{
			Company: strings.ToLower(parsed.Company),
			Role:    strings.ToLower(parsed.Role),
		}

		if appID, ok := existingKeys[key]; ok {
			// an application with this key already exists; trust the matcher
			// to confirm before linking
			if best := matchApplication(email, apps); best != nil {
				appID = best.ID
				if err := s.link(ctx, tx, email, appID); err != nil {
					return created, err
				}
			}

			continue
		}

		receivedAt := email.ReceivedAt
		app, err := tx.StoreApplication(ctx, domain.Application{
			CompanyName: parsed.Company,
			RoleTitle:   parsed.Role,
			Status:      parsed.Status,
			Source:      "Gmail",
			AppliedAt:   &receivedAt,
		})
		if err != nil {
			return created, fmt.Errorf("could not create application: %w", err)
		}
		apps = append(apps, *app)
		existingKeys[key] = app.ID

		if err := s.link(ctx, tx, email, app.ID); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func (s *service) link(ctx context.Context,
	tx storage.AllStorage,
	email domain.Email,
	appID domain.ApplicationID) error {
	if _, err := tx.LinkEmail(ctx, email.ID, appID); err != nil {
		return fmt.Errorf("could not link email: %w", err)
	}
	if err := tx.TouchLastEmailAt(ctx, appID, email.ReceivedAt); err != nil {
		return fmt.Errorf("could not update last email time: %w", err)
	}

	return nil
}

// Enqueue submits a background scan job. It reports false when a matching job
// is already queued. Inside the rate window it fails fast with a
// RateLimitedError without enqueueing anything.
func (s *service) Enqueue(ctx context.Context) (bool, error) {
	if wait := s.limiter.RetryAfter(); wait > 0 {
		return false, &RateLimitedError{RetryAfter: wait}
	}

	added, err := s.storage.AddJob(ctx, JobArgs{
		Mailbox:         s.options.Mailbox,
		maxAttempts:     s.options.MaxAttempts,
		uniqueJobPeriod: s.options.RateLimitWindow,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not add scan job: %w", err)
	}

	return added, nil
}

// History returns the most recent scan runs, newest first.
func (s *service) History(ctx context.Context, limit uint) ([]domain.ScanRun, error) {
	if limit == 0 {
		limit = 20
	}

	runs, err := s.storage.RecentScanRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not load scan history: %w", err)
	}

	return runs, nil
}
