package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"resume-analyzer/internal/cache"
	"resume-analyzer/internal/document"
	"resume-analyzer/internal/inference"
)

// Analyzer is the externally consumed entry point of the pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, doc document.Document) (Result, error)
	AnalyzeURL(ctx context.Context, rawURL string) (Result, error)
}

// ServiceConfig tunes a Service. Zero values pick defaults.
type ServiceConfig struct {
	MaxDocumentSize int64
	CacheTTL        time.Duration
	FetchTimeout    time.Duration
}

// Service runs the analysis pipeline: input validation, encoding, one
// inference call, response normalization. Each Analyze call is one logical
// task with no internal retries; cancellation propagates through ctx.
type Service struct {
	llm     inference.Client
	cache   cache.Cache
	log     *slog.Logger
	maxSize int64
	ttl     time.Duration
	httpc   *http.Client
}

// NewService wires the facade. llm may be nil when credentials are absent;
// every call then fails with inference.ErrNotInitialized.
func NewService(cfg ServiceConfig, llm inference.Client, cch cache.Cache, log *slog.Logger) *Service {
	if cfg.MaxDocumentSize <= 0 {
		cfg.MaxDocumentSize = document.DefaultMaxSize
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cch == nil {
		cch = cache.NewNoOpCache()
	}
	return &Service{
		llm:     llm,
		cache:   cch,
		log:     log,
		maxSize: cfg.MaxDocumentSize,
		ttl:     cfg.CacheTTL,
		httpc:   &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// Analyze validates the document, then runs encode -> prompt -> inference ->
// normalize. The first failure propagates; no partial results are returned
// and no remote call is issued when validation fails.
func (s *Service) Analyze(ctx context.Context, doc document.Document) (Result, error) {
	if s.llm == nil {
		return Result{}, inference.ErrNotInitialized
	}
	if err := s.validate(doc); err != nil {
		return Result{}, err
	}

	key := cache.Key(doc.Data)
	if res, ok := s.cachedResult(ctx, key); ok {
		return res, nil
	}

	payload, err := document.Encode(doc)
	if err != nil {
		return Result{}, err
	}

	raw, err := s.llm.Generate(ctx, Compose(), payload, ResultSchema)
	if err != nil {
		return Result{}, err
	}

	res, err := Normalize(raw)
	if err != nil {
		// raw model text is logged for operability, never returned
		s.log.Error("response normalization failed", "err", err, "raw", truncate(raw, 2048))
		return Result{}, err
	}

	s.storeResult(ctx, key, res)
	s.log.Info("analysis complete",
		"score", res.Score,
		"improvements", len(res.Improvements),
		"strengths", len(res.Strengths),
		"pages", document.PageCount(doc.Data),
	)
	return res, nil
}

// AnalyzeURL fetches a remote document, validates its declared media type,
// and runs the same pipeline. Fetch failures surface before any inference
// call is attempted.
func (s *Service) AnalyzeURL(ctx context.Context, rawURL string) (Result, error) {
	if s.llm == nil {
		return Result{}, inference.ErrNotInitialized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("%w: status %d", ErrFetchFailure, resp.StatusCode)
	}

	mediaType := document.MediaTypePDF
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return Result{}, fmt.Errorf("%w: content type %q", document.ErrUnsupportedMediaType, ct)
		}
		mediaType = parsed
	}

	// read one byte past the ceiling so oversized bodies are rejected by
	// Analyze without buffering the whole response
	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSize+1))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}
	return s.Analyze(ctx, document.New(data, mediaType))
}

func (s *Service) validate(doc document.Document) error {
	if doc.MediaType != document.MediaTypePDF {
		return fmt.Errorf("%w: %q", document.ErrUnsupportedMediaType, doc.MediaType)
	}
	if doc.Size() > s.maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", document.ErrPayloadTooLarge, doc.Size(), s.maxSize)
	}
	if !document.IsPDF(doc.Data) {
		return fmt.Errorf("%w: content is not a PDF", document.ErrUnsupportedMediaType)
	}
	return nil
}

func (s *Service) cachedResult(ctx context.Context, key string) (Result, bool) {
	data, err := s.cache.GetResult(ctx, key)
	if err != nil {
		s.log.Warn("cache read failed", "err", err)
		return Result{}, false
	}
	if data == nil {
		return Result{}, false
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		s.log.Warn("failed to unmarshal cached result", "err", err)
		return Result{}, false
	}
	s.log.Info("cache hit", "key", key)
	return res, true
}

func (s *Service) storeResult(ctx context.Context, key string, res Result) {
	if s.ttl <= 0 {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		s.log.Warn("failed to marshal result, skipping cache", "err", err)
		return
	}
	if err := s.cache.SetResult(ctx, key, data, s.ttl); err != nil {
		// cache write failure never fails the request
		s.log.Warn("failed to cache result", "err", err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

var _ Analyzer = (*Service)(nil)
