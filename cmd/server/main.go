package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"resume-analyzer/internal/analysis"
	"resume-analyzer/internal/app"
	"resume-analyzer/internal/document"
	"resume-analyzer/internal/httputil"
	"resume-analyzer/internal/inference"
)

type analyzeURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Build(ctx)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	defer deps.Cache.Close()

	r := httputil.NewRouter(deps.Log)
	r.Post("/api/resume/analyze", analyzeHandler(deps))
	r.Post("/api/resume/analyze-url", analyzeURLHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", deps.Config.Port),
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func analyzeHandler(deps app.Deps) http.HandlerFunc {
	maxSize := deps.Config.MaxDocumentSize

	return func(w http.ResponseWriter, r *http.Request) {
		// Reject oversized uploads before parsing the form
		if r.ContentLength > maxSize+4096 {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxSize), nil, http.StatusRequestEntityTooLarge)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			httputil.Fail(deps.Log, w, "file is required", err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" && strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
			contentType = document.MediaTypePDF
		}

		content, err := io.ReadAll(file)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to read file", err, http.StatusInternalServerError)
			return
		}

		res, err := deps.Analyzer.Analyze(r.Context(), document.New(content, contentType))
		if err != nil {
			writeAnalysisError(deps.Log, w, err)
			return
		}
		writeResult(w, res)
	}
}

func analyzeURLHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeURLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		res, err := deps.Analyzer.AnalyzeURL(r.Context(), req.URL)
		if err != nil {
			writeAnalysisError(deps.Log, w, err)
			return
		}
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res analysis.Result) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"analysis_id":  uuid.New().String(),
		"score":        res.Score,
		"improvements": res.Improvements,
		"strengths":    res.Strengths,
	})
}

// writeAnalysisError maps the analysis error taxonomy to HTTP statuses. The
// client sees a short retryable message; full detail goes to the log.
func writeAnalysisError(log *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, document.ErrUnsupportedMediaType):
		httputil.Fail(log, w, "only PDF documents are supported", err, http.StatusUnsupportedMediaType)
	case errors.Is(err, document.ErrPayloadTooLarge):
		httputil.Fail(log, w, "document exceeds the size limit", err, http.StatusRequestEntityTooLarge)
	case errors.Is(err, document.ErrEncodingFailure):
		httputil.Fail(log, w, "document could not be read", err, http.StatusUnprocessableEntity)
	case errors.Is(err, analysis.ErrFetchFailure):
		httputil.Fail(log, w, "document could not be fetched; please retry", err, http.StatusBadGateway)
	case errors.Is(err, analysis.ErrMalformedResponse), errors.Is(err, analysis.ErrSchemaViolation):
		httputil.Fail(log, w, "analysis produced an invalid result; please retry", err, http.StatusBadGateway)
	case errors.Is(err, inference.ErrNotInitialized):
		httputil.Fail(log, w, "analysis service is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, inference.ErrRemoteInvocation):
		httputil.Fail(log, w, "analysis failed; please retry", err, http.StatusBadGateway)
	default:
		httputil.Fail(log, w, "analysis failed", err, http.StatusInternalServerError)
	}
}
