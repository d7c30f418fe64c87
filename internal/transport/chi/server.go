package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/detailmatch/internal/domain"
	dombatch "github.com/kailas-cloud/detailmatch/internal/domain/batch"
	dommatch "github.com/kailas-cloud/detailmatch/internal/domain/match"
	"github.com/kailas-cloud/detailmatch/internal/domain/query"
	healthuc "github.com/kailas-cloud/detailmatch/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// CatalogService is the catalog use case consumed by the server.
type CatalogService interface {
	Add(ctx context.Context, label string) (bool, error)
	Import(ctx context.Context, labels []string) []dombatch.Result
	Remove(ctx context.Context, label string) error
	List(ctx context.Context) ([]string, error)
}

// MatchService is the match use case consumed by the server.
type MatchService interface {
	FindBest(ctx context.Context, q query.Query) (dommatch.Result, error)
}

// HealthService is the health use case consumed by the server.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// Server implements ServerInterface.
type Server struct {
	catalog       CatalogService
	match         MatchService
	health        HealthService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(catalog CatalogService, match MatchService, health HealthService, logger *zap.Logger) *Server {
	s := &Server{
		catalog: catalog,
		match:   match,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorResponseCodeDetailNotFound),
	}
	return s
}

// SearchDetail handles POST /search.
func (s *Server) SearchDetail(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.match.FindBest(r.Context(), query.New(req.HostElement, req.AdjacentElement, req.Exposure))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SearchResult{
		SuggestedDetail: res.Suggested(),
		Confidence:      res.Confidence(),
		Reason:          res.Reason(),
	})
}

// UploadDetail handles POST /upload.
func (s *Server) UploadDetail(w http.ResponseWriter, r *http.Request) {
	var req DetailUpload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	added, err := s.catalog.Add(r.Context(), req.DetailName)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if !added {
		writeJSON(w, http.StatusOK, StatusResponse{
			Status:  StatusResponseStatusExists,
			Message: "Detail already exists",
		})
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:  StatusResponseStatusSuccess,
		Message: "Added " + req.DetailName,
	})
}

// UploadDetails handles POST /upload/batch.
func (s *Server) UploadDetails(w http.ResponseWriter, r *http.Request) {
	var req DetailBatchUpload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.DetailNames) == 0 {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeValidationFailed, "detail_names must not be empty")
		return
	}

	results := s.catalog.Import(r.Context(), req.DetailNames)

	items := make([]BatchResultItem, len(results))
	for i, res := range results {
		items[i] = batchResultToAPI(res)
	}
	sum := dombatch.Summarize(results)

	writeJSON(w, http.StatusOK, BatchResponse{
		Items:  items,
		Added:  sum.Added,
		Exists: sum.Exists,
		Failed: sum.Failed,
	})
}

// DeleteDetail handles DELETE /delete.
func (s *Server) DeleteDetail(w http.ResponseWriter, r *http.Request, params DeleteDetailParams) {
	if err := s.catalog.Remove(r.Context(), params.DetailName); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		Status:  StatusResponseStatusSuccess,
		Message: "Deleted",
	})
}

// ListDetails handles GET /list.
func (s *Server) ListDetails(w http.ResponseWriter, r *http.Request) {
	labels, err := s.catalog.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, labels)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrInvalidLabel,
		domain.ErrBatchTooLarge,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// validationHandler reports label validation failures with their detail,
// which only ever describes the submitted input.
func validationHandler(w http.ResponseWriter, err error, _ string) bool {
	if !errors.Is(err, domain.ErrInvalidLabel) && !errors.Is(err, domain.ErrBatchTooLarge) {
		return false
	}
	writeError(w, http.StatusBadRequest, ErrorResponseCodeValidationFailed, err.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}

func batchResultToAPI(r dombatch.Result) BatchResultItem {
	item := BatchResultItem{
		DetailName: r.Label(),
		Status:     string(r.Status()),
	}
	if r.Err() != nil {
		code := ErrorResponseCodeInternalError
		msg := safeDomainMessage(r.Err())
		if errors.Is(r.Err(), domain.ErrInvalidLabel) || errors.Is(r.Err(), domain.ErrBatchTooLarge) {
			code = ErrorResponseCodeValidationFailed
			msg = r.Err().Error()
		}
		item.Error = &ErrorResponse{Code: code, Message: msg}
	}
	return item
}
