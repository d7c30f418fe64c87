package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ErrorResponseCode is the machine-readable error code in ErrorResponse.
type ErrorResponseCode string

// Error codes.
const (
	ErrorResponseCodeBadRequest       ErrorResponseCode = "bad_request"
	ErrorResponseCodeValidationFailed ErrorResponseCode = "validation_failed"
	ErrorResponseCodeDetailNotFound   ErrorResponseCode = "detail_not_found"
	ErrorResponseCodeUnauthorized     ErrorResponseCode = "unauthorized"
	ErrorResponseCodeInternalError    ErrorResponseCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// SearchRequest describes the junction to match. Field names follow the
// Revit plugin payload.
type SearchRequest struct {
	HostElement     string `json:"host_element"`
	AdjacentElement string `json:"adjacent_element"`
	Exposure        string `json:"exposure"`
}

// SearchResult is the match outcome.
type SearchResult struct {
	SuggestedDetail string  `json:"suggested_detail"`
	Confidence      float64 `json:"confidence"`
	Reason          string  `json:"reason"`
}

// DetailUpload adds one label.
type DetailUpload struct {
	DetailName string `json:"detail_name"`
}

// DetailBatchUpload adds several labels in order.
type DetailBatchUpload struct {
	DetailNames []string `json:"detail_names"`
}

// StatusResponseStatus is the outcome of an upload or delete.
type StatusResponseStatus string

// Upload/delete outcomes.
const (
	StatusResponseStatusSuccess StatusResponseStatus = "success"
	StatusResponseStatusExists  StatusResponseStatus = "exists"
)

// StatusResponse is returned by upload and delete.
type StatusResponse struct {
	Status  StatusResponseStatus `json:"status"`
	Message string               `json:"message"`
}

// BatchResultItem is the outcome for one label of a batch upload.
type BatchResultItem struct {
	DetailName string         `json:"detail_name"`
	Status     string         `json:"status"`
	Error      *ErrorResponse `json:"error,omitempty"`
}

// BatchResponse is returned by a batch upload.
type BatchResponse struct {
	Items  []BatchResultItem `json:"items"`
	Added  int               `json:"added"`
	Exists int               `json:"exists"`
	Failed int               `json:"failed"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// DeleteDetailParams defines parameters for DeleteDetail.
type DeleteDetailParams struct {
	DetailName string `form:"detail_name" json:"detail_name"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Match a junction against the catalog
	// (POST /search)
	SearchDetail(w http.ResponseWriter, r *http.Request)
	// Add a detail label
	// (POST /upload)
	UploadDetail(w http.ResponseWriter, r *http.Request)
	// Add several detail labels
	// (POST /upload/batch)
	UploadDetails(w http.ResponseWriter, r *http.Request)
	// Remove a detail label
	// (DELETE /delete)
	DeleteDetail(w http.ResponseWriter, r *http.Request, params DeleteDetailParams)
	// List detail labels in catalog order
	// (GET /list)
	ListDetails(w http.ResponseWriter, r *http.Request)
	// Component health
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// Prometheus exposition
	// (GET /metrics)
	Metrics(w http.ResponseWriter, r *http.Request)
}

// MiddlewareFunc wraps a single operation handler.
type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts requests to handler calls, binding parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, h http.HandlerFunc) {
	var handler http.Handler = h
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

// SearchDetail operation middleware.
func (siw *ServerInterfaceWrapper) SearchDetail(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.SearchDetail)
}

// UploadDetail operation middleware.
func (siw *ServerInterfaceWrapper) UploadDetail(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.UploadDetail)
}

// UploadDetails operation middleware.
func (siw *ServerInterfaceWrapper) UploadDetails(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.UploadDetails)
}

// DeleteDetail operation middleware.
func (siw *ServerInterfaceWrapper) DeleteDetail(w http.ResponseWriter, r *http.Request) {
	var params DeleteDetailParams

	// ------------- Required query parameter "detail_name" -------------
	err := runtime.BindQueryParameter("form", true, true, "detail_name", r.URL.Query(), &params.DetailName)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "detail_name", Err: err})
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteDetail(w, r, params)
	})
}

// ListDetails operation middleware.
func (siw *ServerInterfaceWrapper) ListDetails(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.ListDetails)
}

// HealthCheck operation middleware.
func (siw *ServerInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.HealthCheck)
}

// Metrics operation middleware.
func (siw *ServerInterfaceWrapper) Metrics(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.Metrics)
}

// InvalidParamFormatError reports a parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerWithOptions registers every operation on the base router.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/search", wrapper.SearchDetail)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/upload", wrapper.UploadDetail)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/upload/batch", wrapper.UploadDetails)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/delete", wrapper.DeleteDetail)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/list", wrapper.ListDetails)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/health", wrapper.HealthCheck)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/metrics", wrapper.Metrics)
	})

	return r
}
