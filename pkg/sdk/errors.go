package detailmatch

import "github.com/kailas-cloud/detailmatch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrInvalidLabel      = domain.ErrInvalidLabel
	ErrInvalidVocabulary = domain.ErrInvalidVocabulary
	ErrBatchTooLarge     = domain.ErrBatchTooLarge
)
