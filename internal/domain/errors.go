package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInvalidEmbedding  = errors.New("invalid embedding")
	ErrInvalidHierarchy  = errors.New("invalid hierarchy")

	// Not found errors
	ErrPRNotFound         = errors.New("pull request not found")
	ErrDeveloperNotFound  = errors.New("developer not found")
	ErrReviewerNotFound   = errors.New("reviewer not found")
	ErrDomainNotFound     = errors.New("domain not found")
	ErrSimilarityNotFound = errors.New("similarity data not found")

	// Sync errors
	ErrMalformedRecord    = errors.New("malformed record")
	ErrSourceNotFound     = errors.New("source repository not found")
	ErrSourceUnavailable  = errors.New("source unavailable")
	ErrSyncAlreadyRunning = errors.New("sync already running")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidFilter:      {Code: "INVALID_FILTER", Message: "invalid filter"},
	ErrInvalidPagination:  {Code: "INVALID_PAGINATION", Message: "invalid pagination parameters"},
	ErrInvalidRequest:     {Code: "INVALID_REQUEST", Message: "invalid request"},
	ErrInvalidEmbedding:   {Code: "INVALID_EMBEDDING", Message: "invalid embedding"},
	ErrInvalidHierarchy:   {Code: "INVALID_HIERARCHY", Message: "invalid hierarchy"},
	ErrPRNotFound:         {Code: "NOT_FOUND", Message: "pull request not found"},
	ErrDeveloperNotFound:  {Code: "NOT_FOUND", Message: "developer not found"},
	ErrReviewerNotFound:   {Code: "NOT_FOUND", Message: "reviewer not found"},
	ErrDomainNotFound:     {Code: "NOT_FOUND", Message: "domain not found"},
	ErrSimilarityNotFound: {Code: "NOT_FOUND", Message: "similarity data not found"},
	ErrSyncAlreadyRunning: {Code: "ALREADY_RUNNING", Message: "sync already running"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку.
// Для ошибок валидации в сообщение попадает текст с деталями.
func ToHTTPError(err error) (HTTPError, bool) {
	for target, httpErr := range ErrorMapping {
		if errors.Is(err, target) {
			if isValidationError(target) {
				httpErr.Message = err.Error()
			}
			return httpErr, true
		}
	}
	return HTTPError{}, false
}

func isValidationError(err error) bool {
	switch err {
	case ErrInvalidFilter, ErrInvalidPagination, ErrInvalidRequest, ErrInvalidEmbedding, ErrInvalidHierarchy:
		return true
	}
	return false
}
