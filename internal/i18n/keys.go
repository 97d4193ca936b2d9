package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyUnavailable        = "error.unavailable"

	// Batch and code errors.
	ErrKeyInvalidConfiguration = "error.invalid_configuration"
	ErrKeyBatchExists          = "error.batch_exists"
	ErrKeyBatchNotFound        = "error.batch_not_found"
	ErrKeyEmptyBatch           = "error.empty_batch"
	ErrKeyInvalidCode          = "error.invalid_code"
	ErrKeyCodeNotFound         = "error.code_not_found"
	ErrKeyIdempotencyConflict  = "error.idempotency_conflict"
)

// Success message translation keys.
const (
	SuccessKeyBatchGenerated = "success.batch_generated"
	SuccessKeyProfileUpdated = "success.profile_updated"
)
