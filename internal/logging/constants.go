package logging

// Standardized field names for structured logging.
// Using the same keys everywhere keeps the pipeline's log output easy to
// filter when tracing a single document or enrichment batch.
const (
	FieldDocument      = "document"
	FieldModel         = "model"
	FieldPass          = "pass"
	FieldAttempt       = "attempt"
	FieldScore         = "score"
	FieldMissingFields = "missing_fields"
	FieldTransactionID = "transaction_id"
	FieldMerchant      = "merchant"
	FieldCategory      = "category"
	FieldConfidence    = "confidence"
	FieldBatchSize     = "batch_size"
	FieldCount         = "count"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldDuration      = "duration_ms"
)
