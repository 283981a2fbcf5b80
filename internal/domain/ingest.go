package domain

// IngestResult reports a price-adjustment upload: how many rows were
// persisted across all sheets and the non-fatal per-sheet errors. A failed
// sheet never aborts the batch.
type IngestResult struct {
	ProcessedRecords int      `json:"processedRecords"`
	Errors           []string `json:"errors,omitempty"`
}

// MetricUploadResult reports a daily-metric bulk upload. Row-level
// validation failures are collected; the whole batch is rejected only when
// the error rate crosses the configured threshold.
type MetricUploadResult struct {
	ProcessedRows int      `json:"processedRows"`
	SkippedRows   int      `json:"skippedRows"`
	Errors        []string `json:"errors,omitempty"`
}
