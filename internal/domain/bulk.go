package domain

import "fmt"

// BulkResult accumulates per-item outcomes of a bulk operation.
// A failed item never aborts the batch.
type BulkResult struct {
	SuccessCount int
	FailCount    int
	Errors       []string
}

// Succeed records a successful item.
func (r *BulkResult) Succeed() {
	r.SuccessCount++
}

// Fail records a failed item with its message.
func (r *BulkResult) Fail(msg string) {
	r.FailCount++
	r.Errors = append(r.Errors, msg)
}

// Total returns the number of processed items.
func (r *BulkResult) Total() int {
	return r.SuccessCount + r.FailCount
}

// Message renders the summary line for op.
func (r *BulkResult) Message(op string) string {
	return fmt.Sprintf("Bulk %s completed: %d successful, %d failed", op, r.SuccessCount, r.FailCount)
}
