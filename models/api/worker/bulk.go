package workerapimodels

// RowError describes one failed row of a bulk operation.
type RowError struct {
	Row     int    `json:"row"` // 1-based data row index, header excluded
	Key     string `json:"key"` // identifying value of the row (email, worker code, ...)
	Message string `json:"message"`
}

// BulkResult is the aggregate outcome of a bulk operation. A batch always
// runs to the end; failed rows are listed, the rest are committed.
type BulkResult struct {
	SuccessCount int        `json:"success_count"`
	SkippedCount int        `json:"skipped_count,omitempty"`
	Errors       []RowError `json:"errors"`
}

type BulkCreateRow struct {
	Email     string `json:"email"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Phone     string `json:"phone"`
}

type BulkCreateRequest struct {
	Rows []BulkCreateRow `json:"rows"`
}

type BankUpdateRow struct {
	WorkerID    string `json:"worker_id"`   // explicit identifier, preferred
	WorkerCode  string `json:"worker_code"` // human-facing fallback
	BankName    string `json:"bank_name"`
	BankBranch  string `json:"bank_branch"`
	AccountType string `json:"account_type"`
	AccountNo   string `json:"account_no"`
	HolderName  string `json:"holder_name"`
}

func (r BankUpdateRow) GetKey() string {
	if r.WorkerID != "" {
		return r.WorkerID
	}
	return r.WorkerCode
}

type BankUpdateRequest struct {
	Rows []BankUpdateRow `json:"rows"`
}
