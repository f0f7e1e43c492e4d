package domain

// Result is what every ledger operation hands back to its caller.
// Err keeps the classified error for callers that branch on it; it is never serialised.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Ok builds a successful result.
func Ok(message string) Result {
	return Result{Success: true, Message: message}
}
