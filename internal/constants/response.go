package constants

// Standard Response Field Keys
const (
	// List envelope fields
	ResponseFieldPagination = "pagination"
	ResponseFieldCount      = "count"
	ResponseFieldData       = "data"

	// Error envelope fields
	ResponseFieldStatus  = "status"
	ResponseFieldMessage = "message"
	ResponseFieldError   = "error"
	ResponseFieldStack   = "stack"
	ResponseFieldErrors  = "errors"
)

// Response Status Values
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// BuildListResponse shapes the uniform list envelope:
// { pagination, count, data }.
func BuildListResponse(pagination any, count int, data any) map[string]any {
	return map[string]any{
		ResponseFieldPagination: pagination,
		ResponseFieldCount:      count,
		ResponseFieldData:       data,
	}
}

// BuildDataResponse shapes the single-entity envelope: { data }.
func BuildDataResponse(data any) map[string]any {
	return map[string]any{
		ResponseFieldData: data,
	}
}

// BuildErrorResponse shapes the runtime error envelope: { status, message }.
func BuildErrorResponse(status, message string) map[string]any {
	return map[string]any{
		ResponseFieldStatus:  status,
		ResponseFieldMessage: message,
	}
}

// BuildDebugErrorResponse adds the underlying error and stack trace.
// Only used when the app runs with debug enabled.
func BuildDebugErrorResponse(status, message, errDetail, stack string) map[string]any {
	return map[string]any{
		ResponseFieldStatus:  status,
		ResponseFieldMessage: message,
		ResponseFieldError:   errDetail,
		ResponseFieldStack:   stack,
	}
}

// BuildValidationResponse shapes the field-level validation envelope:
// { errors: [...] }.
func BuildValidationResponse(messages []string) map[string]any {
	return map[string]any{
		ResponseFieldErrors: messages,
	}
}

// BuildSuccessResponse shapes a plain acknowledgement: { status, message }.
func BuildSuccessResponse(message string) map[string]any {
	return map[string]any{
		ResponseFieldStatus:  StatusSuccess,
		ResponseFieldMessage: message,
	}
}
