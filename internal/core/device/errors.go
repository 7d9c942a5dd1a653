package device

import (
	"errors"
	"fmt"
)

// Category は端末通信の失敗分類です。
type Category string

const (
	CategoryNetwork           Category = "NETWORK"
	CategoryAuthentication    Category = "AUTHENTICATION"
	CategoryTimeout           Category = "TIMEOUT"
	CategoryDeviceUnavailable Category = "DEVICE_UNAVAILABLE"
	CategoryDataCorruption    Category = "DATA_CORRUPTION"
	CategorySDK               Category = "SDK_ERROR"
	CategoryValidation        Category = "VALIDATION_ERROR"
	CategoryUnknown           Category = "UNKNOWN"
)

// Severity は分類済みエラーの深刻度です。
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

var (
	ErrCircuitOpen      = errors.New("device: circuit breaker open")
	ErrNilOperation     = errors.New("device: operation is required")
	ErrMalformedPayload = errors.New("device: malformed punch payload")
)

// ClassifiedError は境界で一度だけ分類された端末エラーです。
// 以降の層は閉じた列挙である Category / Severity のみを参照します。
type ClassifiedError struct {
	Category  Category
	Severity  Severity
	Operation string
	Attempt   int
	Err       error
}

// Error は error インターフェースを実装します。
func (e *ClassifiedError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("device: %s [%s/%s]: %v", e.Operation, e.Category, e.Severity, e.Err)
	}
	return fmt.Sprintf("device: [%s/%s]: %v", e.Category, e.Severity, e.Err)
}

// Unwrap は元のエラーを返します。
func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// Retryable は再試行対象のカテゴリかどうかを返します。
func (e *ClassifiedError) Retryable(retryable []Category) bool {
	for _, c := range retryable {
		if e.Category == c {
			return true
		}
	}
	return false
}
