package device

import "strings"

// categoryMarkers は分類用のキーワードを優先順に並べたものです。
// SDK 固有のマーカーは汎用のネットワークマーカーより先に評価しないと、
// デバイスライブラリ由来のエラーが NETWORK に誤分類されます。
var categoryMarkers = []struct {
	category Category
	keywords []string
}{
	{CategorySDK, []string{"zk error", "sdk", "device library", "protocol version"}},
	{CategoryAuthentication, []string{"auth", "unauthorized", "forbidden", "invalid credential", "comm key"}},
	{CategoryDeviceUnavailable, []string{"device unavailable", "device busy", "device not found", "no such device", "connection refused"}},
	{CategoryTimeout, []string{"timeout", "timed out", "deadline exceeded"}},
	{CategoryDataCorruption, []string{"malformed", "corrupt", "invalid payload", "unexpected format", "parse"}},
	{CategoryValidation, []string{"validation", "invalid argument", "out of range"}},
	{CategoryNetwork, []string{"network", "connection reset", "broken pipe", "no route", "unreachable", "dial", "eof"}},
}

// Classify は任意の失敗をカテゴリと深刻度に写像します。副作用はありません。
// attempt は 0 始まりの試行番号、maxAttempts は許容される総試行回数です。
func Classify(err error, operation string, attempt, maxAttempts int) *ClassifiedError {
	if err == nil {
		return nil
	}

	if ce, ok := err.(*ClassifiedError); ok {
		return ce
	}

	category := classifyMessage(err.Error())

	return &ClassifiedError{
		Category:  category,
		Severity:  severityFor(category, attempt, maxAttempts),
		Operation: operation,
		Attempt:   attempt,
		Err:       err,
	}
}

func classifyMessage(message string) Category {
	lower := strings.ToLower(message)
	for _, marker := range categoryMarkers {
		for _, kw := range marker.keywords {
			if strings.Contains(lower, kw) {
				return marker.category
			}
		}
	}
	return CategoryUnknown
}

// severityFor はカテゴリと現在の試行回数から深刻度を決定します。
// 認証失敗、および再試行を使い切ったネットワーク系失敗は CRITICAL です。
func severityFor(category Category, attempt, maxAttempts int) Severity {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	exhausted := attempt >= maxAttempts-1

	switch category {
	case CategoryAuthentication:
		return SeverityCritical
	case CategoryNetwork, CategoryTimeout:
		if exhausted {
			return SeverityCritical
		}
		if attempt >= maxAttempts/2 {
			return SeverityHigh
		}
		return SeverityLow
	case CategoryDeviceUnavailable, CategoryDataCorruption, CategorySDK, CategoryValidation:
		return SeverityMedium
	default:
		if attempt >= maxAttempts/2 {
			return SeverityHigh
		}
		return SeverityMedium
	}
}
