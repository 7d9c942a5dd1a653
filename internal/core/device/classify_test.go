package device

import (
	"errors"
	"testing"
)

func TestClassify_Categories(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		message  string
		expected Category
	}{
		{"network reset", "read tcp: connection reset by peer", CategoryNetwork},
		{"dial failure", "dial tcp 192.168.1.10:4370: no route to host", CategoryNetwork},
		{"timeout", "operation timed out after 10s", CategoryTimeout},
		{"deadline", "context deadline exceeded", CategoryTimeout},
		{"auth", "unauthorized: invalid comm key", CategoryAuthentication},
		{"device busy", "device busy, try again later", CategoryDeviceUnavailable},
		{"refused", "connect: connection refused", CategoryDeviceUnavailable},
		{"corruption", "malformed attendance record at offset 42", CategoryDataCorruption},
		{"validation", "validation failed: clock out before clock in", CategoryValidation},
		{"unknown", "something inexplicable happened", CategoryUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cerr := Classify(errors.New(tc.message), "fetchPunches", 0, 3)
			if cerr.Category != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, cerr.Category)
			}
		})
	}
}

func TestClassify_SDKBeforeNetwork(t *testing.T) {
	t.Parallel()

	// SDK 固有のマーカーを含むメッセージはネットワーク語彙が混ざっていても
	// SDK_ERROR に分類されること。
	cerr := Classify(errors.New("zk error 4: network packet dropped by device library"), "connect", 0, 3)
	if cerr.Category != CategorySDK {
		t.Fatalf("expected SDK_ERROR, got %s", cerr.Category)
	}
}

func TestClassify_Severity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		message  string
		attempt  int
		max      int
		expected Severity
	}{
		{"auth always critical", "unauthorized", 0, 3, SeverityCritical},
		{"network first attempt low", "connection reset", 0, 3, SeverityLow},
		{"network past half budget high", "connection reset", 1, 3, SeverityHigh},
		{"network exhausted critical", "connection reset", 2, 3, SeverityCritical},
		{"timeout exhausted critical", "timed out", 2, 3, SeverityCritical},
		{"corruption medium", "malformed payload", 2, 3, SeverityMedium},
		{"device unavailable medium", "device busy", 0, 3, SeverityMedium},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cerr := Classify(errors.New(tc.message), "op", tc.attempt, tc.max)
			if cerr.Severity != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, cerr.Severity)
			}
		})
	}
}

func TestClassify_PassThrough(t *testing.T) {
	t.Parallel()

	original := &ClassifiedError{Category: CategoryDataCorruption, Severity: SeverityMedium}
	if got := Classify(original, "op", 1, 3); got != original {
		t.Fatal("expected already-classified error to pass through unchanged")
	}
}

func TestClassify_NilError(t *testing.T) {
	t.Parallel()

	if Classify(nil, "op", 0, 3) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestClassifiedError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	cerr := Classify(inner, "op", 0, 3)

	if !errors.Is(cerr, inner) {
		t.Fatal("expected errors.Is to reach wrapped error")
	}
}
