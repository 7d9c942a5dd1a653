package terminal

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/ogurasousui/timeclock/internal/core/device"
)

// startFakeDevice はリクエストを 1 行読み、与えられた行をそのまま返す
// TCP サーバーを起動します。
func startFakeDevice(t *testing.T, responses []string) (string, int) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	t.Cleanup(func() { listener.Close() })

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		reader := bufio.NewReader(conn)
		if _, err := reader.ReadString('\n'); err != nil {
			return
		}

		for _, line := range responses {
			if _, err := conn.Write([]byte(line + "\n")); err != nil {
				return
			}
		}
	}()

	host, portStr, err := net.SplitHostPort(listener.Addr().String())
	if err != nil {
		t.Fatalf("failed to split addr: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("failed to parse port: %v", err)
	}
	return host, port
}

func TestDialerFetchPunches(t *testing.T) {
	t.Parallel()

	record, _ := json.Marshal(logLine{
		EmployeeCode:  "EMP001",
		Timestamp:     "2024-06-03T09:00:00Z",
		TransactionID: "tx-1",
		Type:          "in",
	})
	host, port := startFakeDevice(t, []string{string(record), `{"eof":true}`})

	conn, err := NewDialer().Connect(context.Background(), host, port, 2*time.Second)
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	defer conn.Disconnect()

	punches, err := conn.FetchPunches(context.Background(),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FetchPunches returned error: %v", err)
	}

	if len(punches) != 1 {
		t.Fatalf("expected 1 punch, got %d", len(punches))
	}
	want := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	if punches[0].EmployeeCode != "EMP001" || !punches[0].Timestamp.Equal(want) || punches[0].Type != device.PunchIn {
		t.Fatalf("unexpected punch %+v", punches[0])
	}
}

func TestDialerFetchPunches_DeviceError(t *testing.T) {
	t.Parallel()

	host, port := startFakeDevice(t, []string{`{"error":"log storage corrupted"}`})

	conn, err := NewDialer().Connect(context.Background(), host, port, 2*time.Second)
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	defer conn.Disconnect()

	_, err = conn.FetchPunches(context.Background(),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error from device error line")
	}
}

func TestDialerFetchPunches_TruncatedResponse(t *testing.T) {
	t.Parallel()

	record, _ := json.Marshal(logLine{
		EmployeeCode:  "EMP001",
		Timestamp:     "2024-06-03T09:00:00Z",
		TransactionID: "tx-1",
		Type:          "in",
	})
	// 終端マーカーなしで切断します。
	host, port := startFakeDevice(t, []string{string(record)})

	conn, err := NewDialer().Connect(context.Background(), host, port, 2*time.Second)
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	defer conn.Disconnect()

	_, err = conn.FetchPunches(context.Background(),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, device.ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestDialerConnect_Refused(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()

	host, portStr, _ := net.SplitHostPort(addr)
	port, _ := strconv.Atoi(portStr)

	if _, err := NewDialer().Connect(context.Background(), host, port, time.Second); err == nil {
		t.Fatal("expected connection error for closed port")
	}
}
