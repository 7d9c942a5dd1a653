// Package terminal はタイムレコーダー端末との TCP 通信を実装します。
// プロトコルは改行区切りの JSON で、リクエスト 1 行に対して打刻レコードを
// 1 行ずつ返し、終端マーカー行で応答を閉じます。
package terminal

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/ogurasousui/timeclock/internal/core/device"
)

const (
	opFetchLog = "ATTLOG"

	// 1 レコード行の上限。端末のログ行がこれを超えることはありません。
	maxLineBytes = 64 * 1024
)

type fetchRequest struct {
	Op   string `json:"op"`
	From string `json:"from"`
	To   string `json:"to"`
}

type logLine struct {
	EmployeeCode  string `json:"employee_code"`
	Timestamp     string `json:"timestamp"`
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
	EOF           bool   `json:"eof"`
	Error         string `json:"error"`
}

// Dialer は device.Dialer の TCP 実装です。
type Dialer struct{}

// NewDialer は Dialer を生成します。
func NewDialer() *Dialer {
	return &Dialer{}
}

// Connect は端末へ TCP 接続を確立します。
func (d *Dialer) Connect(ctx context.Context, ip string, port int, timeout time.Duration) (device.Conn, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	nd := net.Dialer{Timeout: timeout}
	addr := net.JoinHostPort(ip, strconv.Itoa(port))

	raw, err := nd.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("terminal: connect %s: %w", addr, err)
	}

	return &conn{raw: raw, timeout: timeout}, nil
}

type conn struct {
	raw     net.Conn
	timeout time.Duration
}

// FetchPunches は対象期間の打刻ログを要求し、終端マーカーまで読み取ります。
func (c *conn) FetchPunches(ctx context.Context, from, to time.Time) ([]device.Punch, error) {
	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.raw.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("terminal: set deadline: %w", err)
	}

	req := fetchRequest{
		Op:   opFetchLog,
		From: from.UTC().Format(time.RFC3339),
		To:   to.UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("terminal: marshal request: %w", err)
	}
	if _, err := c.raw.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("terminal: send request: %w", err)
	}

	scanner := bufio.NewScanner(c.raw)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var punches []device.Punch
	for scanner.Scan() {
		var line logLine
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			return nil, fmt.Errorf("terminal: malformed record: %w: %w", device.ErrMalformedPayload, err)
		}

		if line.Error != "" {
			return nil, fmt.Errorf("terminal: device error: %s", line.Error)
		}
		if line.EOF {
			return punches, nil
		}

		punch, err := line.toPunch()
		if err != nil {
			return nil, err
		}
		punches = append(punches, punch)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("terminal: read response: %w", err)
	}

	// 終端マーカーの前に接続が閉じられた場合は応答が不完全です。
	return nil, fmt.Errorf("terminal: connection closed before end of log: %w", device.ErrMalformedPayload)
}

// Disconnect は接続を閉じます。
func (c *conn) Disconnect() error {
	return c.raw.Close()
}

func (l logLine) toPunch() (device.Punch, error) {
	ts, err := time.Parse(time.RFC3339, l.Timestamp)
	if err != nil {
		return device.Punch{}, fmt.Errorf("terminal: %w: bad timestamp %q", device.ErrMalformedPayload, l.Timestamp)
	}

	return device.Punch{
		EmployeeCode:  l.EmployeeCode,
		Timestamp:     ts.UTC(),
		TransactionID: l.TransactionID,
		Type:          device.PunchType(l.Type),
	}, nil
}
