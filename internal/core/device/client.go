package device

import (
	"context"
	"fmt"
	"time"
)

// PunchType は打刻の種別 (出勤/退勤) です。
type PunchType string

const (
	PunchIn  PunchType = "in"
	PunchOut PunchType = "out"
)

// Punch はタイムレコーダー端末が報告する打刻 1 件です。
// 取得直後に突合処理へ渡される一時的なデータです。
type Punch struct {
	EmployeeCode  string
	Timestamp     time.Time
	TerminalID    string
	TransactionID string
	Type          PunchType
}

// DateRange は打刻取得の対象期間です。
type DateRange struct {
	From time.Time
	To   time.Time
}

// Validate は期間の妥当性を検査します。
func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return fmt.Errorf("device: date range requires both from and to")
	}
	if r.To.Before(r.From) {
		return fmt.Errorf("device: date range to precedes from")
	}
	return nil
}

// Conn は確立済みの端末接続です。物理プロトコルは外部コラボレーターが実装します。
type Conn interface {
	FetchPunches(ctx context.Context, from, to time.Time) ([]Punch, error)
	Disconnect() error
}

// Dialer は端末への接続を確立します。
type Dialer interface {
	Connect(ctx context.Context, ip string, port int, timeout time.Duration) (Conn, error)
}

// ClientConfig は SyncClient が守る端末 1 台の接続情報です。
type ClientConfig struct {
	DeviceID string
	Name     string
	IP       string
	Port     int
	Timeout  time.Duration
}

// ConnectionResult は疎通確認の結果です。
type ConnectionResult struct {
	OK           bool
	ResponseTime time.Duration
}

// SyncClient は端末 1 台との通信を Executor 経由で行います。
// ペイロードの意味論には踏み込まず、構造的な検証のみを行います。
type SyncClient struct {
	cfg    ClientConfig
	dialer Dialer
	exec   *Executor
	clock  Clock
}

// NewSyncClient は SyncClient を生成します。
func NewSyncClient(cfg ClientConfig, dialer Dialer, exec *Executor, clock Clock) *SyncClient {
	if clock == nil {
		clock = realClock{}
	}
	return &SyncClient{cfg: cfg, dialer: dialer, exec: exec, clock: clock}
}

// DeviceID はこのクライアントが担当する端末 ID を返します。
func (c *SyncClient) DeviceID() string {
	return c.cfg.DeviceID
}

// TestConnection は端末への疎通を確認し、応答時間を返します。
func (c *SyncClient) TestConnection(ctx context.Context) (*ConnectionResult, error) {
	start := c.clock.Now()

	err := c.exec.Execute(ctx, "testConnection", func(ctx context.Context) error {
		conn, err := c.dialer.Connect(ctx, c.cfg.IP, c.cfg.Port, c.cfg.Timeout)
		if err != nil {
			return err
		}
		return conn.Disconnect()
	})
	if err != nil {
		return &ConnectionResult{OK: false, ResponseTime: c.clock.Now().Sub(start)}, err
	}

	return &ConnectionResult{OK: true, ResponseTime: c.clock.Now().Sub(start)}, nil
}

// FetchPunches は対象期間の打刻を取得します。
// 構造的に不正なレコードは DATA_CORRUPTION として即座に失敗します (再試行なし)。
func (c *SyncClient) FetchPunches(ctx context.Context, dateRange DateRange) ([]Punch, error) {
	if err := dateRange.Validate(); err != nil {
		return nil, err
	}

	var punches []Punch

	err := c.exec.Execute(ctx, "fetchPunches", func(ctx context.Context) error {
		conn, err := c.dialer.Connect(ctx, c.cfg.IP, c.cfg.Port, c.cfg.Timeout)
		if err != nil {
			return err
		}
		defer func() { _ = conn.Disconnect() }()

		fetched, err := conn.FetchPunches(ctx, dateRange.From, dateRange.To)
		if err != nil {
			return err
		}

		for i, p := range fetched {
			if err := validatePunch(p); err != nil {
				return &ClassifiedError{
					Category:  CategoryDataCorruption,
					Severity:  SeverityMedium,
					Operation: "fetchPunches",
					Err:       fmt.Errorf("record %d: %w", i, err),
				}
			}
		}

		punches = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range punches {
		if punches[i].TerminalID == "" {
			punches[i].TerminalID = c.cfg.DeviceID
		}
	}

	return punches, nil
}

func validatePunch(p Punch) error {
	if p.EmployeeCode == "" {
		return fmt.Errorf("%w: missing employee code", ErrMalformedPayload)
	}
	if p.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrMalformedPayload)
	}
	// 取引 ID は重複排除のキーであり、欠落は静かなデータ喪失につながります。
	if p.TransactionID == "" {
		return fmt.Errorf("%w: missing transaction id", ErrMalformedPayload)
	}
	if p.Type != PunchIn && p.Type != PunchOut {
		return fmt.Errorf("%w: unknown punch type %q", ErrMalformedPayload, p.Type)
	}
	return nil
}
