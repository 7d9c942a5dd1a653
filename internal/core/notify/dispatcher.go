// Package notify は重大障害・ジョブ完了・給与マイルストーンの通知ディスパッチを
// 抽象化します。配送そのものは外部コラボレーターの責務です。
package notify

import (
	"context"
	"log"
)

// Channel は通知の宛先チャンネルです。
type Channel string

const (
	ChannelOps     Channel = "ops"
	ChannelPayroll Channel = "payroll"
)

// Payload は通知の内容です。
type Payload struct {
	Subject string
	Body    string
	Tags    map[string]string
}

// Dispatcher は通知の送出口です。
type Dispatcher interface {
	Send(ctx context.Context, channel Channel, payload Payload)
}

// Noop は何も送らない Dispatcher です。
type Noop struct{}

// Send は何もしません。
func (Noop) Send(context.Context, Channel, Payload) {}

// LogDispatcher は通知を標準のログへ書き出す Dispatcher です。
// 外部の配送先が構成されていない環境の既定実装です。
type LogDispatcher struct{}

// Send は通知内容をログに記録します。
func (LogDispatcher) Send(_ context.Context, channel Channel, payload Payload) {
	log.Printf("notify [%s] %s: %s", channel, payload.Subject, payload.Body)
}
