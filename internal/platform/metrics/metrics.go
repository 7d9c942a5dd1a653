// Package metrics は Prometheus の計測点をまとめて提供します。
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SyncJobsFinished は終了した同期ジョブの累計です。
var SyncJobsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "timeclock",
	Subsystem: "sync",
	Name:      "jobs_finished_total",
	Help:      "Total finished sync jobs by type and final status.",
}, []string{"type", "status"})

// SyncJobDuration は同期ジョブの実行時間です。
var SyncJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "timeclock",
	Subsystem: "sync",
	Name:      "job_duration_seconds",
	Help:      "Sync job execution time in seconds.",
	Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
}, []string{"type"})

// PunchesProcessed は突合処理した打刻の累計です。
var PunchesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "timeclock",
	Subsystem: "sync",
	Name:      "punches_processed_total",
	Help:      "Total punches processed by reconciliation outcome.",
}, []string{"outcome"})

// CircuitBreakerState は端末ごとのサーキットブレーカー状態です。
var CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "timeclock",
	Subsystem: "device",
	Name:      "circuit_breaker_state",
	Help:      "Current circuit breaker state per device (0=closed, 1=open, 2=half-open).",
}, []string{"device"})

// CircuitBreakerTrips は端末ごとのブレーカー開放の累計です。
var CircuitBreakerTrips = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "timeclock",
	Subsystem: "device",
	Name:      "circuit_breaker_trips_total",
	Help:      "Total circuit breaker trips per device.",
}, []string{"device"})

// PayrollCalculations は給与計算実行の累計です。
var PayrollCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "timeclock",
	Subsystem: "payroll",
	Name:      "calculations_total",
	Help:      "Total payroll calculation runs by result.",
}, []string{"result"})

// Handler は /metrics 用の HTTP ハンドラーを返します。
func Handler() http.Handler {
	return promhttp.Handler()
}

// Recorder はコアパッケージが参照する計測フックの実装です。
type Recorder struct{}

// NewRecorder は Recorder を生成します。
func NewRecorder() *Recorder {
	return &Recorder{}
}

// JobFinished は同期ジョブの終了を記録します。
func (*Recorder) JobFinished(jobType, status string, duration time.Duration) {
	SyncJobsFinished.WithLabelValues(jobType, status).Inc()
	SyncJobDuration.WithLabelValues(jobType).Observe(duration.Seconds())
}

// PunchesReconciled は端末 1 台分の突合結果を記録します。
func (*Recorder) PunchesReconciled(created, skipped, failed int) {
	PunchesProcessed.WithLabelValues("created").Add(float64(created))
	PunchesProcessed.WithLabelValues("skipped").Add(float64(skipped))
	PunchesProcessed.WithLabelValues("failed").Add(float64(failed))
}

// BreakerStateChanged は端末ブレーカーの状態遷移を記録します。
func (*Recorder) BreakerStateChanged(deviceID, state string) {
	var v float64
	switch state {
	case "OPEN":
		v = 1
		CircuitBreakerTrips.WithLabelValues(deviceID).Inc()
	case "HALF_OPEN":
		v = 2
	default:
		v = 0
	}
	CircuitBreakerState.WithLabelValues(deviceID).Set(v)
}

// PayrollRun は給与計算の実行結果を記録します。
func (*Recorder) PayrollRun(result string) {
	PayrollCalculations.WithLabelValues(result).Inc()
}
