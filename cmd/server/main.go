package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/ogurasousui/timeclock/internal/adapters/repository/postgres"
	"github.com/ogurasousui/timeclock/internal/adapters/terminal"
	"github.com/ogurasousui/timeclock/internal/core/attendance"
	"github.com/ogurasousui/timeclock/internal/core/device"
	"github.com/ogurasousui/timeclock/internal/core/notify"
	"github.com/ogurasousui/timeclock/internal/core/payroll"
	"github.com/ogurasousui/timeclock/internal/core/staff"
	"github.com/ogurasousui/timeclock/internal/core/syncjob"
	"github.com/ogurasousui/timeclock/internal/platform/config"
	pg "github.com/ogurasousui/timeclock/internal/platform/db/postgres"
	"github.com/ogurasousui/timeclock/internal/platform/metrics"
	"github.com/ogurasousui/timeclock/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)
	recorder := metrics.NewRecorder()
	dispatcher := notify.LogDispatcher{}

	staffRepo := postgres.NewStaffRepository(dbPool)
	attendanceRepo := postgres.NewAttendanceRepository(dbPool)
	syncJobRepo := postgres.NewSyncJobRepository(dbPool)
	payrollRepo := postgres.NewPayrollRepository(dbPool)
	auditLogger := postgres.NewAuditLogger(dbPool)

	staffSvc := staff.NewService(staffRepo, nil)
	attendanceSvc := attendance.NewService(attendanceRepo, nil)
	reconciler := attendance.NewReconciler(attendanceRepo, staffRepo, nil)

	runners := buildDeviceRunners(cfg, dispatcher, recorder)
	orchestrator := syncjob.NewOrchestrator(syncJobRepo, runners, reconciler, dispatcher, recorder, nil)

	payrollSvc := payroll.NewService(payrollRepo, attendanceRepo, staffRepo, auditLogger, txManager, dispatcher, nil, payroll.Config{
		Thresholds: payroll.Thresholds{
			Daily:  cfg.Payroll.DailyStandardHours,
			Weekly: cfg.Payroll.WeeklyStandardHours,
		},
		DefaultStandardRate: cfg.Payroll.DefaultStandardRate,
		DefaultOvertimeRate: cfg.Payroll.DefaultOvertimeRate,
	})
	payrollSvc.SetRunHook(recorder.PayrollRun)

	go func() {
		if err := orchestrator.RunScheduler(ctx, cfg.Sync.SchedulePollInterval); err != nil && ctx.Err() == nil {
			log.Printf("scheduler stopped with error: %v", err)
		}
	}()

	if cfg.Server.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			log.Printf("metrics listening on %s", cfg.Server.MetricsAddr)
			if err := http.ListenAndServe(cfg.Server.MetricsAddr, mux); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	grpcServer := server.New(cfg.Server.ListenAddr, server.Services{
		Staff:      staffSvc,
		Attendance: attendanceSvc,
		Sync:       orchestrator,
		Payroll:    payrollSvc,
	})

	log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}

	// 実行中の同期ジョブが片付くのを待ってから終了します。
	orchestrator.Wait()
}

// buildDeviceRunners は有効な端末ごとに再試行実行器付きの同期クライアントを
// 組み立てます。優先度の小さい端末から順に処理されます。
func buildDeviceRunners(cfg *config.Config, dispatcher notify.Dispatcher, recorder *metrics.Recorder) []syncjob.DeviceRunner {
	devices := make([]config.DeviceConfig, 0, len(cfg.Devices))
	for _, dc := range cfg.Devices {
		if dc.Enabled {
			devices = append(devices, dc)
		}
	}
	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].Priority < devices[j].Priority
	})

	dialer := terminal.NewDialer()
	runners := make([]syncjob.DeviceRunner, 0, len(devices))

	for _, dc := range devices {
		deviceID := dc.ID

		breaker := device.NewCircuitBreaker(cfg.Sync.FailureThreshold, cfg.Sync.RecoveryTimeout, nil)
		breaker.SetStateChangeHook(func(_, to device.BreakerState) {
			recorder.BreakerStateChanged(deviceID, string(to))
		})

		backoff := device.NewBackoff(cfg.Sync.BackoffBase, cfg.Sync.BackoffMultiplier, cfg.Sync.BackoffMax)

		policy := device.DefaultRetryPolicy()
		if cfg.Sync.MaxAttempts > 0 {
			policy.MaxAttempts = cfg.Sync.MaxAttempts
		}

		alert := func(ctx context.Context, cerr *device.ClassifiedError) {
			dispatcher.Send(ctx, notify.ChannelOps, notify.Payload{
				Subject: fmt.Sprintf("device %s %s failure", deviceID, cerr.Category),
				Body:    cerr.Error(),
				Tags:    map[string]string{"device_id": deviceID},
			})
		}

		exec := device.NewExecutor(policy, backoff, breaker, nil, alert, cfg.Sync.NotificationCooldown)

		runners = append(runners, device.NewSyncClient(device.ClientConfig{
			DeviceID: dc.ID,
			Name:     dc.Name,
			IP:       dc.IP,
			Port:     dc.Port,
			Timeout:  dc.Timeout,
		}, dialer, exec, nil))
	}

	return runners
}
