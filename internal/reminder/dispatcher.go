package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
)

const defaultBatchSize = 50

// Dispatcher периодически опрашивает журнал звонков и публикует
// уведомления по напоминаниям с наступившим сроком.
// Отметка reminder_sent ставится только после успешной публикации,
// поэтому при сбое брокера напоминание уйдет повторно.
type Dispatcher struct {
	callLogs port.CallLogRepositoryPort
	notifier port.ReminderNotifierPort
	logger   port.LoggerPort
	interval time.Duration
	batch    int
}

func NewDispatcher(
	callLogs port.CallLogRepositoryPort,
	notifier port.ReminderNotifierPort,
	logger port.LoggerPort,
	interval time.Duration) (*Dispatcher, error) {
	if callLogs == nil {
		return nil, fmt.Errorf("reminder dispatcher: call log repository cannot be nil")
	}
	if notifier == nil {
		return nil, fmt.Errorf("reminder dispatcher: notifier cannot be nil")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("reminder dispatcher: poll interval must be positive, got %s", interval)
	}
	return &Dispatcher{
		callLogs: callLogs,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		batch:    defaultBatchSize,
	}, nil
}

// Start блокируется до отмены контекста. Первый проход выполняется сразу,
// чтобы не ждать целый интервал после рестарта сервиса.
func (d *Dispatcher) Start(ctx context.Context) error {
	workerLogger := d.logger.WithFields(port.Fields{
		"component": "ReminderDispatcher",
		"interval":  d.interval.String(),
	})
	workerLogger.Info("Reminder dispatcher started", nil)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.dispatchDue(ctx)

	for {
		select {
		case <-ctx.Done():
			workerLogger.Info("Reminder dispatcher stopping", nil)
			return ctx.Err()
		case <-ticker.C:
			d.dispatchDue(ctx)
		}
	}
}

// dispatchDue обрабатывает одну пачку просроченных напоминаний.
// Ошибки логируются и не прерывают цикл.
func (d *Dispatcher) dispatchDue(ctx context.Context) {
	traceID := uuid.New().String()
	cycleCtx := contextkeys.ContextWithTraceID(ctx, traceID)

	cycleLogger := d.logger.WithFields(port.Fields{
		"component": "ReminderDispatcher",
		"trace_id":  traceID,
	})
	cycleCtx = contextkeys.ContextWithLogger(cycleCtx, cycleLogger)

	due, err := d.callLogs.FindDueReminders(cycleCtx, time.Now().UTC(), d.batch)
	if err != nil {
		cycleLogger.Error("Failed to fetch due reminders", err, nil)
		return
	}
	if len(due) == 0 {
		return
	}

	cycleLogger.Info("Dispatching due reminders", port.Fields{"count": len(due)})

	var sent, failed int
	for _, log := range due {
		if err := d.notifier.NotifyCallReminder(cycleCtx, log); err != nil {
			cycleLogger.Error("Failed to notify reminder", err, port.Fields{"call_log_id": log.ID.String()})
			failed++
			continue
		}
		if err := d.callLogs.MarkReminderSent(cycleCtx, log.ID); err != nil {
			cycleLogger.Error("Failed to mark reminder as sent", err, port.Fields{"call_log_id": log.ID.String()})
			failed++
			continue
		}
		sent++
	}

	cycleLogger.Info("Reminder cycle finished", port.Fields{"sent": sent, "failed": failed})
}

func (d *Dispatcher) Close() error {
	return nil
}
