package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/metrics"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// DefaultPublishTimeout ограничивает одну публикацию в очередь уведомлений
const DefaultPublishTimeout = 500 * time.Millisecond

// NotificationLog - то, что нужно диспетчеру от хранилища
type NotificationLog interface {
	MemberDirectory
	SaveNotification(ctx context.Context, n *models.Notification) error
	ListInterestedMembers(ctx context.Context, districtCode string) ([]models.Member, error)
}

// Message - уведомление о событии отчета
type Message struct {
	Type         models.NotificationType
	HiveReportID uuid.UUID
	Title        string
	Body         string
	Metadata     map[string]string
}

// Dispatcher доставляет уведомления после фиксации транзакции в отдельной горутине.
// Запись в историю и публикация в очередь не влияют на результат операции, ошибки только логируются.
type Dispatcher struct {
	publisher webhook.Publisher
	store     NotificationLog
	logger    *logrus.Logger
	timeout   time.Duration

	wg sync.WaitGroup
}

// NewDispatcher создает диспетчер. publisher может быть nil, тогда ведется только история
func NewDispatcher(publisher webhook.Publisher, store NotificationLog, logger *logrus.Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &Dispatcher{
		publisher: publisher,
		store:     store,
		logger:    logger,
		timeout:   timeout,
	}
}

// NotifyMember асинхронно уведомляет одного участника
func (d *Dispatcher) NotifyMember(ctx context.Context, memberID uuid.UUID, msg Message) {
	d.async(ctx, func(ctx context.Context) {
		member, err := d.store.GetMember(ctx, memberID)
		if err != nil {
			d.logger.WithError(err).WithField("member_id", memberID).Warn("Failed to resolve notification recipient")
			metrics.NotificationsTotal.WithLabelValues("history", "failed").Inc()
			return
		}
		d.deliver(ctx, *member, msg)
	})
}

// NotifyDistrict асинхронно уведомляет участников, подписанных на район, кроме except
func (d *Dispatcher) NotifyDistrict(ctx context.Context, districtCode string, except uuid.UUID, msg Message) {
	d.async(ctx, func(ctx context.Context) {
		members, err := d.store.ListInterestedMembers(ctx, districtCode)
		if err != nil {
			d.logger.WithError(err).WithField("district_code", districtCode).Warn("Failed to list interested members")
			metrics.NotificationsTotal.WithLabelValues("history", "failed").Inc()
			return
		}
		for _, m := range members {
			if m.ID == except {
				continue
			}
			d.deliver(ctx, m, msg)
		}
	})
}

// Wait дожидается завершения начатых доставок
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) async(ctx context.Context, fn func(ctx context.Context)) {
	// транзакция уже зафиксирована, отмена запроса не должна терять уведомление
	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		fn(ctx)
	}()
}

// deliver записывает уведомление в историю и публикует его на push-адрес участника
func (d *Dispatcher) deliver(ctx context.Context, member models.Member, msg Message) {
	log := d.logger.WithFields(logrus.Fields{
		"service":        "notification",
		"member_id":      member.ID,
		"hive_report_id": msg.HiveReportID,
		"type":           msg.Type,
	})

	reportID := msg.HiveReportID
	record := &models.Notification{
		MemberID:     member.ID,
		HiveReportID: &reportID,
		Type:         msg.Type,
		Title:        msg.Title,
		Message:      msg.Body,
	}
	if err := d.store.SaveNotification(ctx, record); err != nil {
		log.WithError(err).Warn("Failed to save notification")
		metrics.NotificationsTotal.WithLabelValues("history", "failed").Inc()
	} else {
		metrics.NotificationsTotal.WithLabelValues("history", "ok").Inc()
	}

	if d.publisher == nil || member.NotifyAddress == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	id := member.ID
	err := d.publisher.Publish(ctx, webhook.Notification{
		ID:       record.ID,
		MemberID: &id,
		Address:  member.NotifyAddress,
		Title:    msg.Title,
		Body:     msg.Body,
		Metadata: msg.Metadata,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to publish notification")
		metrics.NotificationsTotal.WithLabelValues("publish", "failed").Inc()
		return
	}
	metrics.NotificationsTotal.WithLabelValues("publish", "ok").Inc()
}
