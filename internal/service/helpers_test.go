package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/config"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/repository/memory"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/shenikar/hive_reporting_system/internal/service/mocks"
	"github.com/shenikar/hive_reporting_system/internal/webhook"
	webhook_mocks "github.com/shenikar/hive_reporting_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testDistrict = "11140"
	badDistrict  = "00000"
	reportLat    = 37.5665
	reportLng    = 126.9780
)

var junggu = &models.Region{Code: testDistrict, City: "Seoul", District: "Jung-gu"}

type fixture struct {
	store      *memory.Store
	engine     service.LifecycleService
	query      service.QueryService
	members    service.MemberService
	dispatcher *service.Dispatcher
	regions    *mocks.MockRegionResolver
	classifier *mocks.MockImageClassifier
	publisher  *webhook_mocks.MockPublisher
	logger     *logrus.Logger

	reporter  uuid.UUID
	beekeeper uuid.UUID
	rival     uuid.UUID
}

// newFixture - движок поверх хранилища в памяти с тремя участниками и моками внешних сервисов
func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithPublisher(t, func(context.Context, webhook.Notification) error { return nil })
}

// newFixtureWithPublishErr - то же, но каждая публикация уведомления завершается publishErr
func newFixtureWithPublishErr(t *testing.T, publishErr error) *fixture {
	t.Helper()
	return newFixtureWithPublisher(t, func(context.Context, webhook.Notification) error { return publishErr })
}

// newFixtureWithPublisher - публикации уведомлений обрабатывает publish
func newFixtureWithPublisher(t *testing.T, publish func(context.Context, webhook.Notification) error) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	f := &fixture{
		store:      memory.NewStore(),
		regions:    mocks.NewMockRegionResolver(ctrl),
		classifier: mocks.NewMockImageClassifier(ctrl),
		publisher:  webhook_mocks.NewMockPublisher(ctrl),
		logger:     logger,
		reporter:   uuid.New(),
		beekeeper:  uuid.New(),
		rival:      uuid.New(),
	}
	f.store.AddRegions(*junggu)
	f.store.AddMember(models.Member{ID: f.reporter, Role: models.RoleReporter, Nickname: "citizen", NotifyAddress: "token-reporter"})
	f.store.AddMember(models.Member{ID: f.beekeeper, Role: models.RoleBeekeeper, Nickname: "keeper-x", NotifyAddress: "token-x"})
	f.store.AddMember(models.Member{ID: f.rival, Role: models.RoleBeekeeper, Nickname: "keeper-y"})

	f.regions.EXPECT().ResolveDistrict(gomock.Any(), testDistrict).Return(junggu, nil).AnyTimes()
	f.regions.EXPECT().ResolveDistrict(gomock.Any(), badDistrict).Return(nil, service.ErrInvalidDistrict).AnyTimes()
	f.classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).
		Return(&service.Classification{Species: models.SpeciesHoneybee, Confidence: 0.93, Reason: "striped abdomen"}, nil).
		AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(publish).AnyTimes()

	cfg := &config.Config{GeofenceRadiusMeters: 30, RewardPoints: 100}
	f.dispatcher = service.NewDispatcher(f.publisher, f.store, logger, 50*time.Millisecond)
	// доставки дожидаемся до проверки ожиданий контроллера
	t.Cleanup(f.dispatcher.Wait)
	f.engine = service.NewLifecycleEngine(f.store, f.regions, f.classifier, f.dispatcher, logger, cfg)
	f.query = service.NewQueryService(f.store, logger)
	f.members = service.NewMemberService(f.store, f.regions, logger)
	return f
}

// notifications дожидается доставок и возвращает историю участника
func (f *fixture) notifications(t *testing.T, id uuid.UUID) []models.Notification {
	t.Helper()
	f.dispatcher.Wait()
	items, _, err := f.store.ListNotifications(context.Background(), id, 100, 0)
	require.NoError(t, err)
	return items
}

// finalized создает отчет автора fixture.reporter и финализирует его
func (f *fixture) finalized(t *testing.T, species models.Species) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	v, err := f.engine.VerifyImage(ctx, f.reporter, "https://img.example/nest.jpg")
	require.NoError(t, err)
	_, err = f.engine.Finalize(ctx, service.FinalizeInput{
		ReportID:     v.ReportID,
		ReporterID:   f.reporter,
		Species:      species,
		Latitude:     reportLat,
		Longitude:    reportLng,
		RoadAddress:  "110 Sejong-daero, Jung-gu",
		DistrictCode: testDistrict,
	})
	require.NoError(t, err)
	return v.ReportID
}

// reserved возвращает финализированный пчелиный отчет, забронированный fixture.beekeeper
func (f *fixture) reserved(t *testing.T) (uuid.UUID, uuid.UUID) {
	t.Helper()
	id := f.finalized(t, models.SpeciesHoneybee)
	res, err := f.engine.Reserve(context.Background(), id, f.beekeeper)
	require.NoError(t, err)
	return id, res.ActionID
}

func (f *fixture) status(t *testing.T, id uuid.UUID) models.ReportStatus {
	t.Helper()
	r, err := f.store.GetReport(context.Background(), id)
	require.NoError(t, err)
	return r.Status
}

func (f *fixture) points(t *testing.T, id uuid.UUID) int {
	t.Helper()
	m, err := f.store.GetMember(context.Background(), id)
	require.NoError(t, err)
	return m.Points
}

func (f *fixture) actions(t *testing.T, id uuid.UUID) []models.HiveAction {
	t.Helper()
	actions, err := f.store.ListActions(context.Background(), id)
	require.NoError(t, err)
	return actions
}
