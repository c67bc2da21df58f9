package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/shenikar/hive_reporting_system/internal/service MemberDirectory,RegionResolver,ImageClassifier,LifecycleService,QueryService,MemberService

// MemberDirectory - внешний каталог участников
type MemberDirectory interface {
	GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error)
}

// RegionResolver разрешает код района в город и район
type RegionResolver interface {
	ResolveDistrict(ctx context.Context, districtCode string) (*models.Region, error)
}

// Classification - вердикт классификатора изображения
type Classification struct {
	Species    models.Species
	Confidence float64
	Reason     string
}

// ImageClassifier определяет вид насекомых по фотографии гнезда
type ImageClassifier interface {
	Classify(ctx context.Context, imageURL string) (*Classification, error)
}

// StatusTransition - условный переход статуса. Пустой Species не ограничивает вид
type StatusTransition struct {
	ReportID uuid.UUID
	From     models.ReportStatus
	To       models.ReportStatus
	Species  models.Species
}

// ReportStore - операции над строкой отчета внутри транзакции
type ReportStore interface {
	CreateReport(ctx context.Context, report *models.HiveReport) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.HiveReport, error)
	// GetReportForUpdate читает отчет с блокировкой строки до конца транзакции
	GetReportForUpdate(ctx context.Context, id uuid.UUID) (*models.HiveReport, error)
	// FinalizeReport записывает поля финализации, только если статус еще не задан
	FinalizeReport(ctx context.Context, report *models.HiveReport) error
	// TransitionStatus атомарно меняет статус при совпадении From (и Species). false - условие не выполнено
	TransitionStatus(ctx context.Context, t StatusTransition) (bool, error)
}

// ActionStore - журнал действий внутри транзакции
type ActionStore interface {
	AppendAction(ctx context.Context, action *models.HiveAction) error
	ListActions(ctx context.Context, reportID uuid.UUID) ([]models.HiveAction, error)
}

// RewardStore - начисления и баланс участника внутри транзакции
type RewardStore interface {
	// InsertReward возвращает ErrDuplicateAction, если начисление за действие уже существует
	InsertReward(ctx context.Context, reward *models.Reward) error
	IncrementPoints(ctx context.Context, memberID uuid.UUID, amount int) error
}

// HiveTx - единица работы одной операции жизненного цикла
type HiveTx interface {
	MemberDirectory
	ReportStore
	ActionStore
	RewardStore
}

// MyReportsQuery - фильтр выборки "мои отчеты"
type MyReportsQuery struct {
	MemberID    uuid.UUID
	ActionTypes []models.ActionType
	Species     models.Species
	Status      models.ReportStatus
	Limit       int
	Offset      int
}

// MyReportRow - строка выборки "мои отчеты"
type MyReportRow struct {
	ReportID    uuid.UUID
	Species     models.Species
	Status      models.ReportStatus
	RoadAddress string
	CreatedAt   time.Time
	// ReserveActionID - действующее бронирование участника по этому отчету, если есть
	ReserveActionID *uuid.UUID
}

// NotificationStore - история уведомлений участников
type NotificationStore interface {
	SaveNotification(ctx context.Context, n *models.Notification) error
	// ListNotifications возвращает страницу истории участника, новые первыми, и общее число записей
	ListNotifications(ctx context.Context, memberID uuid.UUID, limit, offset int) ([]models.Notification, int, error)
}

// InterestStore - районы, о новых отчетах в которых участник хочет знать
type InterestStore interface {
	// ReplaceInterestAreas заменяет набор районов участника целиком
	ReplaceInterestAreas(ctx context.Context, memberID uuid.UUID, districtCodes []string) error
	ListInterestAreas(ctx context.Context, memberID uuid.UUID) ([]models.Region, error)
	ListInterestedMembers(ctx context.Context, districtCode string) ([]models.Member, error)
}

// HiveStore - хранилище отчетов: транзакции для записи и чтение для проекций
type HiveStore interface {
	MemberDirectory
	NotificationStore
	InterestStore
	WithinTx(ctx context.Context, fn func(tx HiveTx) error) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.HiveReport, error)
	ListActions(ctx context.Context, reportID uuid.UUID) ([]models.HiveAction, error)
	GetMembers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Member, error)
	FindPins(ctx context.Context, box models.BoundingBox) ([]models.Pin, error)
	ListMemberReports(ctx context.Context, q MyReportsQuery) ([]MyReportRow, int, error)
}
