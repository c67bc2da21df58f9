package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/metrics"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// RewardIssuer начисляет баллы ровно один раз на квалифицирующее действие
type RewardIssuer struct {
	logger *logrus.Logger
}

func NewRewardIssuer(logger *logrus.Logger) *RewardIssuer {
	return &RewardIssuer{logger: logger}
}

// Issue создает Reward и увеличивает баланс участника в транзакции вызывающего.
// Повторный вызов для того же действия возвращает ErrDuplicateAction без второго начисления.
func (i *RewardIssuer) Issue(ctx context.Context, tx RewardStore, actionID, memberID uuid.UUID, points int) (*models.Reward, error) {
	log := i.logger.WithFields(logrus.Fields{
		"service":   "reward",
		"method":    "Issue",
		"action_id": actionID,
		"member_id": memberID,
	})
	if points <= 0 {
		return nil, fmt.Errorf("%w: reward points must be positive, got %d", ErrInvalidInput, points)
	}

	reward := &models.Reward{
		ActionID: actionID,
		MemberID: memberID,
		Points:   points,
	}
	if err := tx.InsertReward(ctx, reward); err != nil {
		if errors.Is(err, ErrDuplicateAction) {
			log.Warn("Reward already issued for action")
		}
		return nil, fmt.Errorf("reward: could not insert reward: %w", err)
	}
	if err := tx.IncrementPoints(ctx, memberID, points); err != nil {
		return nil, fmt.Errorf("reward: could not increment points: %w", err)
	}

	metrics.RewardsIssuedTotal.Inc()
	metrics.RewardPointsTotal.Add(float64(points))
	log.WithField("reward_id", reward.ID).Debug("Reward issued")
	return reward, nil
}
