package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/config"
	"github.com/shenikar/hive_reporting_system/internal/geofence"
	"github.com/shenikar/hive_reporting_system/internal/metrics"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// LifecycleService определяет контракт переходов жизненного цикла отчета
type LifecycleService interface {
	VerifyImage(ctx context.Context, reporterID uuid.UUID, imageURL string) (*VerificationResult, error)
	Finalize(ctx context.Context, in FinalizeInput) (*FinalizeResult, error)
	Reserve(ctx context.Context, reportID, beekeeperID uuid.UUID) (*ReserveResult, error)
	CancelReservation(ctx context.Context, reportID, actionID, beekeeperID uuid.UUID) error
	Proof(ctx context.Context, in ProofInput) (*ProofResult, error)
}

type VerificationResult struct {
	ReportID     uuid.UUID
	ImageURL     string
	AISpecies    models.Species
	AIConfidence float64
	AIReason     string
}

type FinalizeInput struct {
	ReportID     uuid.UUID
	ReporterID   uuid.UUID
	Species      models.Species
	Latitude     float64
	Longitude    float64
	RoadAddress  string
	DistrictCode string
}

type FinalizeResult struct {
	ReportID    uuid.UUID
	RoadAddress string
	Region      models.Region
}

type ReserveResult struct {
	ReportID uuid.UUID
	ActionID uuid.UUID
	Status   models.ReportStatus
}

type ProofInput struct {
	ReportID   uuid.UUID
	ActorID    uuid.UUID
	ActionType models.ActionType
	Latitude   float64
	Longitude  float64
	ImageURL   string
}

type ProofResult struct {
	ReportID      uuid.UUID
	ActionID      uuid.UUID
	RewardID      uuid.UUID
	BeneficiaryID uuid.UUID
	Points        int
	Status        models.ReportStatus
	ImageURL      string
}

type lifecycleEngine struct {
	store        HiveStore
	regions      RegionResolver
	classifier   ImageClassifier
	rewards      *RewardIssuer
	dispatcher   *Dispatcher
	geofence     geofence.Validator
	rewardPoints int
	logger       *logrus.Logger
}

func NewLifecycleEngine(
	store HiveStore,
	regions RegionResolver,
	classifier ImageClassifier,
	dispatcher *Dispatcher,
	logger *logrus.Logger,
	cfg *config.Config,
) LifecycleService {
	return &lifecycleEngine{
		store:        store,
		regions:      regions,
		classifier:   classifier,
		rewards:      NewRewardIssuer(logger),
		dispatcher:   dispatcher,
		geofence:     geofence.NewValidator(cfg.GeofenceRadiusMeters),
		rewardPoints: cfg.RewardPoints,
		logger:       logger,
	}
}

// VerifyImage классифицирует фото и создает нефинализированный отчет с действием REPORT
func (s *lifecycleEngine) VerifyImage(ctx context.Context, reporterID uuid.UUID, imageURL string) (*VerificationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "lifecycle",
		"method":    "VerifyImage",
		"member_id": reporterID,
	})
	log.Info("Verifying hive image")

	if _, err := s.store.GetMember(ctx, reporterID); err != nil {
		log.WithError(err).Warn("Reporter lookup failed")
		return nil, s.fail("verify_image", fmt.Errorf("service: could not verify image: %w", err))
	}

	verdict, err := s.classifier.Classify(ctx, imageURL)
	if err != nil {
		log.WithError(err).Error("Image classification failed")
		return nil, s.fail("verify_image", fmt.Errorf("service: could not classify image: %w", err))
	}

	report := &models.HiveReport{
		ImageURL:     imageURL,
		AISpecies:    verdict.Species,
		AIConfidence: verdict.Confidence,
		AIReason:     verdict.Reason,
	}
	err = s.store.WithinTx(ctx, func(tx HiveTx) error {
		if err := tx.CreateReport(ctx, report); err != nil {
			return err
		}
		return NewLedger(tx, report.ID).Append(ctx, &models.HiveAction{
			MemberID:   reporterID,
			ActionType: models.ActionReport,
			ImageURL:   imageURL,
		})
	})
	if err != nil {
		log.WithError(err).Error("Failed to create hive report")
		return nil, s.fail("verify_image", fmt.Errorf("service: could not create hive report: %w", err))
	}

	metrics.TransitionsTotal.WithLabelValues("verify_image", "ok").Inc()
	log.WithField("hive_report_id", report.ID).Info("Hive report created")
	return &VerificationResult{
		ReportID:     report.ID,
		ImageURL:     report.ImageURL,
		AISpecies:    report.AISpecies,
		AIConfidence: report.AIConfidence,
		AIReason:     report.AIReason,
	}, nil
}

// Finalize переводит отчет в REPORTED. Автором действия REPORT должен быть reporterID
func (s *lifecycleEngine) Finalize(ctx context.Context, in FinalizeInput) (*FinalizeResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "lifecycle",
		"method":         "Finalize",
		"hive_report_id": in.ReportID,
		"member_id":      in.ReporterID,
	})
	log.Info("Attempting to finalize hive report")

	if !in.Species.Valid() {
		return nil, s.fail("finalize", fmt.Errorf("service: %w: unknown species %q", ErrInvalidInput, in.Species))
	}

	region, err := s.regions.ResolveDistrict(ctx, in.DistrictCode)
	if err != nil {
		log.WithError(err).Warn("District resolution failed")
		return nil, s.fail("finalize", fmt.Errorf("service: could not resolve district: %w", err))
	}

	err = s.store.WithinTx(ctx, func(tx HiveTx) error {
		report, err := tx.GetReportForUpdate(ctx, in.ReportID)
		if err != nil {
			return err
		}
		ledger, err := LoadLedger(ctx, tx, report.ID)
		if err != nil {
			return err
		}
		if !ledger.HasActive(in.ReporterID, models.ActionReport) {
			return fmt.Errorf("%w: member %s did not report %s", ErrRoleMismatch, in.ReporterID, report.ID)
		}
		if report.Finalized() {
			return fmt.Errorf("%w: status is %s", ErrAlreadyFinalized, report.Status)
		}

		report.Species = in.Species
		report.Latitude = in.Latitude
		report.Longitude = in.Longitude
		report.RoadAddress = in.RoadAddress
		report.DistrictCode = region.Code
		report.Status = models.StatusReported
		return tx.FinalizeReport(ctx, report)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to finalize hive report")
		return nil, s.fail("finalize", fmt.Errorf("service: could not finalize hive report: %w", err))
	}

	metrics.TransitionsTotal.WithLabelValues("finalize", "ok").Inc()
	log.Info("Hive report finalized")

	s.dispatcher.NotifyDistrict(ctx, region.Code, in.ReporterID, Message{
		Type:         models.NotificationNewReport,
		HiveReportID: in.ReportID,
		Title:        "New hive reported",
		Body:         fmt.Sprintf("%s nest reported in %s %s", in.Species, region.City, region.District),
		Metadata:     map[string]string{"hive_report_id": in.ReportID.String(), "species": string(in.Species)},
	})

	return &FinalizeResult{
		ReportID:    in.ReportID,
		RoadAddress: in.RoadAddress,
		Region:      *region,
	}, nil
}

// Reserve закрепляет отчет о пчелином гнезде за пчеловодом.
// Проверка статуса и запись - одно условное обновление, поэтому из конкурентных попыток выигрывает одна.
func (s *lifecycleEngine) Reserve(ctx context.Context, reportID, beekeeperID uuid.UUID) (*ReserveResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "lifecycle",
		"method":         "Reserve",
		"hive_report_id": reportID,
		"member_id":      beekeeperID,
	})
	log.Info("Attempting to reserve hive report")

	var (
		action     *models.HiveAction
		reporterID uuid.UUID
	)
	err := s.store.WithinTx(ctx, func(tx HiveTx) error {
		if _, err := tx.GetMember(ctx, beekeeperID); err != nil {
			return err
		}
		ok, err := tx.TransitionStatus(ctx, StatusTransition{
			ReportID: reportID,
			From:     models.StatusReported,
			To:       models.StatusReserved,
			Species:  models.SpeciesHoneybee,
		})
		if err != nil {
			return err
		}
		if !ok {
			report, err := tx.GetReport(ctx, reportID)
			if err != nil {
				return err
			}
			return fmt.Errorf("%w: %s report is %q, reservation requires a REPORTED honeybee report",
				ErrInvalidTransition, report.Species, report.Status)
		}

		ledger, err := LoadLedger(ctx, tx, reportID)
		if err != nil {
			return err
		}
		if reporter, ok := ledger.Reporter(); ok {
			reporterID = reporter.MemberID
		}
		action = &models.HiveAction{
			MemberID:   beekeeperID,
			ActionType: models.ActionReserve,
		}
		return ledger.Append(ctx, action)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to reserve hive report")
		return nil, s.fail("reserve", fmt.Errorf("service: could not reserve hive report: %w", err))
	}

	metrics.TransitionsTotal.WithLabelValues("reserve", "ok").Inc()
	log.WithField("hive_action_id", action.ID).Info("Hive report reserved")

	if reporterID != uuid.Nil {
		s.dispatcher.NotifyMember(ctx, reporterID, Message{
			Type:         models.NotificationReserved,
			HiveReportID: reportID,
			Title:        "Your report was reserved",
			Body:         "A beekeeper is on the way to remove the honeybee hive",
			Metadata:     map[string]string{"hive_report_id": reportID.String()},
		})
	}

	return &ReserveResult{
		ReportID: reportID,
		ActionID: action.ID,
		Status:   models.StatusReserved,
	}, nil
}

// CancelReservation отзывает действующее бронирование, добавляя CANCEL_RESERVE
func (s *lifecycleEngine) CancelReservation(ctx context.Context, reportID, actionID, beekeeperID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "lifecycle",
		"method":         "CancelReservation",
		"hive_report_id": reportID,
		"hive_action_id": actionID,
		"member_id":      beekeeperID,
	})
	log.Info("Attempting to cancel reservation")

	var reporterID uuid.UUID
	err := s.store.WithinTx(ctx, func(tx HiveTx) error {
		report, err := tx.GetReportForUpdate(ctx, reportID)
		if err != nil {
			return err
		}
		if report.Status != models.StatusReserved {
			return fmt.Errorf("%w: report is %q, not RESERVED", ErrInvalidTransition, report.Status)
		}

		ledger, err := LoadLedger(ctx, tx, reportID)
		if err != nil {
			return err
		}
		if _, ok := ledger.Find(actionID); !ok {
			return fmt.Errorf("%w: action %s on report %s", ErrNotFound, actionID, reportID)
		}
		active, ok := ledger.ActiveReservation()
		if !ok || active.ID != actionID || active.MemberID != beekeeperID {
			return fmt.Errorf("%w: no active reservation %s for member %s", ErrPermissionDenied, actionID, beekeeperID)
		}
		if reporter, ok := ledger.Reporter(); ok {
			reporterID = reporter.MemberID
		}

		ref := active.ID
		if err := ledger.Append(ctx, &models.HiveAction{
			MemberID:    beekeeperID,
			ActionType:  models.ActionCancelReserve,
			RefActionID: &ref,
		}); err != nil {
			return err
		}
		return s.transition(ctx, tx, reportID, models.StatusReserved, models.StatusReported)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to cancel reservation")
		return s.fail("cancel_reservation", fmt.Errorf("service: could not cancel reservation: %w", err))
	}

	metrics.TransitionsTotal.WithLabelValues("cancel_reservation", "ok").Inc()
	log.Info("Reservation cancelled")

	if reporterID != uuid.Nil {
		s.dispatcher.NotifyMember(ctx, reporterID, Message{
			Type:         models.NotificationReserveCanceled,
			HiveReportID: reportID,
			Title:        "Reservation cancelled",
			Body:         "The beekeeper cancelled the reservation, your report is open again",
			Metadata:     map[string]string{"hive_report_id": reportID.String()},
		})
	}
	return nil
}

// Proof закрывает отчет подтверждением удаления и начисляет баллы автору отчета
func (s *lifecycleEngine) Proof(ctx context.Context, in ProofInput) (*ProofResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "lifecycle",
		"method":         "Proof",
		"hive_report_id": in.ReportID,
		"member_id":      in.ActorID,
		"action_type":    in.ActionType,
	})
	log.Info("Attempting to submit removal proof")

	if !in.ActionType.IsProof() {
		return nil, s.fail("proof", fmt.Errorf("service: %w: %q is not a proof action", ErrInvalidInput, in.ActionType))
	}

	var result *ProofResult
	err := s.store.WithinTx(ctx, func(tx HiveTx) error {
		if _, err := tx.GetMember(ctx, in.ActorID); err != nil {
			return err
		}
		report, err := tx.GetReportForUpdate(ctx, in.ReportID)
		if err != nil {
			return err
		}
		if report.Status == models.StatusRemoved {
			return fmt.Errorf("%w: report is already REMOVED", ErrInvalidTransition)
		}

		ledger, err := LoadLedger(ctx, tx, report.ID)
		if err != nil {
			return err
		}
		reporter, ok := ledger.Reporter()
		if !ok {
			return fmt.Errorf("%w: report %s has no REPORT action", ErrNotFound, report.ID)
		}

		if err := s.checkProof(report, ledger, reporter, in); err != nil {
			return err
		}

		if err := s.transition(ctx, tx, report.ID, report.Status, models.StatusRemoved); err != nil {
			return err
		}
		lat, lng := in.Latitude, in.Longitude
		proof := &models.HiveAction{
			MemberID:   in.ActorID,
			ActionType: in.ActionType,
			ImageURL:   in.ImageURL,
			Latitude:   &lat,
			Longitude:  &lng,
		}
		if err := ledger.Append(ctx, proof); err != nil {
			return err
		}

		reward, err := s.rewards.Issue(ctx, tx, proof.ID, reporter.MemberID, s.rewardPoints)
		if err != nil {
			return err
		}

		result = &ProofResult{
			ReportID:      report.ID,
			ActionID:      proof.ID,
			RewardID:      reward.ID,
			BeneficiaryID: reward.MemberID,
			Points:        reward.Points,
			Status:        models.StatusRemoved,
			ImageURL:      in.ImageURL,
		}
		return nil
	})
	if err != nil {
		var violation *GeofenceViolationError
		if errors.As(err, &violation) {
			metrics.GeofenceViolationsTotal.Inc()
			log.WithFields(logrus.Fields{
				"distance_meters": violation.Distance,
				"allowed_meters":  violation.Allowed,
			}).Warn("Proof rejected by geofence")
		} else {
			log.WithError(err).Warn("Failed to submit removal proof")
		}
		return nil, s.fail("proof", fmt.Errorf("service: could not submit proof: %w", err))
	}

	metrics.TransitionsTotal.WithLabelValues("proof", "ok").Inc()
	log.WithFields(logrus.Fields{
		"hive_action_id": result.ActionID,
		"reward_id":      result.RewardID,
	}).Info("Hive report removed")

	s.dispatcher.NotifyMember(ctx, result.BeneficiaryID, Message{
		Type:         models.NotificationRemoved,
		HiveReportID: result.ReportID,
		Title:        "Hive removed",
		Body:         fmt.Sprintf("The hive you reported was removed. You earned %d points", result.Points),
		Metadata:     map[string]string{"hive_report_id": result.ReportID.String(), "reward_id": result.RewardID.String()},
	})
	return result, nil
}

// checkProof проверяет предусловия подтверждения по свежепрочитанному состоянию
func (s *lifecycleEngine) checkProof(report *models.HiveReport, ledger *ActionLedger, reporter models.HiveAction, in ProofInput) error {
	switch in.ActionType {
	case models.ActionWaspProof:
		if report.Species != models.SpeciesWasp {
			return fmt.Errorf("%w: WASP_PROOF on a %s report", ErrInvalidTransition, report.Species)
		}
		if report.Status != models.StatusReported {
			return fmt.Errorf("%w: WASP_PROOF requires REPORTED, report is %q", ErrInvalidTransition, report.Status)
		}
		if reporter.MemberID != in.ActorID {
			return fmt.Errorf("%w: only the reporter may prove a wasp nest removal", ErrPermissionDenied)
		}
	case models.ActionHoneybeeProof:
		if report.Species != models.SpeciesHoneybee {
			return fmt.Errorf("%w: HONEYBEE_PROOF on a %s report", ErrInvalidTransition, report.Species)
		}
		if report.Status != models.StatusReserved {
			return fmt.Errorf("%w: HONEYBEE_PROOF requires RESERVED, report is %q", ErrInvalidTransition, report.Status)
		}
		if !ledger.HasActive(in.ActorID, models.ActionReserve) {
			return fmt.Errorf("%w: report is not reserved by member %s", ErrPermissionDenied, in.ActorID)
		}
		_, err := s.geofence.Check(
			geofence.Point{Lat: report.Latitude, Lng: report.Longitude},
			geofence.Point{Lat: in.Latitude, Lng: in.Longitude},
		)
		var violation *geofence.Violation
		if errors.As(err, &violation) {
			return &GeofenceViolationError{Distance: violation.Distance, Allowed: violation.Allowed}
		}
	}
	return nil
}

// transition выполняет условный переход под уже взятой блокировкой строки
func (s *lifecycleEngine) transition(ctx context.Context, tx HiveTx, reportID uuid.UUID, from, to models.ReportStatus) error {
	ok, err := tx.TransitionStatus(ctx, StatusTransition{ReportID: reportID, From: from, To: to})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: report %s left %q concurrently", ErrInvalidTransition, reportID, from)
	}
	return nil
}

// fail учитывает неуспешный исход операции в метриках
func (s *lifecycleEngine) fail(operation string, err error) error {
	metrics.TransitionsTotal.WithLabelValues(operation, outcome(err)).Inc()
	return err
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrRoleMismatch):
		return "role_mismatch"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrAlreadyFinalized):
		return "already_finalized"
	case errors.Is(err, ErrDuplicateAction):
		return "duplicate_action"
	case errors.Is(err, ErrGeofenceViolation):
		return "geofence_violation"
	case errors.Is(err, ErrInvalidDistrict), errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrTransient):
		return "transient"
	}
	return "error"
}
