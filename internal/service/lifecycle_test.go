package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyImage_CreatesUnfinalizedReportWithReportAction(t *testing.T) {
	f := newFixture(t)

	v, err := f.engine.VerifyImage(context.Background(), f.reporter, "https://img.example/a.jpg")

	require.NoError(t, err)
	assert.Equal(t, models.SpeciesHoneybee, v.AISpecies)
	assert.InDelta(t, 0.93, v.AIConfidence, 1e-9)
	assert.Equal(t, models.StatusUnfinalized, f.status(t, v.ReportID))
	actions := f.actions(t, v.ReportID)
	require.Len(t, actions, 1)
	assert.Equal(t, models.ActionReport, actions[0].ActionType)
	assert.Equal(t, f.reporter, actions[0].MemberID)
}

func TestVerifyImage_UnknownReporter(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.VerifyImage(context.Background(), uuid.New(), "https://img.example/a.jpg")

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestFinalize_SetsReported(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, err := f.engine.VerifyImage(ctx, f.reporter, "https://img.example/a.jpg")
	require.NoError(t, err)

	res, err := f.engine.Finalize(ctx, service.FinalizeInput{
		ReportID:     v.ReportID,
		ReporterID:   f.reporter,
		Species:      models.SpeciesWasp,
		Latitude:     reportLat,
		Longitude:    reportLng,
		RoadAddress:  "110 Sejong-daero",
		DistrictCode: testDistrict,
	})

	require.NoError(t, err)
	assert.Equal(t, "Jung-gu", res.Region.District)
	assert.Equal(t, "110 Sejong-daero", res.RoadAddress)
	r, err := f.store.GetReport(ctx, v.ReportID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReported, r.Status)
	assert.Equal(t, models.SpeciesWasp, r.Species)
	assert.Equal(t, testDistrict, r.DistrictCode)
}

func TestFinalize_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, err := f.engine.VerifyImage(ctx, f.reporter, "https://img.example/a.jpg")
	require.NoError(t, err)
	input := func(mut func(*service.FinalizeInput)) service.FinalizeInput {
		in := service.FinalizeInput{
			ReportID:     v.ReportID,
			ReporterID:   f.reporter,
			Species:      models.SpeciesHoneybee,
			Latitude:     reportLat,
			Longitude:    reportLng,
			DistrictCode: testDistrict,
		}
		mut(&in)
		return in
	}

	_, err = f.engine.Finalize(ctx, input(func(in *service.FinalizeInput) { in.ReporterID = f.beekeeper }))
	assert.ErrorIs(t, err, service.ErrRoleMismatch)

	_, err = f.engine.Finalize(ctx, input(func(in *service.FinalizeInput) { in.ReportID = uuid.New() }))
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = f.engine.Finalize(ctx, input(func(in *service.FinalizeInput) { in.DistrictCode = badDistrict }))
	assert.ErrorIs(t, err, service.ErrInvalidDistrict)

	_, err = f.engine.Finalize(ctx, input(func(in *service.FinalizeInput) { in.Species = "HORNET" }))
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	assert.Equal(t, models.StatusUnfinalized, f.status(t, v.ReportID))

	_, err = f.engine.Finalize(ctx, input(func(*service.FinalizeInput) {}))
	require.NoError(t, err)
	_, err = f.engine.Finalize(ctx, input(func(*service.FinalizeInput) {}))
	assert.ErrorIs(t, err, service.ErrAlreadyFinalized)
}

// Бронирование первым пчеловодом закрывает отчет для второго
func TestReserve_SecondBeekeeperGetsInvalidTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.finalized(t, models.SpeciesHoneybee)

	res, err := f.engine.Reserve(ctx, id, f.beekeeper)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReserved, res.Status)
	assert.Equal(t, models.StatusReserved, f.status(t, id))

	_, err = f.engine.Reserve(ctx, id, f.rival)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
	assert.Equal(t, models.StatusReserved, f.status(t, id))
}

func TestReserve_ConcurrentCallsExactlyOneWins(t *testing.T) {
	f := newFixture(t)
	id := f.finalized(t, models.SpeciesHoneybee)

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(beekeeper uuid.UUID) {
			defer wg.Done()
			_, err := f.engine.Reserve(context.Background(), id, beekeeper)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, service.ErrInvalidTransition):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}([]uuid.UUID{f.beekeeper, f.rival}[i%2])
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, rejected)
	reserves := 0
	for _, a := range f.actions(t, id) {
		if a.ActionType == models.ActionReserve {
			reserves++
		}
	}
	assert.Equal(t, 1, reserves)
}

func TestReserve_WaspReportAndUnknownReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	wasp := f.finalized(t, models.SpeciesWasp)

	_, err := f.engine.Reserve(ctx, wasp, f.beekeeper)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	_, err = f.engine.Reserve(ctx, uuid.New(), f.beekeeper)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

// Подтверждение в 40 м при радиусе 30 м отклоняется, отчет остается забронированным
func TestProof_HoneybeeOutsideGeofence(t *testing.T) {
	f := newFixture(t)
	id, _ := f.reserved(t)

	_, err := f.engine.Proof(context.Background(), service.ProofInput{
		ReportID:   id,
		ActorID:    f.beekeeper,
		ActionType: models.ActionHoneybeeProof,
		Latitude:   reportLat + 0.000359728,
		Longitude:  reportLng,
		ImageURL:   "https://img.example/proof.jpg",
	})

	require.ErrorIs(t, err, service.ErrGeofenceViolation)
	var violation *service.GeofenceViolationError
	require.ErrorAs(t, err, &violation)
	assert.InDelta(t, 40.0, violation.Distance, 0.5)
	assert.Equal(t, 30.0, violation.Allowed)
	assert.Equal(t, models.StatusReserved, f.status(t, id))
	assert.Empty(t, f.store.Rewards())
	assert.Len(t, f.actions(t, id), 2)
}

func TestProof_HoneybeeRewardsOriginalReporter(t *testing.T) {
	f := newFixture(t)
	id, _ := f.reserved(t)

	res, err := f.engine.Proof(context.Background(), service.ProofInput{
		ReportID:   id,
		ActorID:    f.beekeeper,
		ActionType: models.ActionHoneybeeProof,
		Latitude:   reportLat,
		Longitude:  reportLng,
		ImageURL:   "https://img.example/proof.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusRemoved, res.Status)
	assert.Equal(t, f.reporter, res.BeneficiaryID)
	assert.Equal(t, 100, res.Points)
	assert.Equal(t, 100, f.points(t, f.reporter))
	assert.Equal(t, 0, f.points(t, f.beekeeper))
	rewards := f.store.Rewards()
	require.Len(t, rewards, 1)
	assert.Equal(t, res.ActionID, rewards[0].ActionID)
	assert.Equal(t, res.RewardID, rewards[0].ID)
}

// Осиное гнездо закрывает сам автор без бронирования
func TestProof_WaspByReporter(t *testing.T) {
	f := newFixture(t)
	id := f.finalized(t, models.SpeciesWasp)

	res, err := f.engine.Proof(context.Background(), service.ProofInput{
		ReportID:   id,
		ActorID:    f.reporter,
		ActionType: models.ActionWaspProof,
		Latitude:   35.0,
		Longitude:  129.0,
		ImageURL:   "https://img.example/gone.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusRemoved, f.status(t, id))
	assert.Equal(t, "https://img.example/gone.jpg", res.ImageURL)
	rewards := f.store.Rewards()
	require.Len(t, rewards, 1)
	assert.Equal(t, 100, rewards[0].Points)
	assert.Equal(t, f.reporter, rewards[0].MemberID)
	assert.Equal(t, 100, f.points(t, f.reporter))

	proofs := 0
	for _, a := range f.actions(t, id) {
		if a.ActionType == models.ActionWaspProof {
			proofs++
			assert.Equal(t, res.ActionID, a.ID)
		}
	}
	assert.Equal(t, 1, proofs)
}

func TestProof_PreconditionFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	wasp := f.finalized(t, models.SpeciesWasp)
	honeybee := f.finalized(t, models.SpeciesHoneybee)
	reservedID, _ := f.reserved(t)
	at := func(id, actor uuid.UUID, typ models.ActionType) service.ProofInput {
		return service.ProofInput{ReportID: id, ActorID: actor, ActionType: typ, Latitude: reportLat, Longitude: reportLng}
	}

	tests := []struct {
		name string
		in   service.ProofInput
		want error
	}{
		{"wasp proof by someone else", at(wasp, f.beekeeper, models.ActionWaspProof), service.ErrPermissionDenied},
		{"wasp proof on honeybee report", at(honeybee, f.reporter, models.ActionWaspProof), service.ErrInvalidTransition},
		{"honeybee proof without reservation", at(honeybee, f.beekeeper, models.ActionHoneybeeProof), service.ErrInvalidTransition},
		{"honeybee proof by non reserver", at(reservedID, f.rival, models.ActionHoneybeeProof), service.ErrPermissionDenied},
		{"honeybee proof on wasp report", at(wasp, f.beekeeper, models.ActionHoneybeeProof), service.ErrInvalidTransition},
		{"unknown report", at(uuid.New(), f.reporter, models.ActionWaspProof), service.ErrNotFound},
		{"unknown actor", at(wasp, uuid.New(), models.ActionWaspProof), service.ErrNotFound},
		{"not a proof action", at(wasp, f.reporter, models.ActionReserve), service.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.Proof(ctx, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Equal(t, models.StatusReported, f.status(t, wasp))
	assert.Equal(t, models.StatusReported, f.status(t, honeybee))
	assert.Equal(t, models.StatusReserved, f.status(t, reservedID))
	assert.Empty(t, f.store.Rewards())
}

func TestRemovedIsTerminal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, reserveID := f.reserved(t)
	_, err := f.engine.Proof(ctx, service.ProofInput{
		ReportID: id, ActorID: f.beekeeper, ActionType: models.ActionHoneybeeProof,
		Latitude: reportLat, Longitude: reportLng,
	})
	require.NoError(t, err)

	_, err = f.engine.Proof(ctx, service.ProofInput{
		ReportID: id, ActorID: f.beekeeper, ActionType: models.ActionHoneybeeProof,
		Latitude: reportLat, Longitude: reportLng,
	})
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	_, err = f.engine.Reserve(ctx, id, f.rival)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	err = f.engine.CancelReservation(ctx, id, reserveID, f.beekeeper)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	assert.Equal(t, models.StatusRemoved, f.status(t, id))
	assert.Len(t, f.store.Rewards(), 1)
	assert.Equal(t, 100, f.points(t, f.reporter))
}

// Отмена чужого бронирования запрещена, статус не меняется
func TestCancelReservation_ByBeekeeperWhoNeverReserved(t *testing.T) {
	f := newFixture(t)
	id, reserveID := f.reserved(t)

	err := f.engine.CancelReservation(context.Background(), id, reserveID, f.rival)

	assert.ErrorIs(t, err, service.ErrPermissionDenied)
	assert.Equal(t, models.StatusReserved, f.status(t, id))
}

func TestCancelReservation_AppendsCancelAndReopens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, reserveID := f.reserved(t)

	err := f.engine.CancelReservation(ctx, id, reserveID, f.beekeeper)

	require.NoError(t, err)
	assert.Equal(t, models.StatusReported, f.status(t, id))
	actions := f.actions(t, id)
	require.Len(t, actions, 3)
	cancel := actions[2]
	assert.Equal(t, models.ActionCancelReserve, cancel.ActionType)
	require.NotNil(t, cancel.RefActionID)
	assert.Equal(t, reserveID, *cancel.RefActionID)
	assert.Equal(t, models.ActionReserve, actions[1].ActionType)

	// отмененное бронирование нельзя отменить повторно, но отчет снова доступен
	err = f.engine.CancelReservation(ctx, id, reserveID, f.beekeeper)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	res, err := f.engine.Reserve(ctx, id, f.rival)
	require.NoError(t, err)
	err = f.engine.CancelReservation(ctx, id, reserveID, f.beekeeper)
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
	require.NoError(t, f.engine.CancelReservation(ctx, id, res.ActionID, f.rival))
}

func TestCancelReservation_UnknownActionAndWrongStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, _ := f.reserved(t)
	open := f.finalized(t, models.SpeciesHoneybee)

	err := f.engine.CancelReservation(ctx, id, uuid.New(), f.beekeeper)
	assert.ErrorIs(t, err, service.ErrNotFound)

	err = f.engine.CancelReservation(ctx, open, uuid.New(), f.beekeeper)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	err = f.engine.CancelReservation(ctx, uuid.New(), uuid.New(), f.beekeeper)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestNotificationFailureDoesNotFailTransition(t *testing.T) {
	f := newFixtureWithPublishErr(t, errors.New("redis down"))
	ctx := context.Background()
	id, _ := f.reserved(t)

	res, err := f.engine.Proof(ctx, service.ProofInput{
		ReportID: id, ActorID: f.beekeeper, ActionType: models.ActionHoneybeeProof,
		Latitude: reportLat, Longitude: reportLng,
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusRemoved, res.Status)
	assert.Equal(t, models.StatusRemoved, f.status(t, id))

	// история пишется независимо от доставки push
	history := f.notifications(t, f.reporter)
	require.NotEmpty(t, history)
	assert.Equal(t, models.NotificationRemoved, history[0].Type)
}
