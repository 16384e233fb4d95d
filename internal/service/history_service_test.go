package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/gestemps/internal/contract"
	"github.com/alexanderramin/gestemps/internal/repository"
	"github.com/alexanderramin/gestemps/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyTestSetup(t *testing.T) (HistoryService, ComputeService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewHistoryService(repository.NewSQLiteRunRepo(database), testutil.NewTestUoW(database)),
		NewComputeService(nil)
}

func scenarioResponse(t *testing.T, compute ComputeService) *contract.ComputeResponse {
	t.Helper()
	resp, err := compute.Compute(context.Background(), contract.ComputeRequest{
		OffClientText: testutil.Lines(
			testutil.OffClientLine("A", "Formation", "10/06/2025 08:00", "10/06/2025 10:00"),
			testutil.OffClientLine("B", "Réunion", "11/06/2025 14:00", "11/06/2025 14:30"),
			"C\ttronquée",
		),
		ClientText: testutil.OnClientLine("WO-1", "10/06/2025 09:00", "1,3", "0,6"),
	})
	require.NoError(t, err)
	return resp
}

func TestHistoryService_SaveAndGet(t *testing.T) {
	history, compute := historyTestSetup(t)
	ctx := context.Background()
	resp := scenarioResponse(t, compute)

	run, err := history.Save(ctx, resp)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 1, run.DiagnosticsCount)

	fetched, err := history.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.InDelta(t, resp.Result.OffClient, fetched.Result.OffClient, 1e-9)
	assert.InDelta(t, resp.Result.ClientWork, fetched.Result.ClientWork, 1e-9)
	assert.Equal(t, resp.Days, fetched.Days)
	assert.Equal(t, resp.Result.OffClientDetails, fetched.Result.OffClientDetails)
}

func TestHistoryService_SaveNil(t *testing.T) {
	history, _ := historyTestSetup(t)

	_, err := history.Save(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNothingToSave)
}

func TestHistoryService_SaveRollsBackPartialRun(t *testing.T) {
	database := testutil.NewTestDB(t)
	runs := repository.NewSQLiteRunRepo(database)
	boom := errors.New("disk full")
	// Exec 1 inserts the run, 2-3 the days, 4 the first entry.
	history := NewHistoryService(runs, &testutil.FailingExecUoW{DB: database, FailOn: 4, Err: boom})
	resp := scenarioResponse(t, NewComputeService(nil))

	_, err := history.Save(context.Background(), resp)
	assert.ErrorIs(t, err, boom)

	list, err := history.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHistoryService_ListNewestFirstWithinSecond(t *testing.T) {
	history, compute := historyTestSetup(t)
	ctx := context.Background()
	resp := scenarioResponse(t, compute)

	var ids []string
	for range 3 {
		run, err := history.Save(ctx, resp)
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}

	list, err := history.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestHistoryService_ListAndDelete(t *testing.T) {
	history, compute := historyTestSetup(t)
	ctx := context.Background()

	first, err := history.Save(ctx, scenarioResponse(t, compute))
	require.NoError(t, err)
	second, err := history.Save(ctx, scenarioResponse(t, compute))
	require.NoError(t, err)

	list, err := history.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, history.Delete(ctx, first.ID))
	list, err = history.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	err = history.Delete(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
