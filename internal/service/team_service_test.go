package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arena-team-bot/internal/model"
	"arena-team-bot/internal/repository"
	"arena-team-bot/internal/service"
	"arena-team-bot/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newFileState создаёт состояние поверх файла во временной директории.
func newFileState(t *testing.T) (*service.State, *repository.FileStore) {
	t.Helper()

	store := repository.NewFileStore(filepath.Join(t.TempDir(), "Arena.txt"))
	state := service.NewState(store, testLogger())
	require.NoError(t, state.Load(context.Background()))
	return state, store
}

func TestValidateHandleFormat(t *testing.T) {
	assert.True(t, service.ValidateHandleFormat("Larry#123"))
	assert.True(t, service.ValidateHandleFormat("Larry#12345"))
	assert.False(t, service.ValidateHandleFormat("Larry#12"))
	assert.False(t, service.ValidateHandleFormat("Larry_123"))
}

func TestTeamService_CreateTeam(t *testing.T) {
	tests := []struct {
		name     string
		seed     func(t *testing.T, svc *service.TeamService)
		team     string
		creator  string
		handle   string
		wantCode string
	}{
		{
			name:    "Success",
			team:    "Foxes",
			creator: "100",
			handle:  "Abc#123",
		},
		{
			name:     "Fail: invalid handle",
			team:     "Foxes",
			creator:  "100",
			handle:   "Abc_123",
			wantCode: service.CodeInvalidHandleFormat,
		},
		{
			name:     "Fail: empty name",
			team:     "   ",
			creator:  "100",
			handle:   "Abc#123",
			wantCode: service.CodeBadRequest,
		},
		{
			name: "Fail: duplicate name",
			seed: func(t *testing.T, svc *service.TeamService) {
				_, err := svc.CreateTeam(context.Background(), "Foxes", "900", "Zzz#999")
				require.NoError(t, err)
			},
			team:     "Foxes",
			creator:  "100",
			handle:   "Abc#123",
			wantCode: service.CodeDuplicateTeamName,
		},
		{
			name: "Fail: creator already rostered",
			seed: func(t *testing.T, svc *service.TeamService) {
				_, err := svc.CreateTeam(context.Background(), "Wolves", "100", "Abc#123")
				require.NoError(t, err)
			},
			team:     "Foxes",
			creator:  "100",
			handle:   "Abc#123",
			wantCode: service.CodePlayerAlreadyRostered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, store := newFileState(t)
			svc := service.NewTeamService(state)
			if tt.seed != nil {
				tt.seed(t, svc)
			}
			before := state.Snapshot()

			got, err := svc.CreateTeam(context.Background(), tt.team, tt.creator, tt.handle)

			if tt.wantCode != "" {
				assert.True(t, service.IsCode(err, tt.wantCode), "got %v", err)
				assert.Equal(t, before, state.Snapshot(), "failed command must not change state")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.TeamOpen, got.State())

			persisted, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, got, persisted.Teams[tt.team])
		})
	}
}

func TestTeamService_CreateTeam_DuplicateKeepsRecord(t *testing.T) {
	state, _ := newFileState(t)
	svc := service.NewTeamService(state)
	ctx := context.Background()

	original, err := svc.CreateTeam(ctx, "Foxes", "100", "Abc#123")
	require.NoError(t, err)

	_, err = svc.CreateTeam(ctx, "Foxes", "200", "Def#456")
	assert.True(t, service.IsCode(err, service.CodeDuplicateTeamName))

	got, err := svc.GetTeam(ctx, "Foxes")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestTeamService_JoinOpenTeam(t *testing.T) {
	ctx := context.Background()
	state, _ := newFileState(t)
	svc := service.NewTeamService(state)

	_, err := svc.CreateTeam(ctx, "Foxes", "100", "Abc#123")
	require.NoError(t, err)
	_, err = svc.CreateTeam(ctx, "Wolves", "300", "Ghi#789")
	require.NoError(t, err)
	_, err = svc.CreateTeam(ctx, "Bears", "500", "Jkl#321")
	require.NoError(t, err)
	_, err = svc.CompleteTeam(ctx, "Bears", "600", "Mno#654")
	require.NoError(t, err)

	tests := []struct {
		name      string
		team      string
		candidate string
		wantCode  string
	}{
		{name: "Success", team: "Foxes", candidate: "200"},
		{name: "Fail: unknown team", team: "Eagles", candidate: "200", wantCode: service.CodeTeamNotFound},
		{name: "Fail: team full", team: "Bears", candidate: "200", wantCode: service.CodeTeamFull},
		{name: "Fail: candidate is player1 elsewhere", team: "Foxes", candidate: "300", wantCode: service.CodePlayerAlreadyRostered},
		{name: "Fail: candidate is player2 elsewhere", team: "Foxes", candidate: "600", wantCode: service.CodePlayerAlreadyRostered},
		{name: "Fail: candidate owns the team", team: "Foxes", candidate: "100", wantCode: service.CodePlayerAlreadyRostered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := state.Snapshot()
			team, err := svc.JoinOpenTeam(ctx, tt.team, tt.candidate)
			if tt.wantCode != "" {
				assert.True(t, service.IsCode(err, tt.wantCode), "got %v", err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.team, team.TeamName)
			}
			assert.Equal(t, before, state.Snapshot())
		})
	}
}

func TestTeamService_RosteredPlayerCannotCreateOrJoinAgain(t *testing.T) {
	ctx := context.Background()
	state, _ := newFileState(t)
	svc := service.NewTeamService(state)

	_, err := svc.CreateTeam(ctx, "Foxes", "100", "Abc#123")
	require.NoError(t, err)
	_, err = svc.CompleteTeam(ctx, "Foxes", "200", "Def#456")
	require.NoError(t, err)
	_, err = svc.CreateTeam(ctx, "Wolves", "300", "Ghi#789")
	require.NoError(t, err)

	for _, id := range []string{"100", "200"} {
		for i := 0; i < 2; i++ {
			_, err = svc.CreateTeam(ctx, "Eagles", id, "Xyz#111")
			assert.True(t, service.IsCode(err, service.CodePlayerAlreadyRostered))

			_, err = svc.JoinOpenTeam(ctx, "Wolves", id)
			assert.True(t, service.IsCode(err, service.CodePlayerAlreadyRostered))
		}
	}
}

func TestTeamService_ReserveSlot(t *testing.T) {
	ctx := context.Background()
	state, _ := newFileState(t)
	svc := service.NewTeamService(state)

	_, err := svc.CreateTeam(ctx, "Foxes", "100", "Abc#123")
	require.NoError(t, err)
	_, err = svc.CreateTeam(ctx, "Wolves", "300", "Ghi#789")
	require.NoError(t, err)

	before := state.Snapshot()
	team, err := svc.ReserveSlot(ctx, "Foxes", "200")
	require.NoError(t, err)
	assert.Equal(t, "Foxes", team.TeamName)
	assert.Equal(t, before, state.Snapshot(), "reservation is not persisted")

	_, err = svc.ReserveSlot(ctx, "Foxes", "400")
	assert.True(t, service.IsCode(err, service.CodeTeamFull), "got %v", err)
	_, err = svc.JoinOpenTeam(ctx, "Foxes", "400")
	assert.True(t, service.IsCode(err, service.CodeTeamFull), "got %v", err)
	_, err = svc.CompleteTeam(ctx, "Foxes", "400", "Xyz#111")
	assert.True(t, service.IsCode(err, service.CodeTeamFull), "got %v", err)

	_, err = svc.ReserveSlot(ctx, "Wolves", "200")
	assert.True(t, service.IsCode(err, service.CodePlayerAlreadyRostered), "got %v", err)

	_, err = svc.JoinOpenTeam(ctx, "Foxes", "200")
	assert.NoError(t, err, "holder still passes the check")

	svc.ReleaseSlot("Foxes", "400")
	_, err = svc.JoinOpenTeam(ctx, "Foxes", "400")
	assert.True(t, service.IsCode(err, service.CodeTeamFull), "only the holder can release")

	svc.ReleaseSlot("Foxes", "200")
	_, err = svc.JoinOpenTeam(ctx, "Foxes", "400")
	assert.NoError(t, err)
	_, err = svc.CompleteTeam(ctx, "Foxes", "400", "Xyz#111")
	assert.NoError(t, err)
}

func TestTeamService_CompleteTeam(t *testing.T) {
	ctx := context.Background()
	state, _ := newFileState(t)
	svc := service.NewTeamService(state)

	_, err := svc.CreateTeam(ctx, "Foxes", "100", "Abc#123")
	require.NoError(t, err)

	_, err = svc.CompleteTeam(ctx, "Foxes", "200", "bad")
	assert.True(t, service.IsCode(err, service.CodeInvalidHandleFormat))

	team, err := svc.CompleteTeam(ctx, "Foxes", "200", "Def#456")
	require.NoError(t, err)
	assert.Equal(t, model.TeamFull, team.State())
	assert.Equal(t, "200", *team.Player2ID)
	assert.Equal(t, "Def#456", *team.Player2Handle)

	_, err = svc.CompleteTeam(ctx, "Foxes", "300", "Ghi#789")
	assert.True(t, service.IsCode(err, service.CodeTeamFull), "FULL never goes back to OPEN")
}

func TestTeamService_OpenTeamOwnedBy(t *testing.T) {
	ctx := context.Background()
	state, _ := newFileState(t)
	svc := service.NewTeamService(state)

	_, err := svc.OpenTeamOwnedBy(ctx, "100")
	assert.True(t, service.IsCode(err, service.CodeNoOpenTeam))

	_, err = svc.CreateTeam(ctx, "Foxes", "100", "Abc#123")
	require.NoError(t, err)

	team, err := svc.OpenTeamOwnedBy(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, "Foxes", team.TeamName)

	_, err = svc.CompleteTeam(ctx, "Foxes", "200", "Def#456")
	require.NoError(t, err)

	_, err = svc.OpenTeamOwnedBy(ctx, "100")
	assert.True(t, service.IsCode(err, service.CodeNoOpenTeam))
	_, err = svc.OpenTeamOwnedBy(ctx, "200")
	assert.True(t, service.IsCode(err, service.CodeNoOpenTeam), "player2 does not own the team")
}

func TestTeamService_ListTeamsAndCounts(t *testing.T) {
	ctx := context.Background()
	state, _ := newFileState(t)
	svc := service.NewTeamService(state)

	for _, name := range []string{"Wolves", "Foxes", "Bears"} {
		_, err := svc.CreateTeam(ctx, name, "id-"+name, "Abc#123")
		require.NoError(t, err)
	}
	_, err := svc.CompleteTeam(ctx, "Bears", "id-x", "Def#456")
	require.NoError(t, err)

	teams, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, "Bears", teams[0].TeamName)
	assert.Equal(t, "Foxes", teams[1].TeamName)
	assert.Equal(t, "Wolves", teams[2].TeamName)

	open, full, pending := svc.Counts()
	assert.Equal(t, 2, open)
	assert.Equal(t, 1, full)
	assert.Equal(t, 0, pending)

	_, err = svc.GetTeam(ctx, "Eagles")
	assert.True(t, service.IsNotFound(err))
}

func TestTeamService_SaveFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.SnapshotStore)
	store.On("Load", mock.Anything).Return(model.EmptySnapshot(), nil)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	state := service.NewState(store, testLogger())
	require.NoError(t, state.Load(ctx))
	svc := service.NewTeamService(state)

	_, err := svc.CreateTeam(ctx, "Foxes", "100", "Abc#123")
	assert.True(t, service.IsCode(err, service.CodeInternal))
	assert.Empty(t, state.Snapshot().Teams)

	store.AssertExpectations(t)
}
