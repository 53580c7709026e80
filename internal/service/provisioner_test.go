package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arena-team-bot/internal/model"
	"arena-team-bot/internal/service"
	"arena-team-bot/internal/service/mocks"
)

const testColor = 0x3498db

var (
	alice = model.Member{ID: "100", Username: "alice"}
	dora  = model.Member{ID: "200", Username: "dora"}
)

func expectProvisioning(p *mocks.Platform) {
	p.On("GuildMember", mock.Anything, "100").Return(alice, true, nil)
	p.On("GuildMember", mock.Anything, "200").Return(dora, true, nil)
	p.On("CreateRole", mock.Anything, "Team: Foxes", testColor).Return("role-team", nil)
	p.On("CreateRole", mock.Anything, "Abc#123", testColor).Return("role-1", nil)
	p.On("CreateRole", mock.Anything, "Def#456", testColor).Return("role-2", nil)
	p.On("AddMemberRoles", mock.Anything, "100", "role-team", "role-1").Return(nil)
	p.On("AddMemberRoles", mock.Anything, "200", "role-team", "role-2").Return(nil)
	p.On("CreatePrivateCategory", mock.Anything, "Foxes", []string{"100", "200"}).Return("cat-1", nil)
	p.On("CreateTextChannel", mock.Anything, "Foxes-chat", "cat-1").Return("chan-text", nil)
	p.On("CreateVoiceChannel", mock.Anything, "Foxes-voice", "cat-1").Return("chan-voice", nil)
}

func TestEndToEnd_CreateInviteResolveFinalize(t *testing.T) {
	ctx := context.Background()
	state, store := newFileState(t)

	platform := new(mocks.Platform)
	platform.On("SendDirectMessage", mock.Anything, "200", mock.Anything).Return(nil)
	expectProvisioning(platform)

	teams := service.NewTeamService(state)
	invites := service.NewInviteService(state, platform)
	provisioner := service.NewProvisioner(teams, platform, testLogger()).WithColor(func() int { return testColor })

	_, err := teams.CreateTeam(ctx, "Foxes", "100", "Abc#123")
	require.NoError(t, err)
	_, err = invites.IssueInvite(ctx, "100", dora, "Foxes")
	require.NoError(t, err)

	pairing, ok, err := invites.ResolveInvite(ctx, "200", "Def#456")
	require.NoError(t, err)
	require.True(t, ok)

	team, err := provisioner.FinalizeTeam(ctx, pairing)
	require.NoError(t, err)

	want := model.Team{TeamName: "Foxes", Player1ID: "100", Player1Handle: "Abc#123"}.WithPlayer2("200", "Def#456")
	assert.Equal(t, want, team)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, persisted.Teams["Foxes"])
	assert.Empty(t, persisted.PendingInvites)

	platform.AssertExpectations(t)
}

func TestProvisioner_FinalizeTeam_Failures(t *testing.T) {
	pairing := model.Pairing{
		TeamName:      "Foxes",
		InviterID:     "100",
		InviterHandle: "Abc#123",
		InviteeID:     "200",
		InviteeHandle: "Def#456",
	}

	tests := []struct {
		name       string
		pairing    model.Pairing
		setupMocks func(p *mocks.Platform)
		wantCode   string
	}{
		{
			name:    "Fail: inviter left the guild",
			pairing: pairing,
			setupMocks: func(p *mocks.Platform) {
				p.On("GuildMember", mock.Anything, "100").Return(model.Member{}, false, nil)
			},
			wantCode: service.CodeMemberNotFound,
		},
		{
			name:    "Fail: invitee left the guild",
			pairing: pairing,
			setupMocks: func(p *mocks.Platform) {
				p.On("GuildMember", mock.Anything, "100").Return(alice, true, nil)
				p.On("GuildMember", mock.Anything, "200").Return(model.Member{}, false, nil)
			},
			wantCode: service.CodeMemberNotFound,
		},
		{
			name:    "Fail: role creation forbidden",
			pairing: pairing,
			setupMocks: func(p *mocks.Platform) {
				p.On("GuildMember", mock.Anything, "100").Return(alice, true, nil)
				p.On("GuildMember", mock.Anything, "200").Return(dora, true, nil)
				p.On("CreateRole", mock.Anything, "Team: Foxes", testColor).Return("", assert.AnError)
			},
			wantCode: service.CodeInternal,
		},
		{
			name: "Fail: team vanished",
			pairing: model.Pairing{
				TeamName:      "Ghosts",
				InviterID:     "100",
				InviteeID:     "200",
				InviteeHandle: "Def#456",
			},
			setupMocks: func(p *mocks.Platform) {},
			wantCode:   service.CodeTeamNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			state, _ := newFileState(t)
			teams := service.NewTeamService(state)
			_, err := teams.CreateTeam(ctx, "Foxes", "100", "Abc#123")
			require.NoError(t, err)

			platform := new(mocks.Platform)
			tt.setupMocks(platform)
			provisioner := service.NewProvisioner(teams, platform, testLogger()).WithColor(func() int { return testColor })

			_, err = provisioner.FinalizeTeam(ctx, tt.pairing)

			assert.True(t, service.IsCode(err, tt.wantCode), "got %v", err)
			team, getErr := teams.GetTeam(ctx, "Foxes")
			require.NoError(t, getErr)
			assert.Equal(t, model.TeamOpen, team.State(), "registry untouched on failure")
			_, joinErr := teams.JoinOpenTeam(ctx, "Foxes", "200")
			assert.NoError(t, joinErr, "slot released on failure")
			platform.AssertExpectations(t)
		})
	}
}

func TestProvisioner_UsesRegistryHandleAtFinalizeTime(t *testing.T) {
	ctx := context.Background()
	state, _ := newFileState(t)
	teams := service.NewTeamService(state)
	_, err := teams.CreateTeam(ctx, "Foxes", "100", "Abc#123")
	require.NoError(t, err)

	platform := new(mocks.Platform)
	expectProvisioning(platform)
	provisioner := service.NewProvisioner(teams, platform, testLogger()).WithColor(func() int { return testColor })

	stale := model.Pairing{
		TeamName:      "Foxes",
		InviterID:     "100",
		InviterHandle: "Old#000",
		InviteeID:     "200",
		InviteeHandle: "Def#456",
	}
	_, err = provisioner.FinalizeTeam(ctx, stale)
	require.NoError(t, err)

	platform.AssertNotCalled(t, "CreateRole", mock.Anything, "Old#000", mock.Anything)
	platform.AssertExpectations(t)
}

func TestProvisioner_FinalizeTeam_ConcurrentAnswersProvisionOnce(t *testing.T) {
	ctx := context.Background()
	state, _ := newFileState(t)
	teams := service.NewTeamService(state)
	_, err := teams.CreateTeam(ctx, "Foxes", "100", "Abc#123")
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})

	platform := new(mocks.Platform)
	platform.On("GuildMember", mock.Anything, "100").
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(alice, true, nil).
		Once()
	expectProvisioning(platform)

	provisioner := service.NewProvisioner(teams, platform, testLogger()).WithColor(func() int { return testColor })

	type result struct {
		team model.Team
		err  error
	}
	first := make(chan result, 1)
	go func() {
		team, err := provisioner.FinalizeTeam(ctx, model.Pairing{
			TeamName:      "Foxes",
			InviterID:     "100",
			InviteeID:     "200",
			InviteeHandle: "Def#456",
		})
		first <- result{team: team, err: err}
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("first finalization never reached the platform")
	}

	_, err = provisioner.FinalizeTeam(ctx, model.Pairing{
		TeamName:      "Foxes",
		InviterID:     "100",
		InviteeID:     "300",
		InviteeHandle: "Ghi#789",
	})
	assert.True(t, service.IsCode(err, service.CodeTeamFull), "got %v", err)

	close(release)

	var res result
	select {
	case res = <-first:
	case <-time.After(5 * time.Second):
		t.Fatal("first finalization did not finish")
	}
	require.NoError(t, res.err)
	require.NotNil(t, res.team.Player2ID)
	assert.Equal(t, "200", *res.team.Player2ID)

	platform.AssertNumberOfCalls(t, "CreatePrivateCategory", 1)
	platform.AssertNumberOfCalls(t, "AddMemberRoles", 2)
	platform.AssertNumberOfCalls(t, "GuildMember", 2)
	platform.AssertNotCalled(t, "GuildMember", mock.Anything, "300")
	platform.AssertNotCalled(t, "AddMemberRoles", mock.Anything, "300", mock.Anything, mock.Anything)
	platform.AssertNotCalled(t, "CreateRole", mock.Anything, "Ghi#789", mock.Anything)
}
