package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"jarayid-admin/domain/model"
	"jarayid-admin/usecase"
)

func loadedBulletinUsecase(t *testing.T, scripts *MockScriptGeneration, video *MockVideoGenerator, audit *MockAuditLog) usecase.IBulletinUsecase {
	t.Helper()
	scripts.On("GetScripts", mock.Anything).
		Return([]model.ScriptFragment{
			{ID: 11, CountryID: 7, CountryName: "Lebanon", Status: "PENDING", Prompt: `{"script_s10":"Beirut headline."}`},
			{ID: 12, CountryID: 3, CountryName: "Egypt", Status: "PENDING", Prompt: `{"script_s10":"Cairo headline."}`},
		}, nil).
		Once()

	u := usecase.NewBulletinUsecase(scripts, video, audit, time.Minute)
	_, err := u.LoadBulletins(context.Background())
	require.NoError(t, err)
	return u
}

func TestBulletinUsecase_LoadBulletins(t *testing.T) {
	scripts := new(MockScriptGeneration)
	video := new(MockVideoGenerator)
	audit := new(MockAuditLog)

	u := loadedBulletinUsecase(t, scripts, video, audit)

	bulletins := u.Bulletins()
	require.Len(t, bulletins, 2)
	assert.Equal(t, int64(11), bulletins[0].ID)
	assert.Equal(t, "Lebanon", bulletins[0].CountryName)
	assert.Equal(t, "Beirut headline.", bulletins[0].Overview)
	assert.Equal(t, model.ApprovalPending, bulletins[0].ApprovalStatus)
	assert.Equal(t, model.VideoPending, bulletins[0].VideoGenStatus)

	scripts.AssertExpectations(t)
}

func TestBulletinUsecase_Approve(t *testing.T) {
	scripts := new(MockScriptGeneration)
	video := new(MockVideoGenerator)
	audit := new(MockAuditLog)

	u := loadedBulletinUsecase(t, scripts, video, audit)

	scripts.On("UpdateApproval", mock.Anything, int64(11), model.ApprovalApproved, "", "admin").
		Return(nil).
		Once()
	audit.On("Record", mock.Anything, mock.Anything).Return(nil).Once()

	err := u.Approve(context.Background(), 11, "admin")
	require.NoError(t, err)

	bulletins := u.Bulletins()
	assert.Equal(t, model.ApprovalApproved, bulletins[0].ApprovalStatus)
	assert.Equal(t, model.ApprovalPending, bulletins[1].ApprovalStatus)

	scripts.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestBulletinUsecase_Approve_RemoteFailureLeavesStateUnchanged(t *testing.T) {
	scripts := new(MockScriptGeneration)
	video := new(MockVideoGenerator)
	audit := new(MockAuditLog)

	u := loadedBulletinUsecase(t, scripts, video, audit)

	scripts.On("UpdateApproval", mock.Anything, int64(11), model.ApprovalApproved, "", "admin").
		Return(assert.AnError).
		Once()

	err := u.Approve(context.Background(), 11, "admin")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, model.ApprovalPending, u.Bulletins()[0].ApprovalStatus)

	audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	scripts.AssertExpectations(t)
}

func TestBulletinUsecase_Reject_BlankRemarksIsLocalError(t *testing.T) {
	scripts := new(MockScriptGeneration)
	video := new(MockVideoGenerator)
	audit := new(MockAuditLog)

	u := loadedBulletinUsecase(t, scripts, video, audit)

	err := u.Reject(context.Background(), 11, "   ", "admin")
	assert.ErrorIs(t, err, usecase.ErrBlankRemarks)
	assert.Equal(t, model.ApprovalPending, u.Bulletins()[0].ApprovalStatus)

	scripts.AssertNotCalled(t, "UpdateApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestBulletinUsecase_Reject_TrimsRemarks(t *testing.T) {
	scripts := new(MockScriptGeneration)
	video := new(MockVideoGenerator)
	audit := new(MockAuditLog)

	u := loadedBulletinUsecase(t, scripts, video, audit)

	scripts.On("UpdateApproval", mock.Anything, int64(12), model.ApprovalRejected, "wrong tone", "admin").
		Return(nil).
		Once()
	audit.On("Record", mock.Anything, mock.Anything).Return(nil).Once()

	err := u.Reject(context.Background(), 12, "  wrong tone  ", "admin")
	require.NoError(t, err)

	bulletins := u.Bulletins()
	assert.Equal(t, model.ApprovalRejected, bulletins[1].ApprovalStatus)
	assert.Equal(t, "wrong tone", bulletins[1].CancellationRemarks)

	scripts.AssertExpectations(t)
}

func TestBulletinUsecase_RequestVideo(t *testing.T) {
	scripts := new(MockScriptGeneration)
	video := new(MockVideoGenerator)
	audit := new(MockAuditLog)

	u := loadedBulletinUsecase(t, scripts, video, audit)

	video.On("GenerateNews", mock.Anything, int64(7)).
		Return("https://cdn.example/videos/42.mp4", nil).
		Once()
	audit.On("Record", mock.Anything, mock.Anything).Return(nil).Once()

	url, err := u.RequestVideo(context.Background(), 11, "admin")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/videos/42.mp4", url)

	b := u.Bulletins()[0]
	assert.Equal(t, model.VideoReady, b.VideoGenStatus)
	assert.Equal(t, "https://cdn.example/videos/42.mp4", b.VideoURL)

	video.AssertExpectations(t)
}

func TestBulletinUsecase_RequestVideo_FailureMarksFailed(t *testing.T) {
	scripts := new(MockScriptGeneration)
	video := new(MockVideoGenerator)
	audit := new(MockAuditLog)

	u := loadedBulletinUsecase(t, scripts, video, audit)

	video.On("GenerateNews", mock.Anything, int64(7)).
		Return("", assert.AnError).
		Once()

	_, err := u.RequestVideo(context.Background(), 11, "admin")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, model.VideoFailed, u.Bulletins()[0].VideoGenStatus)

	audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	video.AssertExpectations(t)
}

func TestBulletinUsecase_RequestVideo_SecondRequestWhileInFlight(t *testing.T) {
	scripts := new(MockScriptGeneration)
	video := new(MockVideoGenerator)
	audit := new(MockAuditLog)

	u := loadedBulletinUsecase(t, scripts, video, audit)

	// The provider call happens with the in-flight flag set, so a second
	// request issued mid-call must be rejected.
	video.On("GenerateNews", mock.Anything, int64(7)).
		Run(func(args mock.Arguments) {
			_, err := u.RequestVideo(context.Background(), 11, "admin")
			assert.ErrorIs(t, err, usecase.ErrGenerationInFlight)
		}).
		Return("https://cdn.example/videos/42.mp4", nil).
		Once()
	audit.On("Record", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := u.RequestVideo(context.Background(), 11, "admin")
	require.NoError(t, err)

	video.AssertExpectations(t)
}

func TestBulletinUsecase_RequestVideo_FlagReleasedAfterFailure(t *testing.T) {
	scripts := new(MockScriptGeneration)
	video := new(MockVideoGenerator)
	audit := new(MockAuditLog)

	u := loadedBulletinUsecase(t, scripts, video, audit)

	video.On("GenerateNews", mock.Anything, int64(7)).
		Return("", assert.AnError).
		Once()
	video.On("GenerateNews", mock.Anything, int64(7)).
		Return("https://cdn.example/videos/42.mp4", nil).
		Once()
	audit.On("Record", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := u.RequestVideo(context.Background(), 11, "admin")
	require.Error(t, err)

	url, err := u.RequestVideo(context.Background(), 11, "admin")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/videos/42.mp4", url)

	video.AssertExpectations(t)
}

func TestBulletinUsecase_UnknownBulletin(t *testing.T) {
	scripts := new(MockScriptGeneration)
	video := new(MockVideoGenerator)
	audit := new(MockAuditLog)

	u := loadedBulletinUsecase(t, scripts, video, audit)

	assert.ErrorIs(t, u.Approve(context.Background(), 999, "admin"), usecase.ErrUnknownBulletin)
	assert.ErrorIs(t, u.Reject(context.Background(), 999, "remarks", "admin"), usecase.ErrUnknownBulletin)
	_, err := u.RequestVideo(context.Background(), 999, "admin")
	assert.ErrorIs(t, err, usecase.ErrUnknownBulletin)
}
