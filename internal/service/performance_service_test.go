package service

import (
	"context"
	"testing"

	"github.com/opusarchive/opus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePerformanceInput() CreatePerformanceInput {
	return CreatePerformanceInput{
		Date:         "2024-06-15",
		Venue:        "예술의전당 콘서트홀",
		Pieces:       []string{domain.FormatProgramPiece(domain.ProgramPartFirst, "차이코프스키 바이올린 협주곡")},
		Instrument:   "바이올린",
		SubPart:      "1st Violin",
		Conductor:    "라포 시닉",
		EnsembleName: "서울 필하모닉",
		IsPublic:     true,
	}
}

func newPerformanceService(t *testing.T) (*PerformanceService, *CommentService, *LikeService) {
	t.Helper()
	repos := newTestRepos(t)
	return NewPerformanceService(repos.performances, repos.comments, repos.likes),
		NewCommentService(repos.comments),
		NewLikeService(repos.likes)
}

func TestCreateRoundTrip(t *testing.T) {
	svc, _, _ := newPerformanceService(t)
	ctx := context.Background()

	input := samplePerformanceInput()
	created, err := svc.Create(ctx, "jiwon", input)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	mine, err := svc.ListMine(ctx, "jiwon")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	got := mine[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "jiwon", got.UserID)
	assert.Equal(t, input.Date, got.Date)
	assert.Equal(t, input.Venue, got.Venue)
	assert.Equal(t, input.Pieces, got.Pieces)
	assert.Equal(t, input.Instrument, got.Instrument)
	assert.Equal(t, input.SubPart, got.SubPart)
	assert.Equal(t, input.Conductor, got.Conductor)
	assert.Equal(t, input.EnsembleName, got.EnsembleName)
	assert.Nil(t, got.UpdatedAt)
}

func TestCreateRequiresPieces(t *testing.T) {
	svc, _, _ := newPerformanceService(t)

	input := samplePerformanceInput()
	input.Pieces = nil

	_, err := svc.Create(context.Background(), "jiwon", input)
	assert.ErrorIs(t, err, ErrEmptyPieces)
}

func TestGuestFeeOnlyKeptForGuests(t *testing.T) {
	svc, _, _ := newPerformanceService(t)
	ctx := context.Background()
	fee := 300000

	input := samplePerformanceInput()
	input.GuestFee = &fee
	created, err := svc.Create(ctx, "jiwon", input)
	require.NoError(t, err)
	assert.Nil(t, created.GuestFee)

	input = samplePerformanceInput()
	input.IsGuest = true
	input.GuestFee = &fee
	created, err = svc.Create(ctx, "jiwon", input)
	require.NoError(t, err)
	require.NotNil(t, created.GuestFee)
	assert.Equal(t, 300000, *created.GuestFee)
}

func TestListMineExcludesOtherOwners(t *testing.T) {
	svc, _, _ := newPerformanceService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "jiwon", samplePerformanceInput())
	require.NoError(t, err)
	_, err = svc.Create(ctx, "minho", samplePerformanceInput())
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, "jiwon")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "jiwon", mine[0].UserID)
}

func TestListPublicExcludesPrivate(t *testing.T) {
	svc, _, _ := newPerformanceService(t)
	ctx := context.Background()

	private := samplePerformanceInput()
	private.IsPublic = false
	_, err := svc.Create(ctx, "jiwon", private)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "minho", samplePerformanceInput())
	require.NoError(t, err)

	public, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.True(t, public[0].IsPublic)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	svc, _, _ := newPerformanceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "jiwon", samplePerformanceInput())
	require.NoError(t, err)

	venue := "롯데콘서트홀"
	updated, err := svc.Update(ctx, "jiwon", created.ID, UpdatePerformanceInput{Venue: &venue})
	require.NoError(t, err)
	assert.Equal(t, "롯데콘서트홀", updated.Venue)
	// Unspecified fields keep their values.
	assert.Equal(t, created.Conductor, updated.Conductor)
	assert.Equal(t, created.Pieces, updated.Pieces)
	require.NotNil(t, updated.UpdatedAt)
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	svc, _, _ := newPerformanceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "jiwon", samplePerformanceInput())
	require.NoError(t, err)

	venue := "롯데콘서트홀"
	_, err = svc.Update(ctx, "minho", created.ID, UpdatePerformanceInput{Venue: &venue})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _, _ := newPerformanceService(t)

	venue := "롯데콘서트홀"
	_, err := svc.Update(context.Background(), "jiwon", "perf_missing", UpdatePerformanceInput{Venue: &venue})
	assert.ErrorIs(t, err, ErrPerformanceNotFound)
}

func TestUpdateRejectsEmptyPieces(t *testing.T) {
	svc, _, _ := newPerformanceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "jiwon", samplePerformanceInput())
	require.NoError(t, err)

	empty := []string{}
	_, err = svc.Update(ctx, "jiwon", created.ID, UpdatePerformanceInput{Pieces: &empty})
	assert.ErrorIs(t, err, ErrEmptyPieces)
}

func TestDeleteCascadesCommentsAndLikes(t *testing.T) {
	perfSvc, commentSvc, likeSvc := newPerformanceService(t)
	ctx := context.Background()

	created, err := perfSvc.Create(ctx, "jiwon", samplePerformanceInput())
	require.NoError(t, err)

	_, err = commentSvc.Add(ctx, "minho", created.ID, "브라보!")
	require.NoError(t, err)
	_, _, err = likeSvc.Toggle(ctx, "minho", created.ID)
	require.NoError(t, err)

	require.NoError(t, perfSvc.Delete(ctx, "jiwon", created.ID))

	mine, err := perfSvc.ListMine(ctx, "jiwon")
	require.NoError(t, err)
	assert.Empty(t, mine)

	public, err := perfSvc.ListPublic(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)

	comments, err := commentSvc.ListFor(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	count, err := likeSvc.Count(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDeleteRejectsNonOwner(t *testing.T) {
	svc, _, _ := newPerformanceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "jiwon", samplePerformanceInput())
	require.NoError(t, err)

	err = svc.Delete(ctx, "minho", created.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.Delete(ctx, "jiwon", "perf_missing")
	assert.ErrorIs(t, err, ErrPerformanceNotFound)
}
