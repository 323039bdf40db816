package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

func TestAttendingSet_UnionsBothDomains(t *testing.T) {
	uni := &fakeAdapter{tag: domain.DomainUniversity, participations: []domain.Participant{
		{UserID: 3, EventID: 5, Status: domain.ParticipantConfirmed},
		{UserID: 3, EventID: 9, Status: domain.ParticipantPending},
	}}
	club := &fakeAdapter{tag: domain.DomainClub, participations: []domain.Participant{
		{UserID: 3, EventID: 5, Status: domain.ParticipantConfirmed},
	}}

	r := NewParticipationResolver(uni, club, discardLogger())
	set, err := r.AttendingSet(context.Background(), 3)
	require.NoError(t, err)

	// Event 5 exists in both domains; the composite key keeps them apart.
	assert.Len(t, set, 3)
	assert.True(t, set.Contains(domain.EventKey{Domain: domain.DomainUniversity, EventID: 5}))
	assert.True(t, set.Contains(domain.EventKey{Domain: domain.DomainClub, EventID: 5}))
	assert.True(t, set.Contains(domain.EventKey{Domain: domain.DomainUniversity, EventID: 9}))
}

func TestAttendingSet_ExcludesCancelled(t *testing.T) {
	uni := &fakeAdapter{tag: domain.DomainUniversity, participations: []domain.Participant{
		{UserID: 3, EventID: 5, Status: domain.ParticipantCancelled},
		{UserID: 3, EventID: 6, Status: domain.ParticipantConfirmed},
	}}
	club := &fakeAdapter{tag: domain.DomainClub}

	r := NewParticipationResolver(uni, club, discardLogger())
	set, err := r.AttendingSet(context.Background(), 3)
	require.NoError(t, err)

	assert.False(t, set.Contains(domain.EventKey{Domain: domain.DomainUniversity, EventID: 5}))
	assert.True(t, set.Contains(domain.EventKey{Domain: domain.DomainUniversity, EventID: 6}))
}

func TestAttendingSet_SkipsRecordsWithoutEventID(t *testing.T) {
	uni := &fakeAdapter{tag: domain.DomainUniversity, participations: []domain.Participant{
		{UserID: 3, EventID: 0, Status: domain.ParticipantConfirmed},
	}}
	club := &fakeAdapter{tag: domain.DomainClub}

	r := NewParticipationResolver(uni, club, discardLogger())
	set, err := r.AttendingSet(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestAttendingSet_PartialOnOneDomainFailure(t *testing.T) {
	uni := &fakeAdapter{tag: domain.DomainUniversity, participationsErr: transportErr(domain.DomainUniversity)}
	club := &fakeAdapter{tag: domain.DomainClub, participations: []domain.Participant{
		{UserID: 3, EventID: 7, Status: domain.ParticipantConfirmed},
	}}

	r := NewParticipationResolver(uni, club, discardLogger())
	set, err := r.AttendingSet(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, set, 1)
	assert.True(t, set.Contains(domain.EventKey{Domain: domain.DomainClub, EventID: 7}))
}

func TestAttendingSet_ErrorWhenBothDomainsFail(t *testing.T) {
	uni := &fakeAdapter{tag: domain.DomainUniversity, participationsErr: transportErr(domain.DomainUniversity)}
	club := &fakeAdapter{tag: domain.DomainClub, participationsErr: transportErr(domain.DomainClub)}

	r := NewParticipationResolver(uni, club, discardLogger())
	_, err := r.AttendingSet(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, domain.IsTransport(err))
}

func TestAttendingSet_Idempotent(t *testing.T) {
	uni := &fakeAdapter{tag: domain.DomainUniversity, participations: []domain.Participant{
		{UserID: 3, EventID: 5, Status: domain.ParticipantConfirmed},
	}}
	club := &fakeAdapter{tag: domain.DomainClub}

	r := NewParticipationResolver(uni, club, discardLogger())
	first, err := r.AttendingSet(context.Background(), 3)
	require.NoError(t, err)
	second, err := r.AttendingSet(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
