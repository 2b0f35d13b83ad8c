package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/ercx-tools/ercx-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testListID = domain.ListID("228856f0-7e27-47cf-aea6-978e814f7f1b")

type stubAPI struct {
	ports.API

	createListID domain.ListID
	createErr    error
	addErr       error
	shareErr     error
}

func (s *stubAPI) CreateList(_ context.Context, _, _ string) (domain.ListID, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	return s.createListID, nil
}

func (s *stubAPI) AddToken(_ context.Context, _ domain.ListID, _ domain.Network, _ string) error {
	return s.addErr
}

func (s *stubAPI) ShareList(_ context.Context, _ domain.ListID, _ string, _ domain.Permission) error {
	return s.shareErr
}

type stubJournal struct {
	records []domain.ListRecord
	err     error
}

func (j *stubJournal) Record(_ context.Context, record domain.ListRecord) error {
	if j.err != nil {
		return j.err
	}
	j.records = append(j.records, record)
	return nil
}

func (j *stubJournal) List(_ context.Context) ([]domain.ListRecord, error) {
	return j.records, j.err
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

func TestCreateListJournalsTheNewList(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	journal := &stubJournal{}
	service := NewService(&stubAPI{createListID: testListID}, journal, fixedClock{at: now})

	record, err := service.CreateList(context.Background(), "My token list", "stablecoins")
	require.NoError(t, err)
	assert.Equal(t, testListID, record.ID)
	assert.Equal(t, "created", record.LastAction)
	assert.True(t, record.CreatedAt.Equal(now))

	require.Len(t, journal.records, 1)
	assert.Equal(t, "My token list", journal.records[0].Name)
}

func TestCreateListStopsOnAPIError(t *testing.T) {
	apiErr := errors.New("boom")
	journal := &stubJournal{}
	service := NewService(&stubAPI{createErr: apiErr}, journal, nil)

	_, err := service.CreateList(context.Background(), "My token list", "")
	require.ErrorIs(t, err, apiErr)
	assert.Empty(t, journal.records)
}

func TestCreateListReportsJournalFailureButKeepsID(t *testing.T) {
	journal := &stubJournal{err: errors.New("disk full")}
	service := NewService(&stubAPI{createListID: testListID}, journal, nil)

	record, err := service.CreateList(context.Background(), "My token list", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created remotely")
	assert.Equal(t, testListID, record.ID)
}

func TestAddTokenTouchesJournal(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	journal := &stubJournal{}
	service := NewService(&stubAPI{}, journal, fixedClock{at: now})

	err := service.AddToken(context.Background(), testListID, domain.NetworkMainnet, "0xdAC17F958D2ee523a2206206994597C13D831ec7")
	require.NoError(t, err)

	require.Len(t, journal.records, 1)
	assert.Equal(t, testListID, journal.records[0].ID)
	assert.Contains(t, journal.records[0].LastAction, "added token")
	assert.Contains(t, journal.records[0].LastAction, "mainnet")
}

func TestAddTokenSkipsJournalOnAPIError(t *testing.T) {
	journal := &stubJournal{}
	service := NewService(&stubAPI{addErr: errors.New("forbidden")}, journal, nil)

	err := service.AddToken(context.Background(), testListID, domain.NetworkMainnet, "0xdead")
	require.Error(t, err)
	assert.Empty(t, journal.records)
}

func TestShareListRecordsPermission(t *testing.T) {
	journal := &stubJournal{}
	service := NewService(&stubAPI{}, journal, nil)

	err := service.ShareList(context.Background(), testListID, "101185369", domain.PermissionWrite)
	require.NoError(t, err)

	require.Len(t, journal.records, 1)
	assert.Contains(t, journal.records[0].LastAction, "101185369")
	assert.Contains(t, journal.records[0].LastAction, "WRITE")
}

func TestRecentListsReadsJournal(t *testing.T) {
	journal := &stubJournal{records: []domain.ListRecord{{ID: testListID, Name: "My token list"}}}
	service := NewService(&stubAPI{}, journal, nil)

	records, err := service.RecentLists(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "My token list", records[0].Name)
}
