package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
	apperrors "github.com/lorrc/medspa-leads-backend/internal/core/errors"
	"github.com/lorrc/medspa-leads-backend/internal/core/mocks"
	"github.com/lorrc/medspa-leads-backend/internal/core/ports"
	"github.com/lorrc/medspa-leads-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storedLeads() []domain.Lead {
	return []domain.Lead{
		{ID: "lead-1", Name: "Lead 1", Email: "lead1@example.com", Status: domain.StatusNew},
		{ID: "lead-2", Name: "Lead 2", Email: "lead2@example.com", Status: domain.StatusContacted},
	}
}

func TestDashboardService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("loads the stored collection", func(t *testing.T) {
		mockRepo := mocks.NewMockLeadRepository()
		mockBroadcaster := mocks.NewMockEventBroadcaster()
		svc := services.NewDashboardService(mockRepo, mockBroadcaster, 10, testLogger())

		mockRepo.On("LoadAll", ctx).Return(storedLeads(), nil)
		mockBroadcaster.On("Broadcast", mock.Anything).Return(nil)

		count := svc.Load(ctx)

		assert.Equal(t, 2, count)
		assert.Equal(t, storedLeads(), svc.Leads())

		mockRepo.AssertExpectations(t)
	})

	t.Run("falls back to sample data when the store fails", func(t *testing.T) {
		mockRepo := mocks.NewMockLeadRepository()
		mockBroadcaster := mocks.NewMockEventBroadcaster()
		svc := services.NewDashboardService(mockRepo, mockBroadcaster, 10, testLogger())

		mockRepo.On("LoadAll", ctx).Return(nil, errors.New("connection refused"))
		mockBroadcaster.On("Broadcast", mock.Anything).Return(nil)

		// The fallback swallows the failure; Load never errors.
		count := svc.Load(ctx)

		assert.Equal(t, 10, count)
		assert.Len(t, svc.Leads(), 10)
	})

	t.Run("falls back to sample data when the store is empty", func(t *testing.T) {
		mockRepo := mocks.NewMockLeadRepository()
		svc := services.NewDashboardService(mockRepo, nil, 5, testLogger())

		mockRepo.On("LoadAll", ctx).Return([]domain.Lead{}, nil)

		count := svc.Load(ctx)

		assert.Equal(t, 5, count)
	})
}

func TestDashboardService_UpdateLeadStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the change and persists in the background", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(l domain.Lead) bool {
			return l.ID == "lead-1" && l.Status == domain.StatusBooked
		})).Return(nil)

		updated, err := svc.UpdateLeadStatus(ctx, ports.UpdateStatusParams{
			LeadID: "lead-1",
			Status: domain.StatusBooked,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusBooked, updated.Status)
		assert.Equal(t, "Lead 1", updated.Name)

		svc.Shutdown()
		mockRepo.AssertExpectations(t)

		assert.Equal(t, domain.StatusBooked, svc.Leads()[0].Status)
		assert.Empty(t, svc.PendingSaves())

		notifications := svc.Notifications()
		require.NotEmpty(t, notifications)
		assert.Equal(t, "Lead Lead 1 updated to Booked", notifications[0].Message)
		assert.Equal(t, domain.NotificationSuccess, notifications[0].Type)
	})

	t.Run("rejects an empty lead id", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.UpdateLeadStatus(ctx, ports.UpdateStatusParams{Status: domain.StatusBooked})

		assert.ErrorIs(t, err, apperrors.ErrLeadIDRequired)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.UpdateLeadStatus(ctx, ports.UpdateStatusParams{
			LeadID: "lead-1",
			Status: domain.LeadStatus("Archived"),
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("unknown lead leaves state untouched", func(t *testing.T) {
		svc, mockRepo := newService(t)

		_, err := svc.UpdateLeadStatus(ctx, ports.UpdateStatusParams{
			LeadID: "lead-99",
			Status: domain.StatusBooked,
		})

		assert.ErrorIs(t, err, apperrors.ErrLeadNotFound)
		assert.Equal(t, storedLeads(), svc.Leads())
		assert.Empty(t, svc.Notifications())
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("idempotent when repeated with the same status", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		for i := 0; i < 2; i++ {
			_, err := svc.UpdateLeadStatus(ctx, ports.UpdateStatusParams{
				LeadID: "lead-1",
				Status: domain.StatusLost,
			})
			require.NoError(t, err)
		}
		svc.Shutdown()

		assert.Equal(t, domain.StatusLost, svc.Leads()[0].Status)
		assert.Len(t, svc.Notifications(), 2)
	})

	t.Run("failed save keeps the change and flags the lead", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("write timeout"))

		updated, err := svc.UpdateLeadStatus(ctx, ports.UpdateStatusParams{
			LeadID: "lead-2",
			Status: domain.StatusQualified,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusQualified, updated.Status)

		svc.Shutdown()

		// The optimistic change survives the failure.
		assert.Equal(t, domain.StatusQualified, svc.Leads()[1].Status)
		assert.Equal(t, []string{"lead-2"}, svc.PendingSaves())
	})
}

// newService returns a dashboard service primed with the stored
// collection and a repository mock ready for Save expectations.
func newService(t *testing.T) (*services.DashboardService, *mocks.MockLeadRepository) {
	t.Helper()

	mockRepo := mocks.NewMockLeadRepository()
	mockRepo.On("LoadAll", mock.Anything).Return(storedLeads(), nil)

	svc := services.NewDashboardService(mockRepo, nil, 10, testLogger())
	svc.Load(context.Background())

	return svc, mockRepo
}

func TestDashboardService_VisibleLeads(t *testing.T) {
	svc, _ := newService(t)

	t.Run("applies the filter intents", func(t *testing.T) {
		visible := svc.VisibleLeads(ports.FilterParams{SearchTerm: "lead 2", StatusFilter: "all"})

		require.Len(t, visible, 1)
		assert.Equal(t, "lead-2", visible[0].ID)
	})

	t.Run("empty result is a valid view", func(t *testing.T) {
		visible := svc.VisibleLeads(ports.FilterParams{SearchTerm: "nobody", StatusFilter: "all"})

		assert.Empty(t, visible)
		// The full collection is untouched.
		assert.Len(t, svc.Leads(), 2)
	})
}

func TestDashboardService_ExportCSV(t *testing.T) {
	svc, _ := newService(t)

	// An active filter must not narrow the export.
	svc.VisibleLeads(ports.FilterParams{SearchTerm: "lead 1", StatusFilter: "all"})

	result := svc.ExportCSV()

	assert.Contains(t, result.Filename, "medspa-leads-")
	assert.Contains(t, result.Content, "lead1@example.com")
	assert.Contains(t, result.Content, "lead2@example.com")

	notifications := svc.Notifications()
	require.NotEmpty(t, notifications)
	assert.Equal(t, "Data exported successfully", notifications[0].Message)
}

func TestDashboardService_NotificationCap(t *testing.T) {
	svc, mockRepo := newService(t)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	statuses := []domain.LeadStatus{
		domain.StatusContacted,
		domain.StatusQualified,
		domain.StatusBooked,
		domain.StatusLost,
		domain.StatusNew,
		domain.StatusContacted,
		domain.StatusBooked,
	}
	for _, status := range statuses {
		_, err := svc.UpdateLeadStatus(context.Background(), ports.UpdateStatusParams{
			LeadID: "lead-1",
			Status: status,
		})
		require.NoError(t, err)
	}
	svc.Shutdown()

	notifications := svc.Notifications()
	require.Len(t, notifications, 5)
	assert.Equal(t, "Lead Lead 1 updated to Booked", notifications[0].Message)
}
