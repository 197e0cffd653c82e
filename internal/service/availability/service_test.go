package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/EDU-SchedulingService/internal/service/availability/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAvailabilityRepo struct {
	windows map[int64]*domain.AvailabilityWindow
	nextID  int64
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{windows: make(map[int64]*domain.AvailabilityWindow), nextID: 1}
}

func (r *fakeAvailabilityRepo) Create(_ context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	copied := *w
	copied.ID = r.nextID
	r.nextID++
	r.windows[copied.ID] = &copied
	return &copied, nil
}

func (r *fakeAvailabilityRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilityWindow, error) {
	w, ok := r.windows[id]
	if !ok {
		return nil, availabilityRepo.ErrWindowNotFound
	}
	copied := *w
	return &copied, nil
}

func (r *fakeAvailabilityRepo) GetByProviderID(_ context.Context, providerID int64) ([]*domain.AvailabilityWindow, error) {
	var result []*domain.AvailabilityWindow
	for _, w := range r.windows {
		if w.ProviderID == providerID {
			copied := *w
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeAvailabilityRepo) GetByProviderAndDay(_ context.Context, providerID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	var result []*domain.AvailabilityWindow
	for _, w := range r.windows {
		if w.ProviderID == providerID && w.DayOfWeek == dayOfWeek {
			copied := *w
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeAvailabilityRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.windows[id]; !ok {
		return availabilityRepo.ErrWindowNotFound
	}
	delete(r.windows, id)
	return nil
}

func addWindowReq(userID int64, role string, day int, start, end string) *models.AddWindowRequest {
	return &models.AddWindowRequest{
		UserID:    userID,
		Role:      role,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestAddWindow(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.AddWindow(context.Background(), 42, addWindowReq(42, string(domain.RoleProvider), 1, "09:00", "12:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(42), resp.ProviderID)
	assert.Equal(t, 1, resp.DayOfWeek)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "12:00", resp.EndTime)
	assert.True(t, resp.IsRecurring)
}

func TestAddWindowAccessDenied(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.AddWindow(context.Background(), 42, addWindowReq(99, string(domain.RoleClient), 1, "09:00", "12:00"))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAddWindowValidation(t *testing.T) {
	cases := []struct {
		name  string
		day   int
		start string
		end   string
	}{
		{name: "day below range", day: -1, start: "09:00", end: "12:00"},
		{name: "day above range", day: 7, start: "09:00", end: "12:00"},
		{name: "bad start time", day: 1, start: "9:00", end: "12:00"},
		{name: "bad end time", day: 1, start: "09:00", end: "25:00"},
		{name: "start equals end", day: 1, start: "09:00", end: "09:00"},
		{name: "start after end", day: 1, start: "12:00", end: "09:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeAvailabilityRepo()
			svc := NewService(repo, nopLogger{})

			_, err := svc.AddWindow(context.Background(), 42,
				addWindowReq(42, string(domain.RoleProvider), tc.day, tc.start, tc.end))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAddWindowOverlap(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.AddWindow(context.Background(), 42, addWindowReq(42, string(domain.RoleProvider), 1, "09:00", "12:00"))
	require.NoError(t, err)

	// пересекается с существующим окном
	_, err = svc.AddWindow(context.Background(), 42, addWindowReq(42, string(domain.RoleProvider), 1, "11:00", "14:00"))
	assert.ErrorIs(t, err, ErrWindowOverlap)

	// граница встык - не пересечение
	_, err = svc.AddWindow(context.Background(), 42, addWindowReq(42, string(domain.RoleProvider), 1, "12:00", "15:00"))
	assert.NoError(t, err)

	// тот же интервал в другой день допустим
	_, err = svc.AddWindow(context.Background(), 42, addWindowReq(42, string(domain.RoleProvider), 2, "09:00", "12:00"))
	assert.NoError(t, err)
}

func TestListWindows(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.AddWindow(context.Background(), 42, addWindowReq(42, string(domain.RoleProvider), 1, "09:00", "12:00"))
	require.NoError(t, err)
	_, err = svc.AddWindow(context.Background(), 42, addWindowReq(42, string(domain.RoleProvider), 3, "14:00", "18:00"))
	require.NoError(t, err)

	resp, err := svc.ListWindows(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, resp.Windows, 2)

	empty, err := svc.ListWindows(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, empty.Windows)
}

func TestRemoveWindow(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.AddWindow(context.Background(), 42, addWindowReq(42, string(domain.RoleProvider), 1, "09:00", "12:00"))
	require.NoError(t, err)

	err = svc.RemoveWindow(context.Background(), 42, &models.RemoveWindowRequest{
		UserID: 42, Role: string(domain.RoleProvider), WindowID: created.ID,
	})
	require.NoError(t, err)

	resp, err := svc.ListWindows(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestRemoveWindowNotFound(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewService(repo, nopLogger{})

	err := svc.RemoveWindow(context.Background(), 42, &models.RemoveWindowRequest{
		UserID: 42, Role: string(domain.RoleProvider), WindowID: 777,
	})
	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestRemoveWindowOfAnotherProvider(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.AddWindow(context.Background(), 42, addWindowReq(42, string(domain.RoleProvider), 1, "09:00", "12:00"))
	require.NoError(t, err)

	// чужое окно выглядит как отсутствующее
	err = svc.RemoveWindow(context.Background(), 99, &models.RemoveWindowRequest{
		UserID: 99, Role: string(domain.RoleProvider), WindowID: created.ID,
	})
	assert.ErrorIs(t, err, ErrWindowNotFound)
}
