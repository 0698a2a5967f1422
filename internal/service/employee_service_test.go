package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"staffdesk/internal/cache"
	apperrors "staffdesk/internal/errors"
	"staffdesk/internal/metrics"
	"staffdesk/internal/model"
)

// MockEmployeeRepository is a mock implementation of EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, adminID, id uint) (*model.Employee, error) {
	args := m.Called(ctx, adminID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Employee, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByName(ctx context.Context, adminID uint, name string) (*model.Employee, error) {
	args := m.Called(ctx, adminID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SearchByName(ctx context.Context, adminID uint, name string) ([]model.Employee, error) {
	args := m.Called(ctx, adminID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func newEmployeeTestService(repo *MockEmployeeRepository) (EmployeeService, *cache.Memory) {
	store := cache.NewMemory()
	m := metrics.New(prometheus.NewRegistry())
	return NewEmployeeService(repo, store, m), store
}

func testEmployee(id, adminID uint, name string) model.Employee {
	return model.Employee{
		ID:         id,
		AdminID:    adminID,
		FullName:   name,
		Department: "Engineering",
		Position:   "SWE",
		Email:      fmt.Sprintf("e%d@example.com", id),
		Phone:      "555-0100",
		Salary:     decimal.RequireFromString("1000"),
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("persists and invalidates cache", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)

		service, store := newEmployeeTestService(mockRepo)

		// a stale entry from before the write
		require.NoError(t, store.Set(ctx, "employees_v2_1", []byte(`[]`), 0))

		employee, err := service.Create(ctx, 1, CreateEmployeeInput{
			FullName:   "Jane Doe",
			Department: "Eng",
			Position:   "SWE",
			Email:      "j@x.com",
			Phone:      "555",
			Salary:     decimal.RequireFromString("1000"),
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), employee.AdminID)
		assert.Equal(t, "Jane Doe", employee.FullName)

		data, _ := store.Get(ctx, "employees_v2_1")
		assert.Nil(t, data, "cache entry must be removed after create")
		mockRepo.AssertExpectations(t)
	})

	t.Run("negative salary rejected", func(t *testing.T) {
		mockRepo := new(MockEmployeeRepository)
		service, _ := newEmployeeTestService(mockRepo)

		employee, err := service.Create(context.Background(), 1, CreateEmployeeInput{
			FullName:   "Jane Doe",
			Department: "Eng",
			Position:   "SWE",
			Email:      "j@x.com",
			Phone:      "555",
			Salary:     decimal.RequireFromString("-1"),
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidSalary)
		assert.Nil(t, employee)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestEmployeeService_List_CacheAside(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockEmployeeRepository)
	mockRepo.On("ListByAdmin", mock.Anything, uint(1)).
		Return([]model.Employee{testEmployee(10, 1, "Jane Doe")}, nil).Once()

	service, _ := newEmployeeTestService(mockRepo)

	// miss populates the cache
	first, err := service.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Jane Doe", first[0].FullName)

	// second read is served from the cache: the single mocked repo call
	// above would fail the test if the database were hit again
	second, err := service.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	mockRepo.AssertExpectations(t)
}

func TestEmployeeService_List_EmptyNeverCached(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockEmployeeRepository)
	mockRepo.On("ListByAdmin", mock.Anything, uint(2)).
		Return([]model.Employee{}, nil).Twice()

	service, store := newEmployeeTestService(mockRepo)

	first, err := service.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, first)

	data, _ := store.Get(ctx, "employees_v2_2")
	assert.Nil(t, data, "empty result must not be cached")

	// the repo is queried again on every read while the list is empty
	second, err := service.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, second)

	mockRepo.AssertExpectations(t)
}

func TestEmployeeService_List_FreshAfterWrite(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockEmployeeRepository)
	mockRepo.On("ListByAdmin", mock.Anything, uint(1)).
		Return([]model.Employee{testEmployee(10, 1, "Jane Doe")}, nil).Once()
	mockRepo.On("ListByAdmin", mock.Anything, uint(1)).
		Return([]model.Employee{testEmployee(10, 1, "Jane Doe"), testEmployee(11, 1, "John Birch")}, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)

	service, _ := newEmployeeTestService(mockRepo)

	// populate the cache
	first, err := service.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// a write invalidates it
	_, err = service.Create(ctx, 1, CreateEmployeeInput{
		FullName:   "John Birch",
		Department: "Eng",
		Position:   "SRE",
		Email:      "jb@x.com",
		Phone:      "556",
		Salary:     decimal.RequireFromString("1000"),
	})
	require.NoError(t, err)

	// the next read bypasses the stale entry and sees the new record
	second, err := service.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, second, 2)

	mockRepo.AssertExpectations(t)
}

func TestEmployeeService_List_AdminScoped(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockEmployeeRepository)
	mockRepo.On("ListByAdmin", mock.Anything, uint(1)).
		Return([]model.Employee{testEmployee(10, 1, "Jane Doe")}, nil).Once()
	mockRepo.On("ListByAdmin", mock.Anything, uint(2)).
		Return([]model.Employee{}, nil).Once()

	service, _ := newEmployeeTestService(mockRepo)

	mine, err := service.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	// a different admin's list never includes the record, cached or not
	theirs, err := service.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	mockRepo.AssertExpectations(t)
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("owned record deleted and cache invalidated", func(t *testing.T) {
		ctx := context.Background()
		employee := testEmployee(10, 1, "Jane Doe")

		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1), uint(10)).Return(&employee, nil)
		mockRepo.On("Delete", mock.Anything, &employee).Return(nil)

		service, store := newEmployeeTestService(mockRepo)
		require.NoError(t, store.Set(ctx, "employees_v2_1", []byte(`[{"id":10}]`), 0))

		deleted, err := service.Delete(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", deleted.FullName)

		data, _ := store.Get(ctx, "employees_v2_1")
		assert.Nil(t, data, "cache entry must be removed after delete")
		mockRepo.AssertExpectations(t)
	})

	t.Run("cross-admin delete resolves as not found", func(t *testing.T) {
		mockRepo := new(MockEmployeeRepository)
		// admin 2 asks for admin 1's record: the scoped query misses
		mockRepo.On("FindByID", mock.Anything, uint(2), uint(10)).Return(nil, gorm.ErrRecordNotFound)

		service, _ := newEmployeeTestService(mockRepo)

		deleted, err := service.Delete(context.Background(), 2, 10)
		assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
		assert.Nil(t, deleted)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestEmployeeService_GetByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		employee := testEmployee(10, 1, "Jane Doe")
		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByName", mock.Anything, uint(1), "Jane Doe").Return(&employee, nil)

		service, _ := newEmployeeTestService(mockRepo)

		response, err := service.GetByName(context.Background(), 1, "Jane Doe")
		require.NoError(t, err)
		assert.Equal(t, uint(10), response.ID)
		assert.Equal(t, "Jane Doe", response.FullName)
	})

	t.Run("miss is not found", func(t *testing.T) {
		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("FindByName", mock.Anything, uint(1), "Nobody").Return(nil, gorm.ErrRecordNotFound)

		service, _ := newEmployeeTestService(mockRepo)

		response, err := service.GetByName(context.Background(), 1, "Nobody")
		assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
		assert.Nil(t, response)
	})
}

func TestEmployeeService_Search(t *testing.T) {
	t.Run("no match is an empty result, not an error", func(t *testing.T) {
		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("SearchByName", mock.Anything, uint(1), "zzz").Return([]model.Employee{}, nil)

		service, _ := newEmployeeTestService(mockRepo)

		results, err := service.Search(context.Background(), 1, "zzz")
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Len(t, results, 0)
	})

	t.Run("matches projected", func(t *testing.T) {
		mockRepo := new(MockEmployeeRepository)
		mockRepo.On("SearchByName", mock.Anything, uint(1), "jane").
			Return([]model.Employee{testEmployee(10, 1, "Jane Doe")}, nil)

		service, _ := newEmployeeTestService(mockRepo)

		results, err := service.Search(context.Background(), 1, "jane")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Jane Doe", results[0].FullName)
	})
}

func TestEmployeeService_SalarySurvivesCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	employee := testEmployee(10, 1, "Jane Doe")
	employee.Salary = decimal.RequireFromString("50000.50")

	mockRepo := new(MockEmployeeRepository)
	mockRepo.On("ListByAdmin", mock.Anything, uint(1)).
		Return([]model.Employee{employee}, nil).Once()

	service, _ := newEmployeeTestService(mockRepo)

	fromDB, err := service.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, fromDB, 1)
	assert.Equal(t, "50000.50", fromDB[0].Salary.String())

	// second read deserializes the cached JSON; precision must hold
	fromCache, err := service.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, fromCache, 1)
	assert.True(t, fromCache[0].Salary.Equal(decimal.RequireFromString("50000.50")))
	assert.Equal(t, "50000.50", fromCache[0].Salary.String())

	mockRepo.AssertExpectations(t)
}

func TestEmployeeService_List_GarbageCacheFallsBack(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockEmployeeRepository)
	mockRepo.On("ListByAdmin", mock.Anything, uint(1)).
		Return([]model.Employee{testEmployee(10, 1, "Jane Doe")}, nil).Once()

	service, store := newEmployeeTestService(mockRepo)
	require.NoError(t, store.Set(ctx, "employees_v2_1", []byte("{not json"), 0))

	// undecodable cache content degrades to a miss
	results, err := service.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	mockRepo.AssertExpectations(t)
}
