package observation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weatherstack.app/internal/mocks"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

type useCaseMocks struct {
	fetcher    *mocks.WeatherFetcher
	repository *mocks.ObservationRepository
	logger     *mocks.Logger
	metrics    *mocks.PipelineMetrics
}

func newUseCase(t *testing.T) (*UseCase, useCaseMocks) {
	m := useCaseMocks{
		fetcher:    mocks.NewWeatherFetcher(t),
		repository: mocks.NewObservationRepository(t),
		logger:     mocks.NewLogger(t),
		metrics:    mocks.NewPipelineMetrics(t),
	}

	// Allow logger calls with variadic arguments
	m.logger.EXPECT().Debug(mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything, mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Fetcher:    m.fetcher,
		Repository: m.repository,
		Logger:     m.logger,
		Metrics:    m.metrics,
	})
	require.NoError(t, err)
	return uc, m
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "weather fetcher is required")

	_, err = NewUseCase(UseCaseDependencies{Fetcher: mocks.NewWeatherFetcher(t)})
	assert.Contains(t, err.Error(), "observation repository is required")
}

func TestUseCase_EnsureSchema(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repository.EXPECT().EnsureSchema(mock.Anything).Return(nil)

		assert.NoError(t, uc.EnsureSchema(context.Background()))
	})

	t.Run("PropagatesDatabaseError", func(t *testing.T) {
		uc, m := newUseCase(t)
		dbErr := errors.NewDatabaseError("permission denied for schema public", nil)
		m.repository.EXPECT().EnsureSchema(mock.Anything).Return(dbErr)

		err := uc.EnsureSchema(context.Background())

		assert.ErrorIs(t, err, dbErr)
		assert.True(t, errors.IsDatabaseError(err))
	})
}

func TestUseCase_FetchWeather(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, m := newUseCase(t)
		payload := decode(t, jakartaPayload)
		m.fetcher.EXPECT().
			FetchCurrent(mock.Anything, ports.FetchRequest{Query: "Jakarta", APIKey: "key", Units: "m"}).
			Return(payload, nil)

		result, err := uc.FetchWeather(context.Background(), FetchParams{Query: " Jakarta ", APIKey: "key", Units: "m"})

		require.NoError(t, err)
		assert.Same(t, payload, result)
	})

	t.Run("ValidationError", func(t *testing.T) {
		uc, _ := newUseCase(t)

		result, err := uc.FetchWeather(context.Background(), FetchParams{Query: "Jakarta", APIKey: "key", Units: "k"})

		assert.Nil(t, result)
		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.ValidationError, appErr.Type)
	})

	t.Run("FetcherError", func(t *testing.T) {
		uc, m := newUseCase(t)
		apiErr := errors.NewExternalAPIError("all 2 weatherstack endpoints failed", fmt.Errorf("connection refused"))
		m.fetcher.EXPECT().FetchCurrent(mock.Anything, mock.Anything).Return(nil, apiErr)

		result, err := uc.FetchWeather(context.Background(), FetchParams{Query: "Jakarta", APIKey: "key", Units: "m"})

		assert.Nil(t, result)
		assert.True(t, errors.IsExternalAPIError(err))
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestUseCase_Load(t *testing.T) {
	t.Run("InsertsOneRow", func(t *testing.T) {
		uc, m := newUseCase(t)
		var inserted *ports.ObservationData
		m.repository.EXPECT().Insert(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, obs *ports.ObservationData) { inserted = obs }).
			Return(int64(7), nil).Once()
		m.metrics.EXPECT().RecordRowsInserted(1).Once()

		obs, err := uc.Load(context.Background(), decode(t, jakartaPayload))

		require.NoError(t, err)
		assert.Equal(t, int64(7), obs.ID)
		require.NotNil(t, inserted)
		assert.Equal(t, "Jakarta", *inserted.QueryText)
		assert.JSONEq(t, jakartaPayload, string(inserted.Raw))
	})

	t.Run("MappingErrorWritesNothing", func(t *testing.T) {
		uc, _ := newUseCase(t)

		obs, err := uc.Load(context.Background(), decode(t, `{"location":{"lat":"x"},"current":{}}`))

		assert.Nil(t, obs)
		assert.True(t, errors.IsDataMappingError(err))
	})

	t.Run("DatabaseErrorPropagates", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repository.EXPECT().Insert(mock.Anything, mock.Anything).
			Return(int64(0), errors.NewDatabaseError("null value in column \"query_text\"", nil))

		obs, err := uc.Load(context.Background(), decode(t, `{"current":{"temperature":1}}`))

		assert.Nil(t, obs)
		assert.True(t, errors.IsDatabaseError(err))
		assert.Contains(t, err.Error(), "query_text")
	})
}

func TestUseCase_ExtractAndLoad(t *testing.T) {
	uc, m := newUseCase(t)
	m.fetcher.EXPECT().FetchCurrent(mock.Anything, mock.Anything).Return(decode(t, jakartaPayload), nil)
	m.repository.EXPECT().Insert(mock.Anything, mock.Anything).Return(int64(1), nil)
	m.metrics.EXPECT().RecordRowsInserted(1)

	obs, err := uc.ExtractAndLoad(context.Background(), FetchParams{Query: "Jakarta", APIKey: "key", Units: "m"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), obs.ID)
	assert.Equal(t, 29.0, *obs.TemperatureC)
}

func TestUseCase_Prune(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repository.EXPECT().DeleteOlderThan(mock.Anything, 2).Return(int64(3), nil)
		m.metrics.EXPECT().RecordRowsPruned(int64(3))

		deleted, err := uc.Prune(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})

	t.Run("NothingToDelete", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repository.EXPECT().DeleteOlderThan(mock.Anything, 2).Return(int64(0), nil)
		m.metrics.EXPECT().RecordRowsPruned(int64(0))

		deleted, err := uc.Prune(context.Background(), 2)

		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("InvalidRetention", func(t *testing.T) {
		uc, _ := newUseCase(t)

		_, err := uc.Prune(context.Background(), 0)

		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUseCase_Recent(t *testing.T) {
	uc, m := newUseCase(t)
	query := "Jakarta"
	m.repository.EXPECT().FindRecent(mock.Anything, 2).Return([]*ports.ObservationData{
		{ID: 2, QueryText: &query, Raw: []byte(`{}`)},
		{ID: 1, QueryText: &query, Raw: []byte(`{}`)},
	}, nil)

	result, err := uc.Recent(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(2), result[0].ID)

	_, err = uc.Recent(context.Background(), 0)
	assert.True(t, errors.IsValidationError(err))
}
