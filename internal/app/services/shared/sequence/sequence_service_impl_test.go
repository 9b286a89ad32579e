package sequence

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
)

type fakeCounterRepository struct {
	mu     sync.Mutex
	values map[string]int64
	err    error
}

func newFakeCounterRepository() *fakeCounterRepository {
	return &fakeCounterRepository{values: make(map[string]int64)}
}

func (f *fakeCounterRepository) IncrementAndGet(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.values[key]++
	return f.values[key], nil
}

func TestSequenceServiceNext(t *testing.T) {
	t.Run("formats PREFIX-YYYYMM-NNNNN with zero padding", func(t *testing.T) {
		repo := newFakeCounterRepository()
		service := NewSequenceService(repo, zap.NewNop())

		got, err := service.Next(context.Background(), "CLM")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("CLM-%s-00001", utils.PeriodKey(time.Now())), got)

		got, err = service.Next(context.Background(), "CLM")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("CLM-%s-00002", utils.PeriodKey(time.Now())), got)
	})

	t.Run("scopes the counter per prefix", func(t *testing.T) {
		repo := newFakeCounterRepository()
		service := NewSequenceService(repo, zap.NewNop())

		first, err := service.Next(context.Background(), "CLM")
		require.NoError(t, err)
		other, err := service.Next(context.Background(), "DOC")
		require.NoError(t, err)

		period := utils.PeriodKey(time.Now())
		assert.Equal(t, "CLM-"+period+"-00001", first)
		assert.Equal(t, "DOC-"+period+"-00001", other)
	})

	t.Run("issues distinct identifiers under concurrency", func(t *testing.T) {
		repo := newFakeCounterRepository()
		service := NewSequenceService(repo, zap.NewNop())

		const workers = 50
		results := make([]string, workers)
		errs := make([]error, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = service.Next(context.Background(), "CLM")
			}(i)
		}
		wg.Wait()

		seen := make(map[string]bool, workers)
		for i := 0; i < workers; i++ {
			require.NoError(t, errs[i])
			assert.Falsef(t, seen[results[i]], "duplicate identifier %s", results[i])
			seen[results[i]] = true
		}
	})

	t.Run("propagates counter failures", func(t *testing.T) {
		repo := newFakeCounterRepository()
		repo.err = exceptions.ErrSequenceIncrement(context.DeadlineExceeded)
		service := NewSequenceService(repo, zap.NewNop())

		_, err := service.Next(context.Background(), "CLM")
		require.Error(t, err)
		assert.Equal(t, exceptions.KindRepository, exceptions.KindOf(err))
	})
}
