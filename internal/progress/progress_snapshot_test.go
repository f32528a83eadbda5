package progress_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/progress"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotKeys(t *testing.T) {
	admin := tenant.CompanyAdminScope{CompanyID: "c1"}
	employee := tenant.EmployeeScope{EmployeeID: "e1", CompanyID: "c1"}
	loner := tenant.EmployeeScope{EmployeeID: "e2"}

	assert.Equal(t, "progress:snapshot:company:c1", progress.SnapshotKey(admin))
	assert.Equal(t, "progress:snapshot:employee:e1", progress.SnapshotKey(employee))

	// a company write retires both the admin and the employee view
	assert.Equal(t, progress.GenerationKey(admin), progress.GenerationKey(employee))
	assert.Equal(t, "progress:gen:employee:e2", progress.GenerationKey(loner))
}

func TestSnapshotStore(t *testing.T) {
	ctx := context.Background()
	scope := tenant.CompanyAdminScope{CompanyID: "c1"}
	genKey := progress.GenerationKey(scope)
	snapKey := progress.SnapshotKey(scope)
	rows := []progress.ProgressRow{{ID: "r1", ModuleID: "m1", Status: progress.StatusCompleted, ProgressPercentage: 100}}

	t.Run("generation defaults to zero", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := progress.NewSnapshotStore(rdb, time.Hour)

		mock.ExpectGet(genKey).RedisNil()

		gen, err := store.Generation(ctx, scope)
		require.NoError(t, err)
		assert.Zero(t, gen)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("save at current generation", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := progress.NewSnapshotStore(rdb, time.Hour)

		mock.ExpectGet(genKey).SetVal("4")
		mock.CustomMatch(func(expected, actual []interface{}) error {
			if len(actual) < 3 || actual[1] != snapKey {
				return fmt.Errorf("unexpected set %v", actual)
			}
			var payload []byte
			switch v := actual[2].(type) {
			case []byte:
				payload = v
			case string:
				payload = []byte(v)
			}
			var snap progress.Snapshot
			if err := json.Unmarshal(payload, &snap); err != nil {
				return err
			}
			if snap.Generation != 4 || len(snap.Rows) != 1 {
				return fmt.Errorf("unexpected snapshot %+v", snap)
			}
			return nil
		}).ExpectSet(snapKey, nil, time.Hour).SetVal("OK")

		saved, err := store.Save(ctx, scope, 4, rows)
		require.NoError(t, err)
		assert.True(t, saved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("outdated save is discarded", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := progress.NewSnapshotStore(rdb, time.Hour)

		mock.ExpectGet(genKey).SetVal("5")

		saved, err := store.Save(ctx, scope, 4, rows)
		require.NoError(t, err)
		assert.False(t, saved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("load", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := progress.NewSnapshotStore(rdb, time.Hour)

		data, err := json.Marshal(progress.Snapshot{Generation: 2, FetchedAt: time.Now().UTC(), Rows: rows})
		require.NoError(t, err)
		mock.ExpectGet(snapKey).SetVal(string(data))

		snap, err := store.Load(ctx, scope)
		require.NoError(t, err)
		require.NotNil(t, snap)
		assert.Equal(t, int64(2), snap.Generation)
		assert.Equal(t, "r1", snap.Rows[0].ID)
	})

	t.Run("load miss", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := progress.NewSnapshotStore(rdb, time.Hour)

		mock.ExpectGet(snapKey).RedisNil()

		snap, err := store.Load(ctx, scope)
		require.NoError(t, err)
		assert.Nil(t, snap)
	})

	t.Run("load error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := progress.NewSnapshotStore(rdb, time.Hour)

		mock.ExpectGet(snapKey).SetErr(errors.New("redis down"))

		_, err := store.Load(ctx, scope)
		assert.Error(t, err)
	})

	t.Run("invalidate bumps company and employee generations", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := progress.NewSnapshotStore(rdb, time.Hour)

		mock.ExpectTxPipeline()
		mock.ExpectIncr("progress:gen:company:c1").SetVal(6)
		mock.ExpectIncr("progress:gen:employee:e9").SetVal(1)
		mock.ExpectTxPipelineExec()

		require.NoError(t, store.Invalidate(ctx, "c1", "e9"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil client remembers nothing", func(t *testing.T) {
		store := progress.NewSnapshotStore(nil, time.Hour)

		saved, err := store.Save(ctx, scope, 0, rows)
		require.NoError(t, err)
		assert.False(t, saved)

		snap, err := store.Load(ctx, scope)
		require.NoError(t, err)
		assert.Nil(t, snap)
		assert.NoError(t, store.Invalidate(ctx, "c1"))
	})
}
