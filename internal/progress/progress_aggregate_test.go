package progress_test

import (
	"testing"

	"github.com/HorizonColonel/orient-launch-pad/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(employeeID, moduleID string, status progress.Status, pct int) progress.ProgressRow {
	return progress.ProgressRow{
		EmployeeID:         employeeID,
		ModuleID:           moduleID,
		EmployeeName:       "emp " + employeeID,
		ModuleTitle:        "module " + moduleID,
		Status:             status,
		ProgressPercentage: pct,
	}
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, progress.CompletionRate(0, 0))
	assert.Equal(t, 75, progress.CompletionRate(3, 4))
	assert.Equal(t, 33, progress.CompletionRate(1, 3))
	assert.Equal(t, 67, progress.CompletionRate(2, 3))
	assert.Equal(t, 100, progress.CompletionRate(5, 5))
}

func TestComputeModuleStats(t *testing.T) {
	rows := []progress.ProgressRow{
		row("e1", "m1", progress.StatusCompleted, 100),
		row("e2", "m1", progress.StatusCompleted, 100),
		row("e3", "m1", progress.StatusCompleted, 100),
		row("e4", "m1", progress.StatusInProgress, 30),
		row("e1", "m2", progress.StatusNotStarted, 0),
	}

	t.Run("four assigned with three completed", func(t *testing.T) {
		stats := progress.ComputeModuleStats(rows, "m1")

		assert.Equal(t, 4, stats.TotalAssigned)
		assert.Equal(t, 3, stats.Completed)
		assert.Equal(t, 1, stats.InProgress)
		assert.Equal(t, 0, stats.NotStarted)
		assert.Equal(t, 75, stats.CompletionRate)
		assert.Equal(t, "module m1", stats.ModuleTitle)
	})

	t.Run("no rows is zero, not an error", func(t *testing.T) {
		stats := progress.ComputeModuleStats(rows, "m9")

		assert.Equal(t, "m9", stats.ModuleID)
		assert.Zero(t, stats.TotalAssigned)
		assert.Zero(t, stats.CompletionRate)
		assert.Zero(t, stats.AverageProgress)
	})
}

func TestComputeEmployeeStats(t *testing.T) {
	rows := []progress.ProgressRow{
		row("e1", "m1", progress.StatusCompleted, 100),
		row("e1", "m2", progress.StatusInProgress, 50),
		row("e2", "m1", progress.StatusInProgress, 10),
	}

	stats := progress.ComputeEmployeeStats(rows, "e1")

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 50, stats.CompletionRate)
	assert.Equal(t, 75, stats.AverageProgress)
}

func TestComputeCompanyOverview(t *testing.T) {
	t.Run("average of 100, 50 and 0 is 50", func(t *testing.T) {
		overview := progress.ComputeCompanyOverview([]progress.ProgressRow{
			row("e1", "m1", progress.StatusCompleted, 100),
			row("e2", "m1", progress.StatusInProgress, 50),
			row("e3", "m1", progress.StatusNotStarted, 0),
		})

		assert.Equal(t, 50, overview.AverageProgress)
		assert.Equal(t, 1, overview.CompletedCount)
		assert.Equal(t, 1, overview.InProgressCount)
		assert.Equal(t, 1, overview.NotStartedCount)
		assert.Equal(t, 3, overview.TotalAssignments)
		assert.Equal(t, 33, overview.CompletionRate)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, progress.CompanyOverview{}, progress.ComputeCompanyOverview(nil))
	})
}

func TestGroupStats(t *testing.T) {
	rows := []progress.ProgressRow{
		row("e2", "m2", progress.StatusCompleted, 100),
		row("e1", "m1", progress.StatusInProgress, 40),
		row("e1", "m2", progress.StatusNotStarted, 0),
	}

	modules := progress.GroupModuleStats(rows, nil)
	require.Len(t, modules, 2)
	assert.Equal(t, "m2", modules[0].ModuleID)
	assert.Equal(t, 2, modules[0].TotalAssigned)
	assert.Equal(t, 50, modules[0].CompletionRate)

	employees := progress.GroupEmployeeStats(rows, []string{"e3", "e1", "e3"})
	require.Len(t, employees, 3)
	assert.Equal(t, "e3", employees[0].EmployeeID)
	assert.Zero(t, employees[0].Total)
	assert.Equal(t, "e1", employees[1].EmployeeID)
	assert.Equal(t, 2, employees[1].Total)
	assert.Equal(t, 20, employees[1].AverageProgress)
	assert.Equal(t, "e2", employees[2].EmployeeID)
}
