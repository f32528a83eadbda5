package progress

import "math"

type ModuleStats struct {
	ModuleID        string `json:"module_id"`
	ModuleTitle     string `json:"module_title"`
	TotalAssigned   int    `json:"total_assigned"`
	Completed       int    `json:"completed"`
	InProgress      int    `json:"in_progress"`
	NotStarted      int    `json:"not_started"`
	CompletionRate  int    `json:"completion_rate"`
	AverageProgress int    `json:"average_progress"`
}

type EmployeeStats struct {
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	Total           int    `json:"total"`
	Completed       int    `json:"completed"`
	InProgress      int    `json:"in_progress"`
	NotStarted      int    `json:"not_started"`
	CompletionRate  int    `json:"completion_rate"`
	AverageProgress int    `json:"average_progress"`
}

type CompanyOverview struct {
	TotalAssignments int `json:"total_assignments"`
	CompletedCount   int `json:"completed_count"`
	InProgressCount  int `json:"in_progress_count"`
	NotStartedCount  int `json:"not_started_count"`
	CompletionRate   int `json:"completion_rate"`
	AverageProgress  int `json:"average_progress"`
}

// CompletionRate is round(completed/total*100), 0 when total is 0.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func average(sum, n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// tally counts one group of rows.
type tally struct {
	total, completed, inProgress, notStarted, pctSum int
}

func (t *tally) add(r ProgressRow) {
	t.total++
	t.pctSum += r.ProgressPercentage
	switch r.Status {
	case StatusCompleted:
		t.completed++
	case StatusInProgress:
		t.inProgress++
	case StatusNotStarted:
		t.notStarted++
	}
}

func ComputeModuleStats(rows []ProgressRow, moduleID string) ModuleStats {
	stats := GroupModuleStats(filterRows(rows, FetchFilter{ModuleID: moduleID}), []string{moduleID})
	return stats[0]
}

func ComputeEmployeeStats(rows []ProgressRow, employeeID string) EmployeeStats {
	stats := GroupEmployeeStats(filterRows(rows, FetchFilter{EmployeeID: employeeID}), []string{employeeID})
	return stats[0]
}

func ComputeCompanyOverview(rows []ProgressRow) CompanyOverview {
	var t tally
	for _, r := range rows {
		t.add(r)
	}
	return CompanyOverview{
		TotalAssignments: t.total,
		CompletedCount:   t.completed,
		InProgressCount:  t.inProgress,
		NotStartedCount:  t.notStarted,
		CompletionRate:   CompletionRate(t.completed, t.total),
		AverageProgress:  average(t.pctSum, t.total),
	}
}

// GroupModuleStats buckets rows by module in one pass. Seeded ids come first and
// are reported even without rows; other modules follow in first-seen order.
func GroupModuleStats(rows []ProgressRow, seedIDs []string) []ModuleStats {
	order, tallies := seed(seedIDs)
	titles := make(map[string]string)

	for _, r := range rows {
		t, ok := tallies[r.ModuleID]
		if !ok {
			t = &tally{}
			tallies[r.ModuleID] = t
			order = append(order, r.ModuleID)
		}
		t.add(r)
		if _, ok := titles[r.ModuleID]; !ok {
			titles[r.ModuleID] = r.ModuleTitle
		}
	}

	out := make([]ModuleStats, len(order))
	for i, id := range order {
		t := tallies[id]
		out[i] = ModuleStats{
			ModuleID:        id,
			ModuleTitle:     titles[id],
			TotalAssigned:   t.total,
			Completed:       t.completed,
			InProgress:      t.inProgress,
			NotStarted:      t.notStarted,
			CompletionRate:  CompletionRate(t.completed, t.total),
			AverageProgress: average(t.pctSum, t.total),
		}
	}
	return out
}

// GroupEmployeeStats is GroupModuleStats keyed by employee.
func GroupEmployeeStats(rows []ProgressRow, seedIDs []string) []EmployeeStats {
	order, tallies := seed(seedIDs)
	names := make(map[string]string)

	for _, r := range rows {
		t, ok := tallies[r.EmployeeID]
		if !ok {
			t = &tally{}
			tallies[r.EmployeeID] = t
			order = append(order, r.EmployeeID)
		}
		t.add(r)
		if _, ok := names[r.EmployeeID]; !ok {
			names[r.EmployeeID] = r.EmployeeName
		}
	}

	out := make([]EmployeeStats, len(order))
	for i, id := range order {
		t := tallies[id]
		out[i] = EmployeeStats{
			EmployeeID:      id,
			EmployeeName:    names[id],
			Total:           t.total,
			Completed:       t.completed,
			InProgress:      t.inProgress,
			NotStarted:      t.notStarted,
			CompletionRate:  CompletionRate(t.completed, t.total),
			AverageProgress: average(t.pctSum, t.total),
		}
	}
	return out
}

func seed(ids []string) ([]string, map[string]*tally) {
	order := make([]string, 0, len(ids))
	tallies := make(map[string]*tally, len(ids))
	for _, id := range ids {
		if _, ok := tallies[id]; ok {
			continue
		}
		tallies[id] = &tally{}
		order = append(order, id)
	}
	return order, tallies
}

// filterRows applies f in memory and keeps the input order.
func filterRows(rows []ProgressRow, f FetchFilter) []ProgressRow {
	if f.IsZero() {
		return rows
	}
	out := make([]ProgressRow, 0, len(rows))
	for _, r := range rows {
		if f.ModuleID != "" && r.ModuleID != f.ModuleID {
			continue
		}
		if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
			continue
		}
		if f.ActiveOnly && !r.ModuleActive {
			continue
		}
		out = append(out, r)
	}
	return out
}
