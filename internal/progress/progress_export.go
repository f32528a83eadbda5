package progress

import (
	"bytes"
	"context"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/contextutil"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	sheetProgress  = "Progress"
	sheetModules   = "Modules"
	sheetEmployees = "Employees"

	exportTimeLayout = "2006-01-02 15:04"
)

var (
	progressHeader = []interface{}{"Employee", "Module", "Status", "Progress %", "Started", "Completed", "Updated"}
	moduleHeader   = []interface{}{"Module", "Assigned", "Completed", "In progress", "Not started", "Completion %", "Average %"}
	employeeHeader = []interface{}{"Employee", "Assigned", "Completed", "In progress", "Not started", "Completion %", "Average %"}
)

// ExportReport renders the caller's dashboard as an xlsx workbook. Employee
// statistics are only included for company admins.
func (s *service) ExportReport(ctx context.Context, caller tenant.Caller) ([]byte, error) {
	scope, err := tenant.Resolve(caller)
	if err != nil {
		return nil, err
	}
	d, err := s.Dashboard(ctx, caller)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetProgress); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	progressRows := make([][]interface{}, len(d.Rows))
	for i, r := range d.Rows {
		progressRows[i] = []interface{}{
			r.EmployeeName, r.ModuleTitle, string(r.Status), r.ProgressPercentage,
			formatTime(r.StartedAt), formatTime(r.CompletedAt), r.UpdatedAt.Format(exportTimeLayout),
		}
	}
	if err := writeSheet(f, sheetProgress, headerStyle, progressHeader, progressRows); err != nil {
		return nil, err
	}

	moduleRows := make([][]interface{}, len(d.Modules))
	for i, m := range d.Modules {
		moduleRows[i] = []interface{}{
			m.ModuleTitle, m.TotalAssigned, m.Completed, m.InProgress, m.NotStarted, m.CompletionRate, m.AverageProgress,
		}
	}
	if _, err := f.NewSheet(sheetModules); err != nil {
		return nil, err
	}
	if err := writeSheet(f, sheetModules, headerStyle, moduleHeader, moduleRows); err != nil {
		return nil, err
	}

	if _, ok := scope.(tenant.CompanyAdminScope); ok {
		employeeRows := make([][]interface{}, len(d.Employees))
		for i, e := range d.Employees {
			employeeRows[i] = []interface{}{
				e.EmployeeName, e.Total, e.Completed, e.InProgress, e.NotStarted, e.CompletionRate, e.AverageProgress,
			}
		}
		if _, err := f.NewSheet(sheetEmployees); err != nil {
			return nil, err
		}
		if err := writeSheet(f, sheetEmployees, headerStyle, employeeHeader, employeeRows); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write progress report failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}

	s.logger.Info("export progress report success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("rows", len(d.Rows)),
		zap.Bool("stale", d.Stale),
	)
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(exportTimeLayout)
}
