// Package export writes the NC register as an xlsx workbook for offline
// review and distribution to the responsible departments.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"audir/pkg/nc/repository"
)

const sheet = "NC Register"

var header = []string{
	"Audit Code", "Audit Type", "Auditor", "Asset", "Question",
	"Response", "Department", "Assigned To", "Status",
	"Root Cause", "Containment Action", "Corrective Action", "Preventive Action",
	"Evidence", "Note",
}

// Register renders rows into a single-sheet workbook.
func Register(rows []repository.RegisterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, r := range rows {
		assignee := assigneeLabel(r)
		values := []interface{}{
			r.AuditCode, r.AuditType, r.AuditorName, r.AssetNumber,
			fmt.Sprintf("Q%d. %s", r.QuestionIndex+1, r.QuestionText),
			r.Response, r.AssignedNc, assignee, r.NcStatus,
			r.RootCause, r.ContainmentAction, r.CorrectiveAction, r.PreventiveAction,
			r.EvidenceName, r.Note,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func assigneeLabel(r repository.RegisterRow) string {
	name := r.AssignedUserFirstName
	if r.AssignedUserLastName != "" {
		if name != "" {
			name += " "
		}
		name += r.AssignedUserLastName
	}
	if name != "" {
		return name
	}
	if r.AssignedUserEmail != "" {
		return r.AssignedUserEmail
	}
	if r.AssignedUserID != nil {
		return "Assigned"
	}
	return "Unassigned"
}
