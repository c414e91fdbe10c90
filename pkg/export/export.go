// Package export renders tracked applications in interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"jobtracker/pkg/domain"
)

// csvHeader is the column order of the CSV export.
var csvHeader = []string{
	"id",
	"company_name",
	"role_title",
	"status",
	"source",
	"applied_at",
	"last_email_at",
	"next_action_at",
	"confidence_score",
	"notes",
	"job_url",
	"email_count",
	"created_at",
	"updated_at",
}

// ApplicationsCSV writes the applications to w as CSV, header first.
// Timestamps are RFC 3339; unset nullable fields become empty cells.
func ApplicationsCSV(w io.Writer, apps []domain.Application) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}

	for _, app := range apps {
		record := []string{
			strconv.FormatInt(int64(app.ID), 10),
			app.CompanyName,
			app.RoleTitle,
			string(app.Status),
			app.Source,
			formatTime(app.AppliedAt),
			formatTime(app.LastEmailAt),
			formatTime(app.NextActionAt),
			formatScore(app.ConfidenceScore),
			app.Notes,
			app.JobURL,
			strconv.Itoa(app.EmailCount),
			app.CreatedAt.Format(time.RFC3339),
			app.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write CSV record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not flush CSV: %w", err)
	}

	return nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(time.RFC3339)
}

func formatScore(score *float64) string {
	if score == nil {
		return ""
	}

	return strconv.FormatFloat(*score, 'f', -1, 64)
}
