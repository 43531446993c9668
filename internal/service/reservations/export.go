package reservations

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
)

// ExportFormat формат выгрузки расписания
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
)

// ParseExportFormat разбирает формат выгрузки из строки запроса
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, s)
	}
}

// exportRow строка выгрузки, колонки совпадают с CSV заголовком
type exportRow struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Date      string `json:"date"`
}

// ExportSchedule выгружает брони диапазона дат в w в формате JSON или CSV
// Строки идут в порядке (date, start_time)
func (s *Service) ExportSchedule(ctx context.Context, dateStart, dateEnd time.Time, format ExportFormat, w io.Writer) error {
	s.logger.Info("ExportSchedule: range %s - %s, format=%s",
		dateStart.Format(domain.DateFormat), dateEnd.Format(domain.DateFormat), format)

	if dateEnd.Before(dateStart) {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidDateRange,
			dateEnd.Format(domain.DateFormat), dateStart.Format(domain.DateFormat))
	}

	reservations, err := s.reservationRepo.GetByDateRange(ctx, dateStart, dateEnd)
	if err != nil {
		s.logger.Error("ExportSchedule: repository error: %v", err)
		return fmt.Errorf("%w: ExportSchedule - repository error: %v", ErrInternal, err)
	}

	rows := make([]exportRow, 0, len(reservations))
	for _, res := range reservations {
		rows = append(rows, exportRow{
			Name:      res.Name,
			StartTime: res.StartTime.String(),
			EndTime:   res.EndTime.String(),
			Date:      res.Date.Format(domain.DateFormat),
		})
	}

	switch format {
	case FormatJSON:
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			return fmt.Errorf("%w: ExportSchedule - encode json: %v", ErrInternal, err)
		}
	case FormatCSV:
		if err := writeCSV(w, rows); err != nil {
			return fmt.Errorf("%w: ExportSchedule - write csv: %v", ErrInternal, err)
		}
	default:
		return fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, format)
	}

	s.logger.Info("ExportSchedule: exported %d reservations", len(rows))
	return nil
}

func writeCSV(w io.Writer, rows []exportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"name", "start_time", "end_time", "date"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Name, row.StartTime, row.EndTime, row.Date}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
