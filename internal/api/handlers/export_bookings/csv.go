package export_bookings

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/internal/service/bookings/models"
)

// csvHeader фиксированный порядок колонок экспорта
// Порядок стабилен: потребители разбирают файл по позициям
var csvHeader = []string{
	"id", "date", "time", "status", "service", "make", "model", "vehicle_year",
	"customer_name", "customer_phone", "customer_email", "plate", "notes",
	"created_at", "confirmed_at",
}

// writeCSV пишет записи бронирований в CSV с фиксированным заголовком
func writeCSV(w io.Writer, records []models.BookingRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for i := range records {
		if err := writer.Write(recordToRow(&records[i])); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func recordToRow(rec *models.BookingRecord) []string {
	vehicleYear := ""
	if rec.VehicleYear != nil {
		vehicleYear = strconv.Itoa(*rec.VehicleYear)
	}

	plate := ""
	if rec.Plate != nil {
		plate = *rec.Plate
	}

	notes := ""
	if rec.Notes != nil {
		notes = *rec.Notes
	}

	confirmedAt := ""
	if rec.ConfirmedAt != nil {
		confirmedAt = rec.ConfirmedAt.Format(time.RFC3339)
	}

	return []string{
		rec.ID,
		rec.Date.Format(domain.DateFormat),
		rec.Time,
		rec.Status,
		rec.ServiceType,
		rec.MakeName,
		rec.ModelName,
		vehicleYear,
		rec.CustomerName,
		rec.CustomerPhone,
		rec.CustomerEmail,
		plate,
		notes,
		rec.CreatedAt.Format(time.RFC3339),
		confirmedAt,
	}
}
