package expense

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// CsvRenderer serializes expenses into the tabular export format consumed by
// spreadsheet tools. Column order is part of the export contract.
type CsvRenderer struct {
}

func NewCsvRenderer() *CsvRenderer {
	return &CsvRenderer{}
}

func (r *CsvRenderer) Render(expenses []Expense) (string, error) {
	data := make([][]string, 0, len(expenses)+1)
	data = append(data, []string{"Date", "Category", "Description", "Amount", "Payment Method", "Status", "Recurring"})
	for _, e := range expenses {
		recurring := e.RecurringFrequency
		if recurring == "" {
			recurring = "One-time"
		}
		data = append(data, []string{
			e.Date,
			e.Category,
			e.Description,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.PaymentMethod,
			string(e.ApprovalStatus),
			recurring,
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
