package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/vsinha/capplan/pkg/domain/entities"
)

// Writer serializes simulation output tables to CSV files. The production
// table is the only durable artifact of a run; it is an output sink, never
// an input to subsequent runs.
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteProduction writes the production table: date, forecasted_demand, one
// <stage>_processed column per stage in chain order, and processed_units
// (final-stage output).
func (w *Writer) WriteProduction(
	filename string,
	production []entities.ProductionRecord,
	chain entities.StageChain,
) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create production file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"date", "forecasted_demand"}
	for _, stage := range chain {
		header = append(header, string(stage)+"_processed")
	}
	header = append(header, "processed_units")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write production header: %w", err)
	}

	for _, record := range production {
		row := []string{
			record.Date.Format(dateLayout),
			strconv.FormatInt(int64(record.ForecastedDemand), 10),
		}
		for _, stage := range chain {
			row = append(row, strconv.FormatInt(int64(record.Processed[stage]), 10))
		}
		row = append(row, strconv.FormatInt(int64(record.FinalProcessed), 10))
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write production row for %s: %w",
				record.Date.Format(dateLayout), err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteUtilization writes the utilization table: date plus one unclamped
// ratio column per stage in chain order.
func (w *Writer) WriteUtilization(
	filename string,
	utilization []entities.UtilizationRecord,
	chain entities.StageChain,
) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create utilization file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"date"}
	for _, stage := range chain {
		header = append(header, string(stage))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write utilization header: %w", err)
	}

	for _, record := range utilization {
		row := []string{record.Date.Format(dateLayout)}
		for _, stage := range chain {
			row = append(row, record.Utilization[stage].String())
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write utilization row for %s: %w",
				record.Date.Format(dateLayout), err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteBottlenecks writes one summary table: stage, days, percent.
func (w *Writer) WriteBottlenecks(filename string, summaries []entities.BottleneckSummary) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create bottleneck file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"stage", "days", "percent"}); err != nil {
		return fmt.Errorf("failed to write bottleneck header: %w", err)
	}
	for _, summary := range summaries {
		row := []string{
			string(summary.Stage),
			strconv.Itoa(summary.Days),
			summary.Percent.StringFixed(1),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write bottleneck row for %s: %w", summary.Stage, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
