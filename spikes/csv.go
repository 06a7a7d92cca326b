package spikes

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/edorfaus/ttl-events/log"
)

// headerRows is the number of header lines the spike sorter writes
// before the spike rows.
const headerRows = 2

// Unit is the spike train of one sorted unit.
type Unit struct {
	ID    int
	Ticks []int64
}

// ReadCSV reads a spike sorter export: one spike per row, with the
// spike time in seconds, the unit id and the channel id. The times are
// converted to ticks at the given rate, truncating toward zero.
func ReadCSV(path string, rateHz float64) (ticks []int64, units []int, err error) {
	defer log.Time(1, "Reading: %v ...", path)(" done in")

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	for row := 0; ; row++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if row < headerRows {
			continue
		}
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf(
				"%v: row %v: expected at least 2 columns, got %v",
				path, row+1, len(rec),
			)
		}

		sec, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%v: row %v: %w", path, row+1, err)
		}
		unit, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, nil, fmt.Errorf("%v: row %v: %w", path, row+1, err)
		}

		ticks = append(ticks, int64(sec*rateHz))
		units = append(units, unit)
	}

	log.Ln(1, "Number of spikes:", len(ticks))
	return ticks, units, nil
}

// ByUnit splits spikes into one train per unit, ordered by unit id.
// Spikes keep their order within each train.
func ByUnit(ticks []int64, units []int) []Unit {
	ids := slices.Clone(units)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	out := make([]Unit, len(ids))
	for i, id := range ids {
		out[i].ID = id
	}
	for i, t := range ticks {
		j, _ := slices.BinarySearch(ids, units[i])
		out[j].Ticks = append(out[j].Ticks, t)
	}
	return out
}

// LoadUnits reads a spike sorter export and splits it by unit.
func LoadUnits(path string, rateHz float64) ([]Unit, error) {
	ticks, units, err := ReadCSV(path, rateHz)
	if err != nil {
		return nil, err
	}
	u := ByUnit(ticks, units)
	log.Ln(1, "Number of units:", len(u))
	return u, nil
}
