package gridreader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/glyphlab/trigram"
)

// leadingFields is the number of descriptive fields before the digits.
const leadingFields = 2

// ParseRecord converts one record into a message. The first two fields are
// ignored, blank fields are skipped, and the remaining fields are unsigned
// digits consumed three at a time in encounter order.
//
// A trailing partial triple fails with trigram.ErrPartialTrigram; a digit
// above 4 fails with trigram.ErrDigitOverflow. Non-numeric fields fail with
// the strconv error.
func ParseRecord(fields []string) (trigram.Sequence, error) {
	if len(fields) <= leadingFields {
		return trigram.Sequence{}, nil
	}
	raw := make([]uint8, 0, len(fields)-leadingFields)
	for i, f := range fields[leadingFields:] {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+leadingFields, err)
		}
		raw = append(raw, uint8(v))
	}

	return trigram.FromRaw(raw)
}

// ReadCSV reads comma-separated records, skipping the header row, and
// returns one message per remaining record.
func ReadCSV(r io.Reader) (trigram.Corpus, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return trigram.Corpus{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var out trigram.Corpus
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		msg, err := ParseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, msg)
	}

	return out, nil
}
