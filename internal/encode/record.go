package encode

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-datetimepicker/internal/calendar"
	"github.com/davejbax/go-datetimepicker/internal/view"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"io"
	"math"
	"time"
)

// RecordVersion is the only record layout currently written or understood
const RecordVersion = 1

// RecordSize is the packed size of a [Record] in bytes
const RecordSize = 12

var (
	// ErrUnsupportedRecordVersion indicates a record written by an incompatible version of this package
	ErrUnsupportedRecordVersion = errors.New("unsupported snapshot record version")

	// ErrYearOutOfRange indicates a year that cannot be held in the unsigned 16-bit year fields of a record
	ErrYearOutOfRange = errors.New("year must be in the range 0-65535 (inclusive)")

	// ErrInvalidRecord indicates a record whose fields do not describe a valid picker state
	ErrInvalidRecord = errors.New("snapshot record contains an invalid date, time or view")
)

type RecordFlag uint8

const (
	RecordFlagHasSelection RecordFlag = 0x01
	RecordFlagOpen         RecordFlag = 0x02
)

// Record is the fixed-layout binary form of a picker snapshot. All multi-byte fields are big endian.
//
// The selection fields are zero when [RecordFlagHasSelection] is unset.
type Record struct {
	Version   uint8
	Flags     RecordFlag
	Year      uint16 `struc:"uint16,big"`
	Month     uint8
	Day       uint8
	Hour      uint8
	Minute    uint8
	ViewYear  uint16 `struc:"uint16,big"`
	ViewMonth uint8
	View      uint8
}

// Snapshot is the restorable state of a picker: what is selected, and what the user is looking at.
type Snapshot struct {
	Selection *calendar.DateTime
	Open      bool
	View      view.State
	Year      int
	Month     time.Month
}

// AsRecord converts a snapshot into its binary record form
func AsRecord(s Snapshot) (Record, error) {
	if !inYearRange(s.Year) {
		return Record{}, fmt.Errorf("could not encode visible month: %w", ErrYearOutOfRange)
	}

	r := Record{
		Version:   RecordVersion,
		ViewYear:  uint16(s.Year),
		ViewMonth: uint8(s.Month),
		View:      uint8(s.View),
	}

	if s.Open {
		r.Flags |= RecordFlagOpen
	}

	if v := s.Selection; v != nil {
		if !inYearRange(v.Year) {
			return Record{}, fmt.Errorf("could not encode selection: %w", ErrYearOutOfRange)
		}

		r.Flags |= RecordFlagHasSelection
		r.Year = uint16(v.Year)
		r.Month = uint8(v.Month)
		r.Day = uint8(v.Day)
		r.Hour = uint8(v.Hour)
		r.Minute = uint8(v.Minute)
	}

	return r, nil
}

// Snapshot converts a record back into a snapshot, validating every field
func (r Record) Snapshot() (Snapshot, error) {
	if r.Version != RecordVersion {
		return Snapshot{}, fmt.Errorf("could not decode record version %d: %w", r.Version, ErrUnsupportedRecordVersion)
	}

	s := Snapshot{
		Open:  r.Flags&RecordFlagOpen != 0,
		View:  view.State(r.View),
		Year:  int(r.ViewYear),
		Month: time.Month(r.ViewMonth),
	}

	if s.Month < time.January || s.Month > time.December || (s.View != view.DateGrid && s.View != view.TimeList) {
		return Snapshot{}, ErrInvalidRecord
	}

	if r.Flags&RecordFlagHasSelection != 0 {
		v := calendar.Date{Year: int(r.Year), Month: time.Month(r.Month), Day: int(r.Day)}.At(int(r.Hour), int(r.Minute))
		if !v.IsValid() {
			return Snapshot{}, ErrInvalidRecord
		}
		s.Selection = &v
	}

	return s, nil
}

// Ensure Record implements [io.WriterTo]
var _ io.WriterTo = &Record{}

func (r *Record) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)
	if err := struc.Pack(cw, r); err != nil {
		return cw.Count(), fmt.Errorf("failed to pack snapshot record: %w", err)
	}

	return cw.Count(), nil
}

// ReadRecord reads one packed [Record] from r
func ReadRecord(r io.Reader) (Record, error) {
	var record Record
	if err := struc.Unpack(r, &record); err != nil {
		return Record{}, fmt.Errorf("failed to unpack snapshot record: %w", err)
	}

	return record, nil
}

func inYearRange(year int) bool {
	return year >= 0 && year <= math.MaxUint16
}
