package datetimepicker

import (
	"fmt"
	"github.com/davejbax/go-datetimepicker/internal/encode"
	"io"
)

// SnapshotSize is the number of bytes written by [Picker.WriteTo]
const SnapshotSize = encode.RecordSize

var (
	ErrUnsupportedSnapshotVersion = encode.ErrUnsupportedRecordVersion
	ErrInvalidSnapshot            = encode.ErrInvalidRecord
	ErrYearOutOfRange             = encode.ErrYearOutOfRange
)

// Ensure Picker implements [io.WriterTo]
var _ io.WriterTo = &Picker{}

// WriteTo writes a fixed-size binary snapshot of the picker: its selection, whether it is open, its view and the
// visible month. Options are not part of the snapshot.
func (p *Picker) WriteTo(w io.Writer) (int64, error) {
	state := p.State()

	record, err := encode.AsRecord(encode.Snapshot{
		Selection: state.Selection,
		Open:      state.Open,
		View:      state.View,
		Year:      state.Year,
		Month:     state.Month,
	})
	if err != nil {
		return 0, fmt.Errorf("could not encode snapshot: %w", err)
	}

	return record.WriteTo(w)
}

// Restore reads a snapshot written by [Picker.WriteTo] and adopts its state. Like [SetValue], restoring bypasses
// bounds and does not notify. On error the picker is left unchanged.
func (p *Picker) Restore(r io.Reader) error {
	record, err := encode.ReadRecord(r)
	if err != nil {
		return fmt.Errorf("could not read snapshot: %w", err)
	}

	snapshot, err := record.Snapshot()
	if err != nil {
		return fmt.Errorf("could not decode snapshot: %w", err)
	}

	p.selection.Set(snapshot.Selection)
	p.view.Restore(snapshot.Open, snapshot.View)
	p.year, p.month = snapshot.Year, snapshot.Month

	p.log.WithField("open", snapshot.Open).Debug("restored snapshot")

	return nil
}
