package instrument

import (
	"github.com/scpikit/spd3303x-go/pkg/scpi"
)

// Identify queries *IDN? and returns the raw identification string
// (manufacturer, model, serial, firmware, hardware; comma separated).
func (d *SPD3303X) Identify() (string, error) {
	return d.query(scpi.IdentifyQuery())
}

// SystemError queries SYST:ERR? and returns the instrument's error
// queue entry verbatim.
func (d *SPD3303X) SystemError() (string, error) {
	return d.query(scpi.SystemErrorQuery())
}

// SystemVersion queries SYST:VERS? and returns the SCPI version string.
func (d *SPD3303X) SystemVersion() (string, error) {
	return d.query(scpi.SystemVersionQuery())
}

// SystemStatus queries SYST:STAT? and decodes the status word. The
// decode is total: any word yields a snapshot, unmapped bit patterns
// degrade to unknown values rather than errors.
func (d *SPD3303X) SystemStatus() (scpi.SystemStatus, error) {
	resp, err := d.query(scpi.SystemStatusQuery())
	if err != nil {
		return scpi.SystemStatus{}, err
	}
	word, err := scpi.ParseStatusWord(resp)
	if err != nil {
		return scpi.SystemStatus{}, err
	}
	return scpi.DecodeStatusWord(word), nil
}

// Save stores the current instrument state in slot 1..5 (*SAV).
func (d *SPD3303X) Save(slot uint8) error {
	if err := scpi.ValidateSlot(slot); err != nil {
		return err
	}
	return d.write(scpi.SaveCommand(slot))
}

// Recall restores the instrument state from slot 1..5 (*RCL).
func (d *SPD3303X) Recall(slot uint8) error {
	if err := scpi.ValidateSlot(slot); err != nil {
		return err
	}
	return d.write(scpi.RecallCommand(slot))
}
