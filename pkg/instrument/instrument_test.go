package instrument

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scpikit/spd3303x-go/pkg/log"
	"github.com/scpikit/spd3303x-go/pkg/scpi"
)

// fakeTransport records every write and serves scripted responses in
// order. A read past the script returns an empty payload.
type fakeTransport struct {
	writes    []string
	responses []string
	closed    bool
}

func (f *fakeTransport) Write(p []byte) error {
	f.writes = append(f.writes, string(p))
	return nil
}

func (f *fakeTransport) Read(max int) ([]byte, error) {
	if len(f.responses) == 0 {
		return []byte("\x00\x00"), nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return []byte(resp), nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func newTestDevice(responses ...string) (*SPD3303X, *fakeTransport) {
	tr := &fakeTransport{responses: responses}
	return New(tr, Config{}), tr
}

func TestIdentify(t *testing.T) {
	d, tr := newTestDevice("Siglent Technologies,SPD3303X,SPD00001,1.01.01.02.05,V3.0\n")

	idn, err := d.Identify()
	require.NoError(t, err)
	assert.Equal(t, "Siglent Technologies,SPD3303X,SPD00001,1.01.01.02.05,V3.0", idn)
	assert.Equal(t, []string{"*IDN?\n"}, tr.writes)
}

func TestEmptyResponse(t *testing.T) {
	d, _ := newTestDevice("\x00\x00\x00")

	_, err := d.Identify()
	assert.ErrorIs(t, err, scpi.ErrEmptyResponse)
}

func TestSetpoints(t *testing.T) {
	d, tr := newTestDevice("3.300000\n", "0.500000\n")

	require.NoError(t, d.SetVoltage(scpi.Channel1, 3.3))
	require.NoError(t, d.SetCurrent(scpi.Channel2, 0.5))

	v, err := d.Voltage(scpi.Channel1)
	require.NoError(t, err)
	assert.Equal(t, 3.3, v)

	i, err := d.Current(scpi.Channel2)
	require.NoError(t, err)
	assert.Equal(t, 0.5, i)

	assert.Equal(t, []string{
		"CH1:VOLT 3.300000\n",
		"CH2:CURR 0.500000\n",
		"CH1:VOLT?\n",
		"CH2:CURR?\n",
	}, tr.writes)
}

func TestChannel3Guards(t *testing.T) {
	d, tr := newTestDevice()

	assert.ErrorIs(t, d.SetVoltage(scpi.Channel3, 1), scpi.ErrUnsupportedChannel)
	assert.ErrorIs(t, d.SetCurrent(scpi.Channel3, 1), scpi.ErrUnsupportedChannel)
	_, err := d.MeasureVoltage(scpi.Channel3)
	assert.ErrorIs(t, err, scpi.ErrUnsupportedChannel)
	assert.ErrorIs(t, d.SetTimer(scpi.Channel3, 1, 1, 1, 1), scpi.ErrUnsupportedChannel)
	assert.ErrorIs(t, d.SetWaveDisplay(scpi.Channel3, scpi.OutputOn), scpi.ErrUnsupportedChannel)

	// Output-state query fails differently: control works, telemetry
	// does not.
	_, err = d.OutputState(scpi.Channel3)
	assert.ErrorIs(t, err, scpi.ErrOutputStateUnobservable)
	assert.NotErrorIs(t, err, scpi.ErrUnsupportedChannel)

	// Guard failures never reach the wire.
	assert.Empty(t, tr.writes)

	// On/off control of CH3 still works.
	require.NoError(t, d.SetOutput(scpi.Channel3, scpi.OutputOn))
	assert.Equal(t, []string{"OUTPut CH3,ON\n"}, tr.writes)
}

func TestOutputStateFromStatusWord(t *testing.T) {
	// Bit 4 set: CH1 output on, CH2 off.
	d, tr := newTestDevice("0x10\n", "0x10\n")

	on, err := d.OutputState(scpi.Channel1)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = d.OutputState(scpi.Channel2)
	require.NoError(t, err)
	assert.False(t, on)

	assert.Equal(t, []string{"SYST:STAT?\n", "SYST:STAT?\n"}, tr.writes)
}

func TestTrackMode(t *testing.T) {
	d, tr := newTestDevice("1\n")

	require.NoError(t, d.SetTrackMode(scpi.TrackModeParallel))

	mode, err := d.TrackMode()
	require.NoError(t, err)
	assert.Equal(t, scpi.TrackModeSeries, mode)

	assert.ErrorIs(t, d.SetTrackMode(scpi.TrackModeUnknown), scpi.ErrUnknownEnumValue)

	assert.Equal(t, []string{"OUTP:TRACK 2\n", "OUTP:TRACK?\n"}, tr.writes)
}

func TestMeasureSelected(t *testing.T) {
	d, tr := newTestDevice("1.234000\n", "0.100000\n", "0.123400\n")

	v, err := d.MeasureSelectedVoltage()
	require.NoError(t, err)
	assert.Equal(t, 1.234, v)

	_, err = d.MeasureSelectedCurrent()
	require.NoError(t, err)
	_, err = d.MeasureSelectedPower()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"MEAS:VOLT?\n",
		"MEAS:CURR?\n",
		"MEAS:POWEr?\n",
	}, tr.writes)
}

func TestTimer(t *testing.T) {
	d, tr := newTestDevice("5.000000,1.000000,2.000000\n")

	require.NoError(t, d.SetTimer(scpi.Channel1, 2, 5, 1, 2))

	entry, err := d.Timer(scpi.Channel1, 2)
	require.NoError(t, err)
	assert.Equal(t, scpi.TimerEntry{Group: 2, Voltage: 5, Current: 1, Duration: 2}, entry)

	require.NoError(t, d.SetTimerState(scpi.Channel1, scpi.TimerOn))

	assert.ErrorIs(t, d.SetTimer(scpi.Channel1, 0, 1, 1, 1), scpi.ErrRangeViolation)
	assert.ErrorIs(t, d.SetTimer(scpi.Channel1, 6, 1, 1, 1), scpi.ErrRangeViolation)

	assert.Equal(t, []string{
		"TIMER:SET CH1,2,5.000000,1.000000,2.000000\n",
		"TIMER:SET? CH1,2\n",
		"TIMER CH1,ON\n",
	}, tr.writes)
}

func TestSaveRecall(t *testing.T) {
	d, tr := newTestDevice()

	require.NoError(t, d.Save(1))
	require.NoError(t, d.Recall(5))
	assert.ErrorIs(t, d.Save(0), scpi.ErrRangeViolation)
	assert.ErrorIs(t, d.Recall(6), scpi.ErrRangeViolation)

	assert.Equal(t, []string{"*SAV 1\n", "*RCL 5\n"}, tr.writes)
}

func TestSoftResetSequence(t *testing.T) {
	d, tr := newTestDevice()

	require.NoError(t, d.SoftReset())

	assert.Equal(t, []string{
		"OUTPut CH1,OFF\n",
		"OUTPut CH2,OFF\n",
		"OUTPut CH3,OFF\n",
		"OUTP:TRACK 0\n",
		"TIMER CH1,OFF\n",
		"TIMER CH2,OFF\n",
		"OUTP:WAVE CH1,OFF\n",
		"OUTP:WAVE CH2,OFF\n",
		"CH1:VOLT 0.000000\n",
		"CH1:CURR 0.000000\n",
		"CH2:VOLT 0.000000\n",
		"CH2:CURR 0.000000\n",
	}, tr.writes)
}

func TestSoftResetFailFast(t *testing.T) {
	tr := &failAfterTransport{failAt: 3}
	d := New(tr, Config{})

	err := d.SoftReset()
	require.Error(t, err)
	// Steps after the failing one are never attempted.
	assert.Equal(t, 4, tr.attempts)
}

func TestChannelStatusOrder(t *testing.T) {
	d, tr := newTestDevice(
		"3.300000\n", "0.500000\n", "3.290000\n", "0.120000\n", "0.394800\n",
	)

	status, err := d.ChannelStatus(scpi.Channel1)
	require.NoError(t, err)
	assert.Equal(t, scpi.ChannelStatus{
		SetVoltage:      3.3,
		SetCurrent:      0.5,
		MeasuredVoltage: 3.29,
		MeasuredCurrent: 0.12,
		MeasuredPower:   0.3948,
	}, status)

	assert.Equal(t, []string{
		"CH1:VOLT?\n",
		"CH1:CURR?\n",
		"MEAS:VOLT? CH1\n",
		"MEAS:CURR? CH1\n",
		"MEAS:POWEr? CH1\n",
	}, tr.writes)
}

func TestNetworkConfigOrder(t *testing.T) {
	d, tr := newTestDevice(
		"192.168.1.50\n", "255.255.255.0\n", "192.168.1.1\n", "DHCP:ON\n",
	)

	config, err := d.NetworkConfig()
	require.NoError(t, err)
	assert.Equal(t, scpi.NetworkConfig{
		IP:      "192.168.1.50",
		Mask:    "255.255.255.0",
		Gateway: "192.168.1.1",
		DHCP:    false, // "DHCP:ON" is neither "ON" nor "1"
	}, config)

	assert.Equal(t, []string{
		"IPaddr?\n", "MASKaddr?\n", "GATEaddr?\n", "DHCP?\n",
	}, tr.writes)
}

func TestDHCPLenientParse(t *testing.T) {
	d, _ := newTestDevice("1\n", "on\n", "OFF\n")

	on, err := d.DHCP()
	require.NoError(t, err)
	assert.True(t, on)

	on, err = d.DHCP()
	require.NoError(t, err)
	assert.True(t, on)

	on, err = d.DHCP()
	require.NoError(t, err)
	assert.False(t, on)
}

func TestSelectChannel(t *testing.T) {
	d, tr := newTestDevice("CH2\n")

	require.NoError(t, d.SelectChannel(scpi.Channel1))
	assert.ErrorIs(t, d.SelectChannel(scpi.Channel3), scpi.ErrUnsupportedChannel)

	ch, err := d.SelectedChannel()
	require.NoError(t, err)
	assert.Equal(t, scpi.Channel2, ch)

	assert.Equal(t, []string{"INST CH1\n", "INST?\n"}, tr.writes)
}

func TestLoggingEvents(t *testing.T) {
	var events []log.Event
	tr := &fakeTransport{responses: []string{"resp\n"}}
	d := New(tr, Config{Logger: logFunc(func(e log.Event) { events = append(events, e) })})

	_, err := d.SystemVersion()
	require.NoError(t, err)
	require.NoError(t, d.Close())

	require.Len(t, events, 3)
	assert.Equal(t, log.DirectionOut, events[0].Direction)
	require.NotNil(t, events[0].Command)
	assert.Equal(t, "SYST:VERS?", events[0].Command.Line)
	require.NotNil(t, events[1].Response)
	assert.Equal(t, "resp", events[1].Response.Line)
	assert.Equal(t, "SYST:VERS?", events[1].Response.Command)
	require.NotNil(t, events[2].StateChange)
	assert.Equal(t, "closed", events[2].StateChange.NewState)
	assert.True(t, tr.closed)
}

func TestConnectionIDFromTransport(t *testing.T) {
	d, _ := newTestDevice()
	assert.NotEmpty(t, d.ConnectionID())
}

// failAfterTransport fails the Nth write (0-based) and counts attempts.
type failAfterTransport struct {
	failAt   int
	attempts int
}

func (f *failAfterTransport) Write(p []byte) error {
	f.attempts++
	if f.attempts-1 == f.failAt {
		return errors.New("write failed")
	}
	return nil
}

func (f *failAfterTransport) Read(max int) ([]byte, error) {
	return nil, errors.New("no reads expected")
}

func (f *failAfterTransport) Close() error { return nil }

// logFunc adapts a function to the log.Logger interface.
type logFunc func(log.Event)

func (f logFunc) Log(event log.Event) { f(event) }
