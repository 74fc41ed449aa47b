package discovery

import (
	"errors"
	"strings"
)

// mDNS service parameters.
const (
	// ServiceTypeLXI is the generic LXI device service.
	ServiceTypeLXI = "_lxi._tcp"

	// ServiceTypeSCPIRaw is the raw-socket SCPI service.
	ServiceTypeSCPIRaw = "_scpi-raw._tcp"

	// Domain is the mDNS domain.
	Domain = "local."
)

// ErrNotFound indicates no matching instrument was discovered before
// the browse ended.
var ErrNotFound = errors.New("instrument not found")

// Instrument is one discovered LXI instrument.
type Instrument struct {
	// InstanceName is the mDNS instance name, typically including the
	// model and part of the serial number.
	InstanceName string

	// Host is the advertised hostname.
	Host string

	// Port is the advertised port. For _scpi-raw._tcp this is the raw
	// SCPI socket; for _lxi._tcp it is usually the web interface.
	Port uint16

	// Addresses holds all IPv4/IPv6 addresses seen across interfaces.
	Addresses []string

	// Manufacturer, Model, and Serial come from TXT records and may be
	// empty when the firmware does not advertise them.
	Manufacturer string
	Model        string
	Serial       string
}

// parseTXT splits key=value TXT records into a map. Keys are
// lowercased; records without an equals sign are skipped.
func parseTXT(records []string) map[string]string {
	m := make(map[string]string, len(records))
	for _, r := range records {
		key, value, ok := strings.Cut(r, "=")
		if !ok {
			continue
		}
		m[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return m
}
