// Package discovery finds LXI instruments on the local network via
// mDNS/DNS-SD.
//
// LXI devices advertise the _lxi._tcp service; instruments that expose
// a raw SCPI socket additionally advertise _scpi-raw._tcp. TXT records
// carry free-form key=value metadata (Manufacturer, Model,
// SerialNumber on most firmwares). Both service types are browsed and
// results are aggregated by instance name, so an instrument visible on
// several interfaces appears once with all of its addresses.
package discovery
