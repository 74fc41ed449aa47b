// Package instrument provides the session facade for an SPD3303X-class
// dual/triple-channel bench power supply.
//
// A session owns one transport and serializes all exchanges over it:
// the instrument's SCPI endpoint is half duplex, so every operation is
// a complete write (and, for queries, a following read) under a single
// lock. Operations validate their arguments against the channel
// capability table before any bytes are sent; a guard failure never
// touches the wire.
//
//	application
//	    |
//	SPD3303X (this package)   guards, encode/decode, logging
//	    |
//	scpi                      command grammar and response parsing
//	    |
//	transport                 raw socket, TCP 5025
//
// The facade is safe for concurrent use. Composite reads
// (ChannelStatus, NetworkConfig) issue several exchanges in a fixed
// order and are not atomic with respect to other callers.
package instrument
