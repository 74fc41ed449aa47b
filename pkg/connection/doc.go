// Package connection maintains a long-lived instrument session for
// unattended use, reconnecting with exponential backoff when the link
// drops.
//
// The Manager does not own a transport itself; it drives a caller
// supplied ConnectFunc that dials and installs a fresh session. This
// keeps the package independent of how the application stores its
// session handle.
package connection
