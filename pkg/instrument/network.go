package instrument

import (
	"github.com/scpikit/spd3303x-go/pkg/scpi"
)

// SetIP programs the static IP address (dotted decimal).
func (d *SPD3303X) SetIP(ip string) error {
	return d.write(scpi.IPCommand(ip))
}

// IP queries the configured IP address.
func (d *SPD3303X) IP() (string, error) {
	return d.query(scpi.IPQuery())
}

// SetMask programs the subnet mask (dotted decimal).
func (d *SPD3303X) SetMask(mask string) error {
	return d.write(scpi.MaskCommand(mask))
}

// Mask queries the configured subnet mask.
func (d *SPD3303X) Mask() (string, error) {
	return d.query(scpi.MaskQuery())
}

// SetGateway programs the default gateway (dotted decimal).
func (d *SPD3303X) SetGateway(gateway string) error {
	return d.write(scpi.GatewayCommand(gateway))
}

// Gateway queries the configured default gateway.
func (d *SPD3303X) Gateway() (string, error) {
	return d.query(scpi.GatewayQuery())
}

// SetDHCP switches DHCP on or off.
func (d *SPD3303X) SetDHCP(state scpi.DhcpState) error {
	return d.write(scpi.DHCPCommand(state))
}

// DHCP reports whether DHCP is enabled. The response format varies
// between firmware revisions, so the parse is lenient: ON or 1 means
// enabled, everything else disabled.
func (d *SPD3303X) DHCP() (bool, error) {
	resp, err := d.query(scpi.DHCPQuery())
	if err != nil {
		return false, err
	}
	return scpi.ParseOnOff(resp), nil
}

// NetworkConfig reads the full LAN configuration in a fixed order:
// IP, mask, gateway, DHCP. The four queries are not atomic.
func (d *SPD3303X) NetworkConfig() (scpi.NetworkConfig, error) {
	var config scpi.NetworkConfig

	ip, err := d.IP()
	if err != nil {
		return scpi.NetworkConfig{}, err
	}
	config.IP = ip

	mask, err := d.Mask()
	if err != nil {
		return scpi.NetworkConfig{}, err
	}
	config.Mask = mask

	gateway, err := d.Gateway()
	if err != nil {
		return scpi.NetworkConfig{}, err
	}
	config.Gateway = gateway

	dhcp, err := d.DHCP()
	if err != nil {
		return scpi.NetworkConfig{}, err
	}
	config.DHCP = dhcp

	return config, nil
}
