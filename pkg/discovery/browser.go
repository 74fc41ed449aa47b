package discovery

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/enbility/zeroconf/v3"
)

// BrowseTimeout is the default browse duration when the caller's
// context has no deadline.
const BrowseTimeout = 10 * time.Second

// BrowserConfig configures browsing behavior.
type BrowserConfig struct {
	// Interface restricts browsing to one network interface by name.
	// Empty means all interfaces.
	Interface string

	// ServiceTypes overrides the browsed service types. Empty means
	// both _scpi-raw._tcp and _lxi._tcp.
	ServiceTypes []string
}

// Browser browses for LXI instruments via mDNS.
type Browser struct {
	config BrowserConfig
}

// NewBrowser creates a browser.
func NewBrowser(config BrowserConfig) *Browser {
	if len(config.ServiceTypes) == 0 {
		config.ServiceTypes = []string{ServiceTypeSCPIRaw, ServiceTypeLXI}
	}
	return &Browser{config: config}
}

// Browse searches for instruments until ctx ends. Results are
// aggregated by instance name: addresses seen on multiple interfaces
// or service types merge into one entry, and an entry is emitted only
// on first sight. The channel closes when browsing stops.
func (b *Browser) Browse(ctx context.Context) (<-chan *Instrument, error) {
	out := make(chan *Instrument)

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	opts := b.browserOptions()

	go func() {
		defer close(out)

		instruments := make(map[string]*Instrument)

		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				inst := entryToInstrument(entry)

				existing, found := instruments[inst.InstanceName]
				if found {
					existing.Addresses = mergeAddresses(existing.Addresses, inst.Addresses)
					continue
				}

				instruments[inst.InstanceName] = inst
				select {
				case out <- inst:
				case <-ctx.Done():
					return
				}

			case entry, ok := <-removed:
				if !ok {
					continue
				}
				if existing, found := instruments[entry.Instance]; found {
					existing.Addresses = removeAddresses(existing.Addresses, entry)
					if len(existing.Addresses) == 0 {
						delete(instruments, entry.Instance)
					}
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	// Each service type browses into the shared channels.
	for _, serviceType := range b.config.ServiceTypes {
		go func(st string) {
			_ = zeroconf.Browse(ctx, st, Domain, entries, removed, opts...)
		}(serviceType)
	}

	return out, nil
}

// FindByModel returns the first instrument whose advertised model (or
// instance name, as a fallback) contains the given substring,
// case-insensitively.
func (b *Browser) FindByModel(ctx context.Context, model string) (*Instrument, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, BrowseTimeout)
		defer cancel()
	}

	results, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(model)
	for {
		select {
		case inst, ok := <-results:
			if !ok {
				return nil, ErrNotFound
			}
			if strings.Contains(strings.ToLower(inst.Model), needle) ||
				strings.Contains(strings.ToLower(inst.InstanceName), needle) {
				return inst, nil
			}
		case <-ctx.Done():
			return nil, ErrNotFound
		}
	}
}

func (b *Browser) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption
	if b.config.Interface != "" {
		iface, err := net.InterfaceByName(b.config.Interface)
		if err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}
	return opts
}

// entryToInstrument converts a zeroconf entry. TXT metadata is best
// effort; an instrument with no TXT records still yields a usable
// entry.
func entryToInstrument(entry *zeroconf.ServiceEntry) *Instrument {
	txt := parseTXT(entry.Text)

	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	return &Instrument{
		InstanceName: entry.Instance,
		Host:         entry.HostName,
		Port:         uint16(entry.Port),
		Addresses:    addrs,
		Manufacturer: txt["manufacturer"],
		Model:        txt["model"],
		Serial:       txt["serialnumber"],
	}
}

// mergeAddresses adds new addresses to the existing list without
// duplicates.
func mergeAddresses(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}
	for _, addr := range incoming {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses drops the addresses carried by a removal entry.
func removeAddresses(addresses []string, entry *zeroconf.ServiceEntry) []string {
	gone := make(map[string]bool, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		gone[ip.String()] = true
	}
	for _, ip := range entry.AddrIPv6 {
		gone[ip.String()] = true
	}

	kept := addresses[:0]
	for _, addr := range addresses {
		if !gone[addr] {
			kept = append(kept, addr)
		}
	}
	return kept
}
