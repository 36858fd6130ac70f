package htmlmeta

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"
)

// ErrBlockedAddress is returned when a page resolves to an address the
// client refuses to connect to.
var ErrBlockedAddress = errors.New("address is not publicly routable")

// DefaultMaxRedirects bounds the redirects followed for one page.
const DefaultMaxRedirects = 5

// sharedAddressSpace is the carrier-grade NAT range, which netip does not
// classify as private.
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10") //nolint: gochecknoglobals

// HTTPClientOptions configures NewHTTPClient.
type HTTPClientOptions struct {
	// Timeout bounds a whole request, redirects included.
	Timeout time.Duration
	// MaxRedirects bounds followed redirects. Zero means DefaultMaxRedirects.
	MaxRedirects int
	// AllowPrivateAddresses turns the address guard off. Only meant for local
	// development against pages served on the same machine.
	AllowPrivateAddresses bool
}

// NewHTTPClient returns an http.Client for fetching user supplied pages. It
// only connects to publicly routable addresses, checked after DNS resolution
// on every dial, redirects included.
func NewHTTPClient(opts HTTPClientOptions) *http.Client {
	maxRedirects := opts.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = DefaultMaxRedirects
	}

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	if !opts.AllowPrivateAddresses {
		dialer.Control = guardDial
	}

	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint: forcetypeassert
	// a proxy would be dialled instead of the page, bypassing the guard
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
				return fmt.Errorf("refusing to follow redirect to %q", req.URL.Scheme)
			}

			return nil
		},
	}
}

func guardDial(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("could not split %s address %q: %w", network, address, err)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("could not parse address %q: %w", host, err)
	}
	if !PublicAddr(addr) {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, addr)
	}

	return nil
}

// PublicAddr reports whether addr is a publicly routable unicast address.
func PublicAddr(addr netip.Addr) bool {
	addr = addr.Unmap()

	return addr.IsValid() &&
		addr.IsGlobalUnicast() &&
		!addr.IsPrivate() &&
		!sharedAddressSpace.Contains(addr)
}
