package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid rejects salon and staff signups whose email domain does
// not resolve at all. A DNS check, not a deliverability guarantee.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// No MX is still acceptable when the domain itself resolves.
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
