package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the address's domain looks deliverable:
// it must publish MX records, or failing that resolve as a host. Used at
// registration so obviously mistyped domains fail fast.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// some small domains publish no MX and receive mail on the A record
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
