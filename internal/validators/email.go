package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailValid checks RFC 5322 syntax only. Confirmation mail goes to this
// address, so booking handlers reject anything unparsable up front.
func IsEmailValid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// IsEmailDomainValid resolves the domain's MX (or A/AAAA) records. DNS is a
// network call; only the owner registration path pays for it.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
