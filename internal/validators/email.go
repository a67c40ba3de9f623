package validators

import (
	"net/mail"
	"strings"
)

// LooksLikeEmail is a cheap syntactic check. Booking validation itself is
// presence-only; this is used to flag suspicious addresses in the log so the
// reviewer can follow up before confirming.
func LooksLikeEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 1 || at == len(addr.Address)-1 {
		return false
	}

	return strings.Contains(addr.Address[at+1:], ".")
}
