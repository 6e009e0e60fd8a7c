package auth

import (
	"context"
	"strings"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all" // register every supported browser store
	"golang.org/x/net/publicsuffix"

	"wbrcli/internal/pkg/logx"
)

// KookySource reads cookies from the browsers installed for the current OS user.
type KookySource struct{}

// Cookies implements CookieSource. Stores that fail to open are ignored as long as at
// least one cookie could be read from another store.
func (KookySource) Cookies(ctx context.Context, domain, name string) ([]Cookie, error) {
	found, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.DomainHasSuffix(siteOf(domain)), kooky.Name(name))
	if err != nil && len(found) == 0 {
		return nil, err
	}
	if err != nil {
		logx.Debug("Some browser cookie stores could not be read", "error", err.Error())
	}

	out := make([]Cookie, 0, len(found))
	for _, c := range found {
		if c == nil || !domainMatches(c.Domain, domain) {
			continue
		}
		out = append(out, Cookie{Domain: c.Domain, Name: c.Name, Value: c.Value})
	}
	return out, nil
}

// siteOf returns the registrable domain of host, or host itself when it has none
// (an IP address, localhost or a bare public suffix).
func siteOf(host string) string {
	site, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return site
}

// domainMatches reports whether a cookie set for cookieDomain is sent to host.
func domainMatches(cookieDomain, host string) bool {
	d := strings.ToLower(strings.TrimPrefix(cookieDomain, "."))
	host = strings.ToLower(host)
	return d == host || strings.HasSuffix(host, "."+d)
}
