package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainMatches(t *testing.T) {
	tests := []struct {
		name         string
		cookieDomain string
		host         string
		want         bool
	}{
		{"exact host", "www.whatbeatsrock.com", "www.whatbeatsrock.com", true},
		{"leading dot", ".www.whatbeatsrock.com", "www.whatbeatsrock.com", true},
		{"parent domain", "whatbeatsrock.com", "www.whatbeatsrock.com", true},
		{"parent domain with dot", ".whatbeatsrock.com", "www.whatbeatsrock.com", true},
		{"sibling subdomain", "api.whatbeatsrock.com", "www.whatbeatsrock.com", false},
		{"child of host", "x.www.whatbeatsrock.com", "www.whatbeatsrock.com", false},
		{"suffix without dot boundary", "notwhatbeatsrock.com", "www.whatbeatsrock.com", false},
		{"other site", "example.com", "www.whatbeatsrock.com", false},
		{"cookie domain case", "WhatBeatsRock.COM", "www.whatbeatsrock.com", true},
		{"host case", ".whatbeatsrock.com", "WWW.WhatBeatsRock.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domainMatches(tt.cookieDomain, tt.host))
		})
	}
}

func TestSiteOf(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"www.whatbeatsrock.com", "whatbeatsrock.com"},
		{"whatbeatsrock.com", "whatbeatsrock.com"},
		{"game.example.co.uk", "example.co.uk"},
		{"com", "com"},
		{"localhost", "localhost"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, siteOf(tt.host), "host %q", tt.host)
	}
}
