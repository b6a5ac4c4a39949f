package utils

import (
	"net/url"
	"regexp"
	"strings"
)

// DomainRegex is the regex for validating domains
// It allows for subdomains and requires at least one dot (e.g. example.com)
// It does not allow for IP addresses or localhost
var DomainRegex = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// IsValidDomain checks if the provided string is a valid domain name
func IsValidDomain(domain string) bool {
	if len(domain) > 253 {
		return false
	}
	return DomainRegex.MatchString(domain)
}

// IsValidOrigin checks that origin is a bare http(s) scheme+host with an
// optional port, as sent in the Origin header. localhost and 127.0.0.1 are
// accepted for local development.
func IsValidOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return false
	}
	if strings.HasSuffix(origin, "/") {
		return false
	}

	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || IsValidDomain(host)
}
