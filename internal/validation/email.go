package validation

import "strings"

// providerRules describes how a mail provider treats the local part.
type providerRules struct {
	canonicalDomain string
	tagSeparator    string
	ignoreDots      bool
}

var emailProviders = map[string]providerRules{
	"gmail.com":      {canonicalDomain: "gmail.com", tagSeparator: "+", ignoreDots: true},
	"googlemail.com": {canonicalDomain: "gmail.com", tagSeparator: "+", ignoreDots: true},

	"outlook.com": {tagSeparator: "+"},
	"hotmail.com": {tagSeparator: "+"},
	"live.com":    {tagSeparator: "+"},

	"icloud.com": {tagSeparator: "+"},
	"me.com":     {tagSeparator: "+"},

	"yahoo.com": {tagSeparator: "-"},
	"ymail.com": {tagSeparator: "-"},
}

// NormalizeEmail returns the canonical form of a syntactically valid address:
//
//   - the whole address is lower-cased
//   - known providers drop sub-address tags ("a+news@gmail.com" -> "a@gmail.com")
//   - Gmail ignores dots in the local part and googlemail.com maps to gmail.com
//
// Addresses without an "@" are returned unchanged.
func NormalizeEmail(address string) string {
	at := strings.LastIndex(address, "@")
	if at < 0 {
		return address
	}

	local := strings.ToLower(address[:at])
	domain := strings.ToLower(address[at+1:])

	if rules, ok := emailProviders[domain]; ok {
		if i := strings.Index(local, rules.tagSeparator); i > 0 {
			local = local[:i]
		}
		if rules.ignoreDots {
			local = strings.ReplaceAll(local, ".", "")
		}
		if rules.canonicalDomain != "" {
			domain = rules.canonicalDomain
		}
	}

	return local + "@" + domain
}
