package upstream

import "strings"

// logoServiceURL is the template for best-effort company logos.
const logoServiceURL = "https://logo.clearbit.com/"

// Logo derives a best-effort logo URL from a company name by guessing the
// company's domain. It performs no I/O; the URL may 404 and the frontend is
// expected to fall back. An empty company yields an empty URL.
func Logo(company string) string {
	if company == "" {
		return ""
	}
	domain := strings.ReplaceAll(strings.ToLower(company), " ", "") + ".com"
	return logoServiceURL + domain
}
