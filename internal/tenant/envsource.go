package tenant

import (
	"fmt"
	"strings"
)

// maxNumberedClients bounds the CLIENT{n}_* variable scan.
const maxNumberedClients = 20

// DefaultClientID names the tenant built from the unnumbered WP_API_*
// variables.
const DefaultClientID = "default"

// EnvTenants builds the environment-derived client list: the default tenant
// (if WP_API_URL is set) followed by client1..client20, skipping numbered
// groups whose URL variable is unset. The scan is cheap and runs fresh on
// every call; env tenants are never cached.
func EnvTenants(lookup func(string) string) []Record {
	var records []Record

	if url := lookup("WP_API_URL"); url != "" {
		records = append(records, Record{
			ID:          DefaultClientID,
			Name:        "Default",
			BaseURL:     url,
			Username:    lookup("WP_API_USERNAME"),
			AppPassword: lookup("WP_API_PASSWORD"),
			WCKey:       lookup("WC_CONSUMER_KEY"),
			WCSecret:    lookup("WC_CONSUMER_SECRET"),
			Source:      SourceEnv,
		})
	}

	for i := 1; i <= maxNumberedClients; i++ {
		prefix := fmt.Sprintf("CLIENT%d", i)
		url := lookup(prefix + "_WP_API_URL")
		if url == "" {
			continue
		}
		records = append(records, Record{
			ID:          strings.ToLower(prefix),
			Name:        prefix,
			BaseURL:     url,
			Username:    lookup(prefix + "_WP_API_USERNAME"),
			AppPassword: lookup(prefix + "_WP_API_PASSWORD"),
			WCKey:       lookup(prefix + "_WC_CONSUMER_KEY"),
			WCSecret:    lookup(prefix + "_WC_CONSUMER_SECRET"),
			Source:      SourceEnv,
		})
	}

	return records
}
