package network

import "fmt"

// RPCConfig holds the connection parameters for a JSON-RPC endpoint.
type RPCConfig struct {
	URL      string `json:"url"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// ResolveConfig merges endpoint configuration from two sources with decreasing priority:
//  1. Explicit values (CLI flags or config file)
//  2. Environment variables <prefix>_URL, <prefix>_USER, <prefix>_PASS
//
// The URL must be set by one of them.
func ResolveConfig(explicit *RPCConfig, env map[string]string, prefix string) (*RPCConfig, error) {
	var result RPCConfig

	if env != nil {
		if v, ok := env[prefix+"_URL"]; ok && v != "" {
			result.URL = v
		}
		if v, ok := env[prefix+"_USER"]; ok && v != "" {
			result.User = v
		}
		if v, ok := env[prefix+"_PASS"]; ok && v != "" {
			result.Password = v
		}
	}

	if explicit != nil {
		if explicit.URL != "" {
			result.URL = explicit.URL
		}
		if explicit.User != "" {
			result.User = explicit.User
		}
		if explicit.Password != "" {
			result.Password = explicit.Password
		}
	}

	if result.URL == "" {
		return nil, fmt.Errorf("%w: set the config key or %s_URL", ErrMissingURL, prefix)
	}
	return &result, nil
}
