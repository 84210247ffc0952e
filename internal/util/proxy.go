package util

import (
	"net/http"
	"net/url"
)

// NewProxyFunc builds the proxy resolver for the drafting providers' HTTP
// clients. Explicit proxy URLs from the LLM configuration take precedence;
// with none set, resolution falls back to the standard environment
// variables.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
