package transport

import (
	"fmt"
	"net/http"
	"net/url"

	"levantd/pkg/domain"
)

// NewHTTPClient builds the HTTP client for one provider call. Proxy
// settings are applied to this client only, so concurrent requests with
// different proxy configurations stay isolated.
func NewHTTPClient(cfg domain.TransportConfig) *http.Client {
	if !cfg.UseProxy || cfg.ProxyPort == "" {
		return &http.Client{}
	}

	proxyURL, err := url.Parse(fmt.Sprintf("http://127.0.0.1:%s", cfg.ProxyPort))
	if err != nil {
		return &http.Client{}
	}

	return &http.Client{
		Transport: &http.Transport{Proxy: http.ProxyURL(proxyURL)},
	}
}
