package acquire

import (
	"net"
	"net/http"
	"time"
)

// HTTPConfig tunes the client used to fetch the workbook.
type HTTPConfig struct {
	// Total timeout for the request including reading the body. The
	// workbook is ~23MB, so this is generous.
	Timeout time.Duration `yaml:"timeout"`

	DialTimeout    time.Duration `yaml:"dialTimeout"`
	KeepAlive      time.Duration `yaml:"keepAlive"`
	TLSHandshake   time.Duration `yaml:"tlsHandshake"`
	ResponseHeader time.Duration `yaml:"responseHeader"`
	UserAgent      string        `yaml:"userAgent"`
}

// DefaultHTTPConfig returns the timeouts used when none are configured.
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		Timeout:        10 * time.Minute,
		DialTimeout:    10 * time.Second,
		KeepAlive:      30 * time.Second,
		TLSHandshake:   10 * time.Second,
		ResponseHeader: 30 * time.Second,
		UserAgent:      "retailsample/1.0",
	}
}

// ApplyDefaults fills zero fields from DefaultHTTPConfig.
func (c *HTTPConfig) ApplyDefaults() {
	d := DefaultHTTPConfig()
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = d.DialTimeout
	}
	if c.KeepAlive <= 0 {
		c.KeepAlive = d.KeepAlive
	}
	if c.TLSHandshake <= 0 {
		c.TLSHandshake = d.TLSHandshake
	}
	if c.ResponseHeader <= 0 {
		c.ResponseHeader = d.ResponseHeader
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
}

// NewHTTPClient builds an *http.Client from cfg.
func NewHTTPClient(cfg HTTPConfig) *http.Client {
	cfg.ApplyDefaults()
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
		ExpectContinueTimeout: time.Second,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
