package redash

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

// Redash serves the login form back on failed credentials; the page title is
// the only reliable distinction between the two outcomes.
const (
	successLoginTitle = "Redash"
	failedLoginTitle  = "Login to Redash"
)

const defaultTimeout = 30 * time.Second

type TLSConfig struct {
	CertFile string
	KeyFile  string
	CAFile   string
}

type Config struct {
	BaseURL  string
	Email    string
	Password string
	Timeout  time.Duration
	TLS      *TLSConfig
}

// Client talks to one Redash deployment over its HTTP surface. It holds a
// single lazily established cookie session; the first call on the instance
// logs in and every later call reuses that session.
type Client struct {
	cfg  Config
	http *http.Client

	mu       sync.Mutex
	loggedIn bool
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("redash base url is required")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	transport := http.DefaultTransport
	if cfg.TLS != nil {
		tlsConfig, err := buildTLSConfig(cfg.TLS)
		if err != nil {
			return nil, err
		}
		transport = &http.Transport{TLSClientConfig: tlsConfig}
	}

	return &Client{
		cfg: cfg,
		http: &http.Client{
			Jar:       jar,
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}, nil
}

func buildTLSConfig(cfg *TLSConfig) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("load client certificate: %w", err)
	}

	tlsConfig := &tls.Config{Certificates: []tls.Certificate{cert}}

	if cfg.CAFile != "" {
		caPEM, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("read ca file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("no certificates found in %s", cfg.CAFile)
		}
		tlsConfig.RootCAs = pool
	}

	return tlsConfig, nil
}

func (c *Client) ensureSession(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loggedIn {
		return nil
	}
	if err := c.login(ctx); err != nil {
		return err
	}
	c.loggedIn = true
	return nil
}

// login simulates the browser login form. The session cookie lands in the
// jar; success and failure both answer 200 with an HTML page, told apart by
// the page title.
func (c *Client) login(ctx context.Context) error {
	form := url.Values{
		"email":    {c.cfg.Email},
		"password": {c.cfg.Password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return &domain.UpstreamError{Op: "login", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rs, err := c.http.Do(req)
	if err != nil {
		return &domain.UpstreamError{Op: "login", Err: err}
	}
	defer rs.Body.Close()

	switch pageTitle(rs.Body) {
	case successLoginTitle:
		logrus.WithField("base_url", c.cfg.BaseURL).Debug("redash session established")
		return nil
	case failedLoginTitle:
		return domain.ErrInvalidCredentials
	default:
		return &domain.UpstreamError{
			Op:         "login",
			StatusCode: rs.StatusCode,
			Err:        errors.New("unrecognized login response"),
		}
	}
}

func pageTitle(r io.Reader) string {
	doc, err := html.Parse(r)
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = n.FirstChild.Data
			return
		}
		for child := n.FirstChild; child != nil && title == ""; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return strings.TrimSpace(title)
}

// doJSON issues one authenticated API request. Non-2xx answers become
// *UpstreamError carrying the upstream message; an empty body with a nil
// decode target is fine.
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, payload, out any) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &domain.UpstreamError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rs, err := c.http.Do(req)
	if err != nil {
		return &domain.UpstreamError{Op: op, Err: err}
	}
	defer rs.Body.Close()

	data, err := io.ReadAll(rs.Body)
	if err != nil {
		return &domain.UpstreamError{Op: op, StatusCode: rs.StatusCode, Err: err}
	}

	if rs.StatusCode >= 300 {
		return &domain.UpstreamError{
			Op:         op,
			StatusCode: rs.StatusCode,
			Err:        errors.New(upstreamMessage(data)),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &domain.UpstreamError{Op: op, StatusCode: rs.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}

	return nil
}

func upstreamMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	if len(body) > 0 {
		return string(body)
	}
	return "request failed"
}
