package portfolio

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/smartsip/portfolio/date"
)

// dayCache is an http.RoundTripper that stores successful responses on
// disk. Today's date is part of the cache key, so every entry expires
// at midnight: quotes are fetched at most once per symbol per day.
type dayCache struct {
	next http.RoundTripper
}

func (c *dayCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := c.key(req)
	if resp, err := c.load(key, req); err == nil {
		return resp, nil
	}

	resp, err := c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("quote fetch: %s %s: %s", req.Method, req.URL.Host+req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		// Errors are not worth remembering until tomorrow.
		return resp, nil
	}
	if err := c.store(key, resp); err != nil {
		log.Printf("quote fetch: could not cache response: %v", err)
	}
	return resp, nil
}

func (c *dayCache) key(req *http.Request) string {
	sum := sha1.Sum([]byte(date.Today().String() + " " + req.Method + " " + req.URL.String()))
	return filepath.Join(os.TempDir(), fmt.Sprintf("%x", sum))
}

func (c *dayCache) load(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(key)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

func (c *dayCache) store(key string, resp *http.Response) error {
	// DumpResponse drains and restores the body, keeping resp readable.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(key, content, 0600)
}

// daily returns an HTTP client whose responses are cached until the end
// of the day.
func daily() *http.Client {
	return &http.Client{Transport: &dayCache{next: http.DefaultTransport}}
}

// jwget GETs addr and decodes the JSON response body into data.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %s%s: %s", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read response from %s: %w", resp.Request.URL.Host, err)
	}
	return json.Unmarshal(body, data)
}
