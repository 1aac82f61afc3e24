package zakat

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

const forexAPIKeyEnv = "FOREX_RATE_API_KEY"

var forexAPIFlag = flag.String("forex-api-key", "", "ForexRateAPI key to use for fetching exchange rates.\n If missing it will be read from the environment variable \""+forexAPIKeyEnv+"\". You can get one at https://forexrateapi.com/")

func forexAPIKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *forexAPIFlag == "" {
		*forexAPIFlag = os.Getenv(forexAPIKeyEnv)
	}
	return *forexAPIFlag
}

// DefaultRatesTTL is the freshness window after which a cached rate table is
// discarded and refetched.
const DefaultRatesTTL = 24 * time.Hour

// diskCache implements a simple disk cache for HTTP responses, expiring
// after a fixed TTL.
type diskCache struct {
	base http.RoundTripper
	ttl  time.Duration
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s", req.Method, req.URL.String())
	key = fmt.Sprintf("zakat-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk if it is still within the TTL.
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	info, err := os.Stat(file)
	if err != nil {
		return nil, err
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, fmt.Errorf("cache entry %q is stale", key)
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// cached returns a client whose responses expire after the given TTL.
func cached(ttl time.Duration) *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{base: http.DefaultTransport, ttl: ttl}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// jpathObject extracts a JSON object at the given path.
// because jsonpath is never clear about whether it returns a list of one
// answer or a single answer, a single-element list is unwrapped first.
func jpathObject(jobj any, path string) (map[string]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	obj, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: not an object: %v", path, jval)
	}
	return obj, nil
}

// FetchRates fetches the live symbol list and exchange rates from
// forexrateapi.com, inverted so each rate is the reporting-currency
// multiplier for one unit of foreign currency.
func FetchRates(reporting string, ttl time.Duration) (RateTable, error) {
	table := NewRateTable(reporting)
	apiKey := forexAPIKey()
	if apiKey == "" {
		return table, fmt.Errorf("no ForexRateAPI key configured")
	}

	client := cached(ttl)

	var jsym any
	addr := "https://api.forexrateapi.com/v1/symbols?api_key=" + apiKey
	if err := jwget(client, addr, &jsym); err != nil {
		return table, fmt.Errorf("cannot fetch currency symbols: %w", err)
	}
	symbols, err := jpathObject(jsym, "$.symbols")
	if err != nil {
		return table, fmt.Errorf("cannot read currency symbols: %w", err)
	}
	for code, name := range symbols {
		if s, ok := name.(string); ok {
			table.Symbols[code] = s
		}
	}

	var jrates any
	addr = fmt.Sprintf("https://api.forexrateapi.com/v1/latest?api_key=%s&base=%s", apiKey, table.Reporting)
	if err := jwget(client, addr, &jrates); err != nil {
		return table, fmt.Errorf("cannot fetch exchange rates: %w", err)
	}
	rates, err := jpathObject(jrates, "$.rates")
	if err != nil {
		return table, fmt.Errorf("cannot read exchange rates: %w", err)
	}

	// The API quotes units of foreign currency per one unit of the base;
	// the table wants the inverse.
	one := decimal.NewFromInt(1)
	for code, rate := range rates {
		v, ok := rate.(float64)
		if !ok || v <= 0 {
			continue
		}
		table.Rates[code] = one.Div(decimal.NewFromFloat(v))
	}
	table.Rates[table.Reporting] = one
	return table, nil
}

// FetchRatesOrDefault fetches live rates, degrading to the fixed fallback
// table on any failure. The valuation engine is never aware a fallback
// happened: substitution occurs here, at the boundary.
func FetchRatesOrDefault(reporting string, ttl time.Duration) RateTable {
	table, err := FetchRates(reporting, ttl)
	if err != nil {
		log.Printf("using fallback rate table: %v", err)
		return DefaultRates(reporting)
	}
	return table
}
