package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gazetteerhq/gazetteer/gazetteer"
)

const (
	NameIPAPI = "ip-api.com"

	// DefaultIPAPIBaseURL is plain http: the free tier of ip-api.com
	// does not serve TLS.
	DefaultIPAPIBaseURL = "http://ip-api.com/json"

	DefaultLookupTimeout = 5 * time.Second
	DefaultHealthTimeout = 3 * time.Second

	// Known-good public address used by health probes.
	healthCheckAddress = "8.8.8.8"

	statusFail = "fail"
)

type ipapiResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Zip         string  `json:"zip"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	AS          string  `json:"as"`
	Query       string  `json:"query"`
}

type ipapiProvider struct {
	client        gazetteer.HTTPClient
	baseURL       string
	lookupTimeout time.Duration
	healthTimeout time.Duration
}

func (i ipapiProvider) Name() string {
	return NameIPAPI
}

func (i ipapiProvider) Lookup(ctx context.Context, addr gazetteer.Address) (gazetteer.Record, error) {
	record := gazetteer.Record{}

	ctx, cancel := context.WithTimeout(ctx, i.lookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.baseURL+"/"+addr.String(), nil)
	if err != nil {
		return record, gazetteer.NewUnavailableError(NameIPAPI,
			"unexpected error: "+err.Error(), err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return record, gazetteer.NewUnavailableError(NameIPAPI,
			"network error: "+err.Error(), err)
	}

	defer flushResponse(resp.Body)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return record, gazetteer.NewRateLimitedError(NameIPAPI)
	case resp.StatusCode >= http.StatusInternalServerError:
		return record, gazetteer.NewUnavailableError(NameIPAPI,
			fmt.Sprintf("HTTP %d", resp.StatusCode), nil)
	}

	jsonResponse := ipapiResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return record, gazetteer.NewUnavailableError(NameIPAPI,
			"invalid response: "+err.Error(), err)
	}

	if jsonResponse.Status == statusFail {
		return record, gazetteer.NewNotFoundError(addr.String())
	}

	return buildRecord(addr, jsonResponse), nil
}

func (i ipapiProvider) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, i.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		i.baseURL+"/"+healthCheckAddress, nil)
	if err != nil {
		return false
	}

	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return false
	}

	defer flushResponse(resp.Body)

	return resp.StatusCode == http.StatusOK
}

func buildRecord(addr gazetteer.Address, resp ipapiResponse) gazetteer.Record {
	asNumber, asName := splitAS(resp.AS)

	record := gazetteer.Record{
		IP:           resp.Query,
		Country:      resp.Country,
		CountryCode:  resp.CountryCode,
		Region:       resp.RegionName,
		RegionCode:   resp.Region,
		City:         resp.City,
		ZipCode:      resp.Zip,
		Latitude:     resp.Lat,
		Longitude:    resp.Lon,
		Timezone:     resp.Timezone,
		ISP:          resp.ISP,
		Organization: resp.Org,
		ASNumber:     asNumber,
		ASName:       asName,
	}

	if record.IP == "" {
		record.IP = addr.String()
	}

	return record
}

// splitAS splits the combined "AS15169 GOOGLE" field on the first
// whitespace run. An absent field yields two empty strings.
func splitAS(value string) (string, string) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return "", ""
	}

	return fields[0], strings.Join(fields[1:], " ")
}

// NewIPAPI returns a provider backed by ip-api.com. Zero values pick
// the defaults, so NewIPAPI(client, "", 0, 0) is the usual call.
func NewIPAPI(client gazetteer.HTTPClient,
	baseURL string,
	lookupTimeout, healthTimeout time.Duration) gazetteer.Provider {
	if baseURL == "" {
		baseURL = DefaultIPAPIBaseURL
	}

	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}

	if healthTimeout <= 0 {
		healthTimeout = DefaultHealthTimeout
	}

	return ipapiProvider{
		client:        client,
		baseURL:       strings.TrimRight(baseURL, "/"),
		lookupTimeout: lookupTimeout,
		healthTimeout: healthTimeout,
	}
}
