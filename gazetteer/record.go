package gazetteer

// Record is the normalized result of a successful lookup. Providers
// produce it, callers own it; nothing mutates it after construction.
//
// Latitude and longitude default to 0.0 when the upstream omits them,
// which is indistinguishable from a genuine equator/prime-meridian
// fix. The upstream never reports partial coordinates in practice, so
// the ambiguity is carried over as-is.
type Record struct {
	IP           string  `json:"ip"`
	Country      string  `json:"country"`
	CountryCode  string  `json:"country_code"`
	Region       string  `json:"region"`
	RegionCode   string  `json:"region_code"`
	City         string  `json:"city"`
	ZipCode      string  `json:"zip_code,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Timezone     string  `json:"timezone"`
	ISP          string  `json:"isp"`
	Organization string  `json:"organization"`
	ASNumber     string  `json:"as_number"`
	ASName       string  `json:"as_name"`
}
