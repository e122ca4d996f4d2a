// Package crust describes the Crustdata screener API surface and builds
// dry-run requests against it. The catalog is the single source of truth:
// tool schemas, validation, and request construction are all driven from it.
package crust

import (
	"fmt"
	"strings"
)

// ParamType is the JSON type of a tool parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeArray   ParamType = "array"
)

// Placement says where a parameter lands on the wire.
type Placement string

const (
	InPath  Placement = "path"
	InQuery Placement = "query"
	InBody  Placement = "body"
)

// allowedMethods is the whitelist of HTTP methods for catalog endpoints.
var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

// Param describes one accepted parameter of an endpoint.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	In          Placement

	// Enum restricts string values (or each element of an array) to a fixed set.
	Enum []string
	// Min is a numeric floor, checked when MinSet is true.
	Min    float64
	MinSet bool
	// MaxLen caps string length in runes (0 = unlimited).
	MaxLen int
	// MinItems/MaxItems bound array length (0 = unbounded).
	MinItems int
	MaxItems int
	// RequireURL demands an explicit http:// or https:// scheme on each value.
	RequireURL bool

	// WireName is the key used on the wire when it differs from Name.
	WireName string
	// JoinComma renders a query array as a single comma-joined value
	// instead of a repeated key.
	JoinComma bool
	// FilterType folds the value into the search filter list under this type
	// instead of placing it in the body directly. Boolean parameters produce
	// a value-less filter entry when true.
	FilterType string
	// Default is applied when the caller omits the parameter.
	Default any
}

// Endpoint is the static descriptor of one API operation: method, path
// template, and parameter schema. Defined once at init, never mutated.
type Endpoint struct {
	Name        string
	Title       string
	Description string
	Method      string
	Path        string
	Params      []Param
	// RequireOneOf lists parameter names of which at least one must be
	// present (used by the screen/search endpoints, which reject empty
	// filter sets upstream).
	RequireOneOf []string
}

// Allowed value sets, as published by the Crustdata screener API.
var (
	SeniorityLevels = []string{
		"Owner / Partner", "CXO", "Vice President", "Director",
		"Experienced Manager", "Entry Level Manager", "Strategic",
		"Senior", "Entry Level", "In Training",
	}

	HeadcountBands = []string{
		"Self-employed", "1-10", "11-50", "51-200", "201-500",
		"501-1,000", "1,001-5,000", "5,001-10,000", "10,001+",
	}

	YearsBands = []string{
		"Less than 1 year", "1 to 2 years", "3 to 5 years",
		"6 to 10 years", "More than 10 years",
	}

	CompanyTypes = []string{
		"Public Company", "Privately Held", "Non Profit",
		"Educational Institution", "Government Agency",
		"Self-Employed", "Partnership",
	}

	WebSearchSources = []string{
		"news", "web", "scholar-articles", "scholar-articles-enriched",
		"scholar-author",
	}

	GeolocationCodes = []string{
		"US", "CA", "MX", "BR", "AR", "CL", "CO", "PE", "VE",
		"GB", "DE", "FR", "IT", "ES", "PT", "NL", "BE", "CH", "AT", "PL",
		"SE", "NO", "DK", "FI", "IE", "RU", "UA", "CZ", "GR", "TR", "RO", "HU",
		"JP", "CN", "KR", "IN", "ID", "TH", "VN", "MY", "SG", "PH", "TW", "HK",
		"SA", "AE", "IL", "EG",
		"AU", "NZ",
		"ZA", "NG", "KE",
	}
)

// Catalog holds every endpoint-backed tool. The ping tool is not listed:
// it has no endpoint, no validation, and no request to build.
var Catalog = []Endpoint{
	{
		Name:        "crustdata_enrich_company",
		Title:       "Enrich Company",
		Description: "Enrich a company by website domain: firmographics, headcount, funding, web traffic, and growth metrics.",
		Method:      "GET",
		Path:        "/screener/company",
		Params: []Param{
			{Name: "domain", Type: TypeString, Required: true, In: InQuery,
				Description: "Company website domain (e.g. 'hubspot.com')"},
			{Name: "fields", Type: TypeString, In: InQuery,
				Description: "Comma-separated list of fields to return (default: all)"},
		},
	},
	{
		Name:        "crustdata_screen_companies",
		Title:       "Screen Companies",
		Description: "Screen companies by quantitative filters: headcount, revenue, country, region, industry. Filters pass through unchanged.",
		Method:      "POST",
		Path:        "/screener/screen/",
		Params: []Param{
			{Name: "headcount_min", Type: TypeNumber, In: InBody, Min: 0, MinSet: true,
				Description: "Minimum current headcount"},
			{Name: "headcount_max", Type: TypeNumber, In: InBody, Min: 0, MinSet: true,
				Description: "Maximum current headcount"},
			{Name: "revenue_min", Type: TypeNumber, In: InBody, Min: 0, MinSet: true,
				Description: "Minimum estimated annual revenue in USD"},
			{Name: "revenue_max", Type: TypeNumber, In: InBody, Min: 0, MinSet: true,
				Description: "Maximum estimated annual revenue in USD"},
			{Name: "country", Type: TypeString, In: InBody,
				Description: "Headquarters country (e.g. 'USA')"},
			{Name: "region", Type: TypeString, In: InBody,
				Description: "Headquarters region (e.g. 'California, United States')"},
			{Name: "industry", Type: TypeString, In: InBody,
				Description: "Industry name (e.g. 'Software Development')"},
		},
		RequireOneOf: []string{
			"headcount_min", "headcount_max", "revenue_min", "revenue_max",
			"country", "region", "industry",
		},
	},
	{
		Name:        "crustdata_search_companies",
		Title:       "Search Companies",
		Description: "Search companies using structured filters combined with AND logic. Returns 25 results per page.",
		Method:      "POST",
		Path:        "/screener/company/search",
		Params: []Param{
			{Name: "name", Type: TypeString, In: InBody, FilterType: "COMPANY_NAME",
				Description: "Company name to match"},
			{Name: "industry", Type: TypeString, In: InBody, FilterType: "INDUSTRY",
				Description: "Industry name"},
			{Name: "region", Type: TypeString, In: InBody, FilterType: "REGION",
				Description: "Geographic region"},
			{Name: "headcount", Type: TypeString, In: InBody, FilterType: "COMPANY_HEADCOUNT",
				Enum: HeadcountBands, Description: "Headcount band"},
			{Name: "company_type", Type: TypeString, In: InBody, FilterType: "COMPANY_TYPE",
				Enum: CompanyTypes, Description: "Company type"},
			{Name: "keyword", Type: TypeString, In: InBody, FilterType: "KEYWORD",
				Description: "Free-text keyword"},
			{Name: "page", Type: TypeNumber, In: InBody, Min: 1, MinSet: true, Default: float64(1),
				Description: "Page number (25 results per page)"},
		},
		RequireOneOf: []string{
			"name", "industry", "region", "headcount", "company_type", "keyword",
		},
	},
	{
		Name:        "crustdata_get_company_people",
		Title:       "Get Company People",
		Description: "List people currently at a company, identified by website domain. Optionally restricted to a seniority level.",
		Method:      "GET",
		Path:        "/screener/company/people",
		Params: []Param{
			{Name: "domain", Type: TypeString, Required: true, In: InQuery,
				Description: "Company website domain (e.g. 'hubspot.com')"},
			{Name: "seniority", Type: TypeString, In: InQuery, Enum: SeniorityLevels,
				Description: "Restrict to one seniority level"},
			{Name: "page", Type: TypeNumber, In: InQuery, Min: 1, MinSet: true, Default: float64(1),
				Description: "Page number (25 results per page)"},
		},
	},
	{
		Name:        "crustdata_enrich_person",
		Title:       "Enrich Person",
		Description: "Enrich LinkedIn profiles with employment history, education, skills, and connections. Profiles not yet indexed are auto-enriched within 30-60 minutes.",
		Method:      "GET",
		Path:        "/screener/person/enrich",
		Params: []Param{
			{Name: "linkedin_urls", Type: TypeArray, Required: true, In: InQuery,
				MinItems: 1, MaxItems: 25, RequireURL: true,
				WireName: "linkedin_profile_url", JoinComma: true,
				Description: "LinkedIn profile URLs to enrich (max 25)"},
		},
	},
	{
		Name:        "crustdata_search_people",
		Title:       "Search People",
		Description: "Search professional profiles by company, title, seniority, industry, and more. Filters are combined with AND logic; 25 results per page.",
		Method:      "POST",
		Path:        "/screener/person/search",
		Params: []Param{
			{Name: "company", Type: TypeString, In: InBody, FilterType: "CURRENT_COMPANY",
				Description: "Current employer name"},
			{Name: "title", Type: TypeString, In: InBody, FilterType: "CURRENT_TITLE",
				Description: "Current job title"},
			{Name: "past_title", Type: TypeString, In: InBody, FilterType: "PAST_TITLE",
				Description: "Previous job title"},
			{Name: "past_company", Type: TypeString, In: InBody, FilterType: "PAST_COMPANY",
				Description: "Previous employer name"},
			{Name: "seniority", Type: TypeString, In: InBody, FilterType: "SENIORITY_LEVEL",
				Enum: SeniorityLevels, Description: "Seniority level"},
			{Name: "industry", Type: TypeString, In: InBody, FilterType: "INDUSTRY",
				Description: "Industry name"},
			{Name: "region", Type: TypeString, In: InBody, FilterType: "REGION",
				Description: "Geographic region"},
			{Name: "headcount", Type: TypeString, In: InBody, FilterType: "COMPANY_HEADCOUNT",
				Enum: HeadcountBands, Description: "Current company headcount band"},
			{Name: "years_at_current_company", Type: TypeString, In: InBody, FilterType: "YEARS_AT_CURRENT_COMPANY",
				Enum: YearsBands, Description: "Years at current company band"},
			{Name: "years_experience", Type: TypeString, In: InBody, FilterType: "YEARS_OF_EXPERIENCE",
				Enum: YearsBands, Description: "Total years of experience band"},
			{Name: "company_type", Type: TypeString, In: InBody, FilterType: "COMPANY_TYPE",
				Enum: CompanyTypes, Description: "Current company type"},
			{Name: "function", Type: TypeString, In: InBody, FilterType: "FUNCTION",
				Description: "Department or function name"},
			{Name: "keyword", Type: TypeString, In: InBody, FilterType: "KEYWORD",
				Description: "Free-text keyword"},
			{Name: "posted_on_social_media", Type: TypeBoolean, In: InBody, FilterType: "POSTED_ON_SOCIAL_MEDIA",
				Description: "Restrict to people who recently posted on social media"},
			{Name: "recently_changed_jobs", Type: TypeBoolean, In: InBody, FilterType: "RECENTLY_CHANGED_JOBS",
				Description: "Restrict to people who recently changed jobs"},
			{Name: "in_the_news", Type: TypeBoolean, In: InBody, FilterType: "IN_THE_NEWS",
				Description: "Restrict to people recently in the news"},
			{Name: "page", Type: TypeNumber, In: InBody, Min: 1, MinSet: true, Default: float64(1),
				Description: "Page number (25 results per page)"},
		},
		RequireOneOf: []string{
			"company", "title", "past_title", "past_company", "seniority",
			"industry", "region", "headcount", "years_at_current_company",
			"years_experience", "company_type", "function", "keyword",
			"posted_on_social_media", "recently_changed_jobs", "in_the_news",
		},
	},
	{
		Name:        "crustdata_get_social_posts",
		Title:       "Get Social Posts",
		Description: "Get recent LinkedIn posts and engagement metrics for a person. Fetched in real time; expect 30-60 second latency upstream.",
		Method:      "GET",
		Path:        "/screener/social_posts",
		Params: []Param{
			{Name: "person_linkedin_url", Type: TypeString, Required: true, In: InQuery,
				RequireURL: true, Description: "LinkedIn profile URL of the person"},
			{Name: "page", Type: TypeNumber, In: InQuery, Min: 1, MinSet: true, Default: float64(1),
				Description: "Page number (20 posts per page)"},
		},
	},
	{
		Name:        "crustdata_web_search",
		Title:       "Web Search",
		Description: "Search the web via the Crustdata SERP API. Returns titles, URLs, snippets, and positions; typically 5-15 results, no pagination.",
		Method:      "POST",
		Path:        "/screener/web-search",
		Params: []Param{
			{Name: "query", Type: TypeString, Required: true, In: InBody, MaxLen: 1000,
				Description: "Search query text"},
			{Name: "geolocation", Type: TypeString, In: InBody, Enum: GeolocationCodes,
				Description: "ISO 3166-1 alpha-2 country code (e.g. 'US', 'GB', 'DE')"},
			{Name: "sources", Type: TypeArray, In: InBody, Enum: WebSearchSources,
				Description: "Search sources: 'news', 'web', 'scholar-articles', 'scholar-articles-enriched', 'scholar-author'"},
			{Name: "site", Type: TypeString, In: InBody,
				Description: "Restrict results to a specific domain (e.g. 'github.com')"},
			{Name: "start_date", Type: TypeNumber, In: InBody, Min: 0, MinSet: true, WireName: "startDate",
				Description: "Unix timestamp for start date filter"},
			{Name: "end_date", Type: TypeNumber, In: InBody, Min: 0, MinSet: true, WireName: "endDate",
				Description: "Unix timestamp for end date filter"},
			{Name: "fetch_content", Type: TypeBoolean, In: InQuery,
				Description: "Also fetch full HTML content for each result URL"},
		},
	},
	{
		Name:        "crustdata_web_fetch",
		Title:       "Web Fetch",
		Description: "Fetch page title and HTML content for one or more URLs. Public pages only; max 10 URLs per request.",
		Method:      "POST",
		Path:        "/screener/web-fetch",
		Params: []Param{
			{Name: "urls", Type: TypeArray, Required: true, In: InBody,
				MinItems: 1, MaxItems: 10, RequireURL: true,
				Description: "URLs to fetch (must include http:// or https://)"},
		},
	},
}

// Lookup resolves a tool name to its endpoint descriptor.
func Lookup(name string) (*Endpoint, error) {
	for i := range Catalog {
		if Catalog[i].Name == name {
			return &Catalog[i], nil
		}
	}
	return nil, &UnknownToolError{Name: name}
}

// ValidateEndpoint sanity-checks a single endpoint descriptor.
// Run over the whole catalog by tests and at registration.
func ValidateEndpoint(ep Endpoint) error {
	if ep.Name == "" {
		return fmt.Errorf("endpoint has empty name")
	}
	if !allowedMethods[strings.ToUpper(ep.Method)] {
		return fmt.Errorf("endpoint %q has unsupported method %q", ep.Name, ep.Method)
	}
	if !strings.HasPrefix(ep.Path, "/screener/") {
		return fmt.Errorf("endpoint %q has invalid path %q (must start with /screener/)", ep.Name, ep.Path)
	}
	if strings.Contains(ep.Path, "..") {
		return fmt.Errorf("endpoint %q has invalid path %q (contains ..)", ep.Name, ep.Path)
	}

	names := make(map[string]bool, len(ep.Params))
	for _, p := range ep.Params {
		if p.Name == "" {
			return fmt.Errorf("endpoint %q has a parameter with empty name", ep.Name)
		}
		if names[p.Name] {
			return fmt.Errorf("endpoint %q has duplicate parameter %q", ep.Name, p.Name)
		}
		names[p.Name] = true
		switch p.Type {
		case TypeString, TypeNumber, TypeBoolean, TypeArray:
		default:
			return fmt.Errorf("endpoint %q parameter %q has unsupported type %q", ep.Name, p.Name, p.Type)
		}
		switch p.In {
		case InPath, InQuery, InBody:
		default:
			return fmt.Errorf("endpoint %q parameter %q has unsupported placement %q", ep.Name, p.Name, p.In)
		}
		if p.In == InPath && !strings.Contains(ep.Path, "{"+p.Name+"}") {
			return fmt.Errorf("endpoint %q path %q is missing segment for path parameter %q", ep.Name, ep.Path, p.Name)
		}
		if len(p.Enum) > 0 && p.Type != TypeString && p.Type != TypeArray {
			return fmt.Errorf("endpoint %q parameter %q has enum on non-string type %q", ep.Name, p.Name, p.Type)
		}
		if p.Type == TypeArray && p.In == InPath {
			return fmt.Errorf("endpoint %q parameter %q: arrays cannot be path parameters", ep.Name, p.Name)
		}
	}
	for _, n := range ep.RequireOneOf {
		if !names[n] {
			return fmt.Errorf("endpoint %q requires unknown parameter %q", ep.Name, n)
		}
	}
	return nil
}

// ValidateCatalog checks every catalog entry and that tool names are unique.
func ValidateCatalog(catalog []Endpoint) error {
	seen := make(map[string]bool, len(catalog))
	for _, ep := range catalog {
		if err := ValidateEndpoint(ep); err != nil {
			return err
		}
		if seen[ep.Name] {
			return fmt.Errorf("duplicate endpoint %q", ep.Name)
		}
		seen[ep.Name] = true
	}
	return nil
}
