package swikly

import (
	"net/url"
	"strconv"
	"strings"
)

// With lists the relations to embed in a response, e.g.
// With{"deposit", "payment"}. It is sent as a comma-joined "with" query
// parameter, so With{"a", "b"} and With{"a,b"} are equivalent.
type With []string

// String returns the wire form of w.
func (w With) String() string {
	return strings.Join(w, ",")
}

// ListOptions holds pagination parameters. Nil values are not sent.
type ListOptions struct {
	Page    *int
	PerPage *int
}

// ListRequestsOptions filters RequestsService.List.
type ListRequestsOptions struct {
	ListOptions
	With   With
	Search string
	// IncludeLegacy is sent as "true" or "false" when non-nil.
	IncludeLegacy *bool
}

// ListReclaimsOptions filters ReclaimsService.List.
type ListReclaimsOptions struct {
	ListOptions
	With   With
	Status string
	// From and To bound the creation date, as YYYY-MM-DD.
	From string
	To   string
}

// query builds the query string of a request. Absent values are skipped.
type query url.Values

func (q query) intParam(key string, v *int) query {
	if v != nil {
		url.Values(q).Set(key, strconv.Itoa(*v))
	}
	return q
}

func (q query) strParam(key, v string) query {
	if v != "" {
		url.Values(q).Set(key, v)
	}
	return q
}

func (q query) boolParam(key string, v *bool) query {
	if v != nil {
		url.Values(q).Set(key, strconv.FormatBool(*v))
	}
	return q
}

func (q query) with(w With) query {
	return q.strParam("with", w.String())
}

func (q query) page(opts ListOptions) query {
	return q.intParam("page", opts.Page).intParam("per_page", opts.PerPage)
}

func (q query) values() url.Values {
	if len(q) == 0 {
		return nil
	}
	return url.Values(q)
}

// Object is a free-form JSON object, used for nested request parameters
// whose schema is owned by the API.
type Object = map[string]any

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
