package api

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
)

const (
	// Excerpts keep the first 297 characters of content plus an ellipsis.
	excerptLength = 297
	// Read time assumes 200 words per minute, rounded up.
	wordsPerMinute = 200

	// multipart parse buffer; larger files spill to temp files
	maxMultipartMemory = 32 << 20
)

// deriveExcerpt builds the short preview used when no explicit excerpt is
// supplied. Content at or under the cap is returned unchanged.
func deriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

// deriveReadTime estimates reading minutes as ceil(wordCount/200).
func deriveReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// optFormValue returns the first value for a multipart/urlencoded field, or
// nil when the field was absent (so updates can distinguish "unchanged").
func optFormValue(values url.Values, name string) *string {
	if vs, ok := values[name]; ok && len(vs) > 0 {
		return &vs[0]
	}
	return nil
}

// formList gathers a list field: repeated values and comma-separated entries
// both work. A nil return means the field was absent.
func formList(values url.Values, name string) []string {
	vs, ok := values[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func parseOptBool(raw *string, field string) (*bool, error) {
	if raw == nil {
		return nil, nil
	}
	b, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, errs.NewInvalidFieldError(field, "must be a boolean")
	}
	return &b, nil
}

// formFile fetches the first present file part among the given names, or nil
// when none was uploaded.
func formFile(r *http.Request, names ...string) (multipart.File, *multipart.FileHeader, error) {
	for _, name := range names {
		file, header, err := r.FormFile(name)
		if err == http.ErrMissingFile {
			continue
		}
		if err != nil {
			return nil, nil, errs.NewInvalidFieldError(name, "unreadable file part")
		}
		return file, header, nil
	}
	return nil, nil, nil
}

// validateURL rejects anything that is not a well-formed absolute http(s) URL.
func validateURL(raw, field string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewInvalidFieldError(field, "must be a well-formed URL")
	}
	return nil
}

// listOptionsFromQuery reads the common page/limit/search params.
func listOptionsFromQuery(r *http.Request) database.ListOptions {
	q := r.URL.Query()
	opts := database.ListOptions{
		Page:   database.DefaultPage,
		Limit:  database.DefaultLimit,
		Search: q.Get("search"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		opts.Limit = limit
	}
	return opts
}

// decodeJSONBody decodes a JSON request body into dst.
func decodeJSONBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewMalformedPayloadError("JSON", err)
	}
	return nil
}
