// Package nocodb is a typed client for the NocoDB REST API v2, the record
// store holding the portfolio tables. It deals only in raw table rows; the
// caller converts them into engine types with an explicit validation step.
package nocodb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
)

// pageSize is the number of rows fetched per page during auto-pagination.
const pageSize = 200

// patchBatchSize caps rows per bulk PATCH, a safe NocoDB batch size.
const patchBatchSize = 50

// Client talks to one NocoDB base. Tables maps a logical table name
// ("transactions") to the NocoDB table id used in the URL.
type Client struct {
	BaseURL string
	Token   string
	Tables  map[string]string
	HTTP    *http.Client
}

// New returns a client for the given base URL and API token.
func New(baseURL, token string, tables map[string]string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		Tables:  tables,
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) tableID(table string) (string, error) {
	id, ok := c.Tables[table]
	if !ok {
		return "", fmt.Errorf("nocodb: unknown table %q", table)
	}
	return id, nil
}

// do performs one request with the xc-token header and decodes the JSON
// response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("nocodb: encoding %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("xc-token", c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("nocodb: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		log.Printf("nocodb %s %s: %s", method, path, resp.Status)
		return fmt.Errorf("nocodb %d: %s", resp.StatusCode, text)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListParams select and order the rows of a List call.
type ListParams struct {
	Where  string
	Sort   string
	Limit  int
	Offset int
	Fields []string
}

func (p ListParams) query() string {
	v := url.Values{}
	if p.Where != "" {
		v.Set("where", p.Where)
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	if len(p.Fields) > 0 {
		f := ""
		for i, field := range p.Fields {
			if i > 0 {
				f += ","
			}
			f += field
		}
		v.Set("fields", f)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// PageInfo is the pagination block of a list response.
type PageInfo struct {
	TotalRows   int  `json:"totalRows"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	IsFirstPage bool `json:"isFirstPage"`
	IsLastPage  bool `json:"isLastPage"`
}

// ListResponse is one page of rows.
type ListResponse[T any] struct {
	List     []T      `json:"list"`
	PageInfo PageInfo `json:"pageInfo"`
}

// List fetches a single page of records from a table.
func List[T any](ctx context.Context, c *Client, table string, params ListParams) (ListResponse[T], error) {
	var page ListResponse[T]
	id, err := c.tableID(table)
	if err != nil {
		return page, err
	}
	path := "/api/v2/tables/" + id + "/records" + params.query()
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return page, err
	}
	return page, nil
}

// GetAll auto-paginates through every record of a table, fetching pages of
// pageSize sequentially until the store reports the last page. Limit and
// Offset of params are managed internally and must be left zero.
func GetAll[T any](ctx context.Context, c *Client, table string, params ListParams) ([]T, error) {
	if params.Limit != 0 || params.Offset != 0 {
		return nil, fmt.Errorf("nocodb: GetAll manages pagination itself, leave Limit/Offset zero")
	}
	var records []T
	for offset := 0; ; offset += pageSize {
		params.Limit = pageSize
		params.Offset = offset
		page, err := List[T](ctx, c, table, params)
		if err != nil {
			return nil, err
		}
		records = append(records, page.List...)
		if page.PageInfo.IsLastPage {
			return records, nil
		}
	}
}

// Create bulk-inserts records. Rows are sent in batches of patchBatchSize
// sequentially.
func Create[T any](ctx context.Context, c *Client, table string, records []T) error {
	if len(records) == 0 {
		return nil
	}
	id, err := c.tableID(table)
	if err != nil {
		return err
	}
	path := "/api/v2/tables/" + id + "/records"
	for i := 0; i < len(records); i += patchBatchSize {
		end := i + patchBatchSize
		if end > len(records) {
			end = len(records)
		}
		if err := c.do(ctx, http.MethodPost, path, records[i:end], nil); err != nil {
			return err
		}
	}
	return nil
}

// Patch bulk-updates records; each element must carry its Id. Rows are sent
// in batches of patchBatchSize sequentially.
func Patch[T any](ctx context.Context, c *Client, table string, records []T) error {
	if len(records) == 0 {
		return nil
	}
	id, err := c.tableID(table)
	if err != nil {
		return err
	}
	path := "/api/v2/tables/" + id + "/records"
	for i := 0; i < len(records); i += patchBatchSize {
		end := i + patchBatchSize
		if end > len(records) {
			end = len(records)
		}
		if err := c.do(ctx, http.MethodPatch, path, records[i:end], nil); err != nil {
			return err
		}
	}
	return nil
}
