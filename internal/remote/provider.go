package remote

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SelectOptions controls filtering, ordering, and limiting for Select.
type SelectOptions struct {
	// Eq filters rows where column = value, one entry per column.
	Eq map[string]string

	// OrderBy names the column to sort on; empty means provider order.
	OrderBy string

	// Desc sorts descending when true.
	Desc bool

	// Limit caps the number of rows; 0 means no limit.
	Limit int
}

// Provider exposes entity CRUD over the remote REST API. Tables are
// addressed by name; rows are arbitrary JSON-codable values keyed by
// an "id" column.
type Provider struct {
	client *Client
}

// NewProvider creates a Provider over the given client.
func NewProvider(client *Client) *Provider {
	return &Provider{client: client}
}

// Insert creates a row in table and decodes the stored row into out
// (pass nil to discard it).
func (p *Provider) Insert(ctx context.Context, table string, row, out interface{}) error {
	if err := p.client.Post(ctx, "/rest/v1/"+table, row, out); err != nil {
		return fmt.Errorf("inserting into %s: %w", table, err)
	}
	return nil
}

// Update patches the row with the given id in table and decodes the
// updated row into out (pass nil to discard it).
func (p *Provider) Update(ctx context.Context, table, id string, patch, out interface{}) error {
	path := fmt.Sprintf("/rest/v1/%s?id=eq.%s", table, url.QueryEscape(id))
	if err := p.client.Patch(ctx, path, patch, out); err != nil {
		return fmt.Errorf("updating %s/%s: %w", table, id, err)
	}
	return nil
}

// Delete removes the row with the given id from table.
func (p *Provider) Delete(ctx context.Context, table, id string) error {
	path := fmt.Sprintf("/rest/v1/%s?id=eq.%s", table, url.QueryEscape(id))
	if err := p.client.Delete(ctx, path); err != nil {
		return fmt.Errorf("deleting %s/%s: %w", table, id, err)
	}
	return nil
}

// Select retrieves rows from table matching opts, decoding the result
// array into out.
func (p *Provider) Select(ctx context.Context, table string, opts SelectOptions, out interface{}) error {
	path := "/rest/v1/" + table + selectQuery(opts)
	if err := p.client.Get(ctx, path, out); err != nil {
		return fmt.Errorf("selecting from %s: %w", table, err)
	}
	return nil
}

// selectQuery encodes SelectOptions as a provider query string.
func selectQuery(opts SelectOptions) string {
	params := make([]string, 0, len(opts.Eq)+2)
	for col, val := range opts.Eq {
		params = append(params, url.QueryEscape(col)+"=eq."+url.QueryEscape(val))
	}
	if opts.OrderBy != "" {
		order := url.QueryEscape(opts.OrderBy)
		if opts.Desc {
			order += ".desc"
		} else {
			order += ".asc"
		}
		params = append(params, "order="+order)
	}
	if opts.Limit > 0 {
		params = append(params, "limit="+strconv.Itoa(opts.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + strings.Join(params, "&")
}
