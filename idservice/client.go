// astron.nl/go/sip - LOFAR LTA Submission Information Packages in Go
// Copyright (C) 2026  ASTRON (Netherlands Institute for Radio Astronomy)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package idservice talks to the LTA catalog over XML-RPC.  The catalog
// hands out the unique identifiers used in SIPs and stores the SIPs of
// archived data products.
//
// A Client implements sip.IDIssuer, so it can be passed wherever new
// identifiers are needed:
//
//	c, err := idservice.New(idservice.Options{URL: url})
//	...
//	id, err := sip.NewIdentifier(ctx, c, "SAS", "L123456")
package idservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kolo/xmlrpc"

	"astron.nl/go/sip"
	"astron.nl/go/sip/internal/logging"
)

var (
	// ErrNotCreated is returned when the catalog refuses to create an
	// identifier.
	ErrNotCreated = errors.New("identifier could not be created")

	// ErrAlreadyExists is returned by CreateID when the label is in use.
	ErrAlreadyExists = sip.ErrIDExists

	// ErrNotFound is returned by LookupID when the label is unknown.
	ErrNotFound = sip.ErrIDNotFound
)

// Options configures a Client.
type Options struct {
	// URL is the address of the XML-RPC endpoint, including the login
	// details.  See URLFromCredentials.
	URL string

	// Transport is used for the HTTP requests.  If nil,
	// http.DefaultTransport is used.
	Transport http.RoundTripper

	// Cache, if set, remembers labelled identifiers.
	Cache *Cache

	Logger *slog.Logger
}

// Client is a connection to the LTA catalog.
type Client struct {
	rpc    *xmlrpc.Client
	cache  *Cache
	logger *slog.Logger
}

// URLFromCredentials returns the endpoint URL for the given login.  If host
// is empty, the production catalog is used.
func URLFromCredentials(user, password, host string) string {
	if host == "" {
		host = DefaultHost
	}
	u := url.URL{
		Scheme: "https",
		User:   url.UserPassword(user, password),
		Host:   host,
	}
	return u.String()
}

// DefaultHost is the address of the production catalog.
const DefaultHost = "lofar-ingest.target.rug.nl:9443"

// New returns a client for the catalog at opts.URL.
func New(opts Options) (*Client, error) {
	if opts.URL == "" {
		return nil, errors.New("idservice: no URL given")
	}
	rpc, err := xmlrpc.NewClient(opts.URL, opts.Transport)
	if err != nil {
		return nil, fmt.Errorf("idservice: %w", err)
	}
	return &Client{
		rpc:    rpc,
		cache:  opts.Cache,
		logger: logging.NewComponentLogger(opts.Logger, "idservice"),
	}, nil
}

// Close releases the connection.  The cache is not closed.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// call performs one XML-RPC round trip.  The xmlrpc package has no context
// support, so a canceled call returns early while the request finishes in
// the background.
func (c *Client) call(ctx context.Context, method string, args []any) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		reply map[string]any
		err   error
	}
	done := make(chan result, 1)
	go func() {
		var reply map[string]any
		err := c.rpc.Call(method, args, &reply)
		done <- result{reply, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("%s: %w", method, r.err)
		}
		c.logger.Debug("catalog call", logging.String("method", method))
		return r.reply, nil
	}
}

// uniqueID asks the catalog for an identifier.  If label is non-empty, the
// catalog returns the identifier already registered for the label, if any.
func (c *Client) uniqueID(ctx context.Context, source, label string) (id string, isNew bool, err error) {
	var reply map[string]any
	if label == "" {
		reply, err = c.call(ctx, "GetUniqueID", []any{source})
	} else {
		reply, err = c.call(ctx, "GetUniqueIDForLabel", []any{source, label})
	}
	if err != nil {
		return "", false, err
	}

	if result, _ := reply["result"].(string); result != "ok" {
		return "", false, &ServiceError{Message: fmt.Sprint(reply["error"])}
	}
	isNew, _ = reply["is_new"].(bool)
	if reply["id"] == nil {
		return "", false, &ServiceError{Message: "no identifier in reply"}
	}
	return formatID(reply["id"]), isNew, nil
}

// formatID renders an identifier from a reply as a decimal integer.  The
// catalog sends identifiers as <int>, but some versions use <double>.
func formatID(v any) string {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<63 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// ServiceError is an error reported by the catalog.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return "catalog error: " + e.Message
}

// CreateID implements the sip.IDIssuer interface.
func (c *Client) CreateID(ctx context.Context, source, label string) (string, error) {
	if label != "" && c.cache != nil {
		unlock, err := c.cache.lock(ctx)
		if err != nil {
			return "", err
		}
		defer unlock()

		if _, found, err := c.cache.Lookup(ctx, source, label); err != nil {
			return "", err
		} else if found {
			return "", fmt.Errorf("label %q: %w", label, ErrAlreadyExists)
		}
	}

	id, isNew, err := c.uniqueID(ctx, source, label)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotCreated, err)
	}
	if !isNew {
		c.remember(ctx, source, label, id)
		return "", fmt.Errorf("label %q: %w", label, ErrAlreadyExists)
	}
	c.remember(ctx, source, label, id)

	c.logger.Info("identifier created",
		logging.String("source", source),
		logging.String("label", label),
		logging.String("identifier", id))
	return id, nil
}

// LookupID implements the sip.IDIssuer interface.
func (c *Client) LookupID(ctx context.Context, source, label string) (string, error) {
	if c.cache != nil {
		id, found, err := c.cache.Lookup(ctx, source, label)
		if err != nil {
			return "", err
		}
		if found {
			return id, nil
		}
	}

	// GetUniqueIDForLabel creates the identifier if the label is unknown.
	// The catalog has no pure lookup.
	id, isNew, err := c.uniqueID(ctx, source, label)
	if err != nil {
		return "", fmt.Errorf("identifier for label %q could not be retrieved: %w", label, err)
	}
	if isNew {
		return "", fmt.Errorf("label %q: %w", label, ErrNotFound)
	}
	c.remember(ctx, source, label, id)
	return id, nil
}

func (c *Client) remember(ctx context.Context, source, label, id string) {
	if c.cache == nil || label == "" {
		return
	}
	if err := c.cache.Store(ctx, source, label, id); err != nil {
		c.logger.Warn("cannot cache identifier",
			logging.String("label", label), logging.Error(err))
	}
}

// GetSIP returns the XML of the SIP stored for a data product.
func (c *Client) GetSIP(ctx context.Context, project, dataProductID string) ([]byte, error) {
	reply, err := c.call(ctx, "GetSip", []any{project, dataProductID})
	if err != nil {
		return nil, err
	}
	body, ok := reply["sip"].(string)
	if !ok || body == "" {
		return nil, fmt.Errorf("no SIP for data product %s in project %s", dataProductID, project)
	}
	return []byte(body), nil
}

// FetchDocument returns the decoded SIP stored for a data product.  This
// is used to add related data products together with their history.
func (c *Client) FetchDocument(ctx context.Context, project, dataProductID string) (*sip.Document, error) {
	body, err := c.GetSIP(ctx, project, dataProductID)
	if err != nil {
		return nil, err
	}
	doc, err := sip.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("SIP of data product %s: %w", dataProductID, err)
	}
	return doc, nil
}

// DataProductIDs returns the identifiers of the data products created by
// the observation or pipeline with the given SAS id.
func (c *Client) DataProductIDs(ctx context.Context, project, sasID string) ([]string, error) {
	reply, err := c.call(ctx, "GetDataProductIDS", []any{project, sasID})
	if err != nil {
		return nil, err
	}
	list, _ := reply["ids"].([]any)
	ids := make([]string, 0, len(list))
	for _, id := range list {
		ids = append(ids, formatID(id))
	}
	return ids, nil
}
