// Package http provides batch adapters for HTTP operations. Fetching a
// batch of URLs is all-or-nothing: if any request fails, responses already
// collected are released and an error is returned.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/lguimbarda/min-batch/batch/core"
)

// Response contains HTTP response data.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// GetEach makes a GET request for every URL and returns the responses in
// order. Bodies are fully read and closed per request, so a Response needs
// no teardown. A nil client uses http.DefaultClient.
func GetEach(ctx context.Context, client *http.Client, urls []string, opts ...core.Option[Response]) ([]Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	return core.Try(urls, func(url string) (Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return Response{}, err
		}
		return roundTrip(client, req)
	}, opts...)
}

// PostJSONEach posts each document to the URL and returns the responses in
// order. A nil client uses http.DefaultClient.
func PostJSONEach(ctx context.Context, client *http.Client, url string, docs []string, opts ...core.Option[Response]) ([]Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	return core.Try(docs, func(doc string) (Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(doc))
		if err != nil {
			return Response{}, err
		}
		req.Header.Set("Content-Type", "application/json")
		return roundTrip(client, req)
	}, opts...)
}

// DoEach executes every request and returns the open responses in order.
// The caller owns the bodies on success. If any request fails, the bodies
// of responses already collected are closed. A nil client uses
// http.DefaultClient.
func DoEach(ctx context.Context, client *http.Client, reqs []*http.Request, opts ...core.Option[*http.Response]) ([]*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	opts = append([]core.Option[*http.Response]{core.WithDrop(closeBody)}, opts...)
	return core.Try(reqs, func(req *http.Request) (*http.Response, error) {
		return client.Do(req.WithContext(ctx))
	}, opts...)
}

func roundTrip(client *http.Client, req *http.Request) (Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}
	return Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

func closeBody(resp *http.Response) {
	resp.Body.Close()
}
