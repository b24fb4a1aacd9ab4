package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// StartExternalSegment creates an external service segment for HTTP requests
// This should be used to instrument outgoing HTTP calls to partner services
func StartExternalSegment(ctx context.Context, request *http.Request) *newrelic.ExternalSegment {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil
	}

	return newrelic.StartExternalSegment(txn, request)
}

// InstrumentHTTPRequest wraps an HTTP request with New Relic external segment instrumentation
//
//	Usage: resp, err := InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
//	  return client.Do(req)
//	})
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, doFunc func() (*http.Response, error)) (*http.Response, error) {
	segment := StartExternalSegment(ctx, req)
	if segment != nil {
		defer segment.End()
	}

	resp, err := doFunc()

	if segment != nil && resp != nil {
		segment.Response = resp
	}

	return resp, err
}
