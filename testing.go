package formfill

import (
	"context"
	"log/slog"
	"sync"
)

// stubGateway is a canned-response gateway for tests. It records the last
// request so prompt content can be asserted on. Safe for concurrent use so
// batch tests can share one instance.
type stubGateway struct {
	mu       sync.Mutex
	response string
	err      error
	lastReq  GenerateRequest
	calls    int
}

func (g *stubGateway) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	g.mu.Lock()
	g.lastReq = req
	g.calls++
	response, err := g.response, g.err
	g.mu.Unlock()
	if cerr := ctx.Err(); cerr != nil {
		return "", &ServiceError{Model: req.Model, Err: cerr}
	}
	if err != nil {
		return "", err
	}
	return response, nil
}

// NewForTesting creates an Extractor whose gateway always returns the given
// raw response, so pipelines can be exercised without a real client.
func NewForTesting(response string) *Extractor {
	return NewWithLogger(&stubGateway{response: response}, nil, slog.Default())
}
