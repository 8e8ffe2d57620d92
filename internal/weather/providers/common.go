package providers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/i474232898/farmerbuddy/internal/common"
)

// HTTPClientConfig bundles the outbound client settings shared by providers.
type HTTPClientConfig struct {
	Client  *http.Client
	BaseURL string
}

// getJSON executes one GET and decodes a 200 body into out. There is no retry
// and no circuit breaker; the caller decides what a failure means.
func getJSON(ctx context.Context, rc *resty.Client, path string, params map[string]string, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := rc.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err := common.CheckResponse(resp, err); err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return common.Shape("decode %s: %v", path, err)
	}
	return nil
}
