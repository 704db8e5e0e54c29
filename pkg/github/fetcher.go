package github

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"

	"github.com/skynet2/botbot/pkg/common"
)

var errMissingToken = errors.New("GITHUB_PERSONAL_ACCESS_TOKEN is not configured")

type Fetcher struct {
	cl           *req.Client
	token        string
	ignoreStatus bool
}

// NewFetcher creates a raw file fetcher. With ignoreStatus the body of an
// error response is returned as file content.
func NewFetcher(
	token string,
	ignoreStatus bool,
	client *req.Client,
) *Fetcher {
	return &Fetcher{
		cl:           client,
		token:        token,
		ignoreStatus: ignoreStatus,
	}
}

// Fetch downloads the raw content of ref. Nothing is cached.
func (f *Fetcher) Fetch(ctx context.Context, ref FileRef) (string, error) {
	if f.token == "" {
		return "", common.Mark(errMissingToken, common.ErrFetch)
	}

	url := fmt.Sprintf("%s/%s/%s/%s/%s", rawContentURL, ref.Owner, ref.Repo, ref.Branch, ref.Path)

	resp, err := f.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(f.token).
		Get(url)
	if err != nil {
		return "", common.Mark(errors.Wrapf(err, "fetch %s", ref.Path), common.ErrFetch)
	}

	if resp.IsErrorState() {
		if !f.ignoreStatus {
			return "", common.Mark(
				errors.Newf("fetch %s: unexpected status code %v", ref.Path, resp.StatusCode),
				common.ErrFetch,
			)
		}

		zerolog.Ctx(ctx).Warn().
			Int("status_code", resp.StatusCode).
			Str("path", ref.Path).
			Msg("using error response body as file content")
	}

	return resp.String(), nil
}
