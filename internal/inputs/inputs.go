// Package inputs locates cached puzzle inputs and downloads missing ones from
// adventofcode.com using the player's session cookie.
package inputs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/logging"
	"golang.org/x/net/publicsuffix"
)

// maxInputSize bounds a downloaded input; real inputs are well under 100KiB.
const maxInputSize = 4 << 20

// Path returns the cache location of an input: <dir>/<year>/dayNN.txt.
func Path(dir string, year, day int) string {
	return filepath.Join(dir, fmt.Sprint(year), fmt.Sprintf("day%02d.txt", day))
}

// Read loads an input file, mapping a missing file to a not-found error.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFoundError(errors.ErrCodeFileNotFound, "input file does not exist").
				WithLocation(path, 0, 0)
		}
		return "", errors.NewIOError(errors.ErrCodeFileNotFound, "cannot read input", err).
			WithLocation(path, 0, 0)
	}
	return string(data), nil
}

// Fetcher downloads puzzle inputs.
type Fetcher struct {
	BaseURL string
	Session string
	Client  *http.Client
	Logger  logging.Logger
}

// NewFetcher returns a Fetcher whose client carries the session cookie for
// baseURL in a cookie jar.
func NewFetcher(baseURL, session string, logger logging.Logger) (*Fetcher, error) {
	if session == "" {
		return nil, errors.NewConfigError(errors.ErrCodeMissingSession,
			"no session cookie configured; set AOC_SESSION or inputs.session")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("invalid base URL %q", baseURL))
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeInternalError, "cannot create cookie jar", err)
	}
	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: session, Path: "/"}})

	if logger == nil {
		logger = logging.NewNop()
	}
	return &Fetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Session: session,
		Client:  &http.Client{Jar: jar, Timeout: 30 * time.Second},
		Logger:  logger.WithComponent("fetcher"),
	}, nil
}

// Fetch downloads the input of one puzzle.
func (f *Fetcher) Fetch(ctx context.Context, year, day int) (string, error) {
	endpoint := fmt.Sprintf("%s/%d/day/%d/input", f.BaseURL, year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errors.NewInternalError(errors.ErrCodeInternalError, "cannot build request", err)
	}
	req.Header.Set("User-Agent", "github.com/conneroisu/adventofcode")

	perf := logging.StartOperation(f.Logger, "fetch")
	resp, err := f.Client.Do(req)
	if err != nil {
		perf.EndWithError(ctx, err)
		return "", errors.NewNetworkError(errors.ErrCodeFetchFailed, "request failed", err).
			WithContext("url", endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxInputSize))
	if err != nil {
		perf.EndWithError(ctx, err)
		return "", errors.NewNetworkError(errors.ErrCodeFetchFailed, "cannot read response", err)
	}
	if resp.StatusCode != http.StatusOK {
		err := errors.NewNetworkError(errors.ErrCodeFetchFailed,
			fmt.Sprintf("server returned %s", resp.Status), nil).
			WithContext("url", endpoint).
			WithContext("body", strings.TrimSpace(string(body)))
		perf.EndWithError(ctx, err)
		return "", err
	}
	perf.End(ctx)
	return string(body), nil
}

// Ensure returns the cached input for a puzzle, downloading and caching it
// first when the file does not exist. An existing file is never refetched.
func (f *Fetcher) Ensure(ctx context.Context, dir string, year, day int) (string, error) {
	path := Path(dir, year, day)
	if _, err := os.Stat(path); err == nil {
		f.Logger.Debug(ctx, "Input already cached", "path", path)
		return path, nil
	}

	body, err := f.Fetch(ctx, year, day)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotFound, "cannot create input directory", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotFound, "cannot write input", err).
			WithLocation(path, 0, 0)
	}
	f.Logger.Info(ctx, "Input cached", "path", path, "bytes", len(body))
	return path, nil
}
