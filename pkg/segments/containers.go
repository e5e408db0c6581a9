package segments

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/glyphs"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/arthur-debert/opsline/pkg/unixhttp"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const (
	// DefaultContainersTimeout bounds the whole daemon query.
	DefaultContainersTimeout = 500 * time.Millisecond

	unixScheme    = "unix:"
	containersAPI = "/containers/json?all=true"
)

// ContainersOptions configures the container daemon segment.
type ContainersOptions struct {
	// URL is http(s)://host[:port] or unix:/path/to.sock.
	URL     string
	Timeout time.Duration
}

type container struct {
	State string `json:"State"`
}

// Containers tallies containers by state as reported by a Docker
// compatible API.
type Containers struct {
	opts   ContainersOptions
	logger zerolog.Logger
}

// NewContainers creates the container generator. A zero timeout means
// DefaultContainersTimeout.
func NewContainers(opts ContainersOptions, logger zerolog.Logger) *Containers {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultContainersTimeout
	}
	return &Containers{opts: opts, logger: logger}
}

func (c *Containers) Kind() Kind { return KindContainers }

func (c *Containers) Generate(ctx context.Context, _ shell.Shell, th *theme.Theme) ([]Segment, error) {
	list, err := c.list(ctx)
	if err != nil {
		return nil, err
	}

	states := []struct {
		state string
		glyph string
	}{
		{"running", glyphs.Running},
		{"paused", glyphs.Paused},
		{"exited", glyphs.Exited},
		{"restarting", glyphs.Restarting},
	}

	var b strings.Builder
	total := 0
	for _, s := range states {
		n := lo.CountBy(list, func(ct container) bool { return ct.State == s.state })
		if n == 0 {
			continue
		}
		total += n
		b.WriteString(" " + s.glyph + " " + strconv.Itoa(n))
	}
	if total == 0 {
		return nil, nil
	}
	return []Segment{chunk(KindContainers, " "+glyphs.Docker+" "+b.String()+" ", th.Container)}, nil
}

// client returns the HTTP client and request URL for the configured
// endpoint.
func (c *Containers) client() (*http.Client, string) {
	if path, ok := strings.CutPrefix(c.opts.URL, unixScheme); ok {
		return unixhttp.NewClient(path, c.opts.Timeout, unixhttp.WithLogger(c.logger)), unixhttp.BaseURL + containersAPI
	}
	return &http.Client{
		Timeout: c.opts.Timeout,
		Transport: &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			DisableKeepAlives: true,
		},
	}, strings.TrimSuffix(c.opts.URL, "/") + containersAPI
}

func (c *Containers) list(ctx context.Context) ([]container, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	client, endpoint := c.client()
	c.logger.Info().Str("url", c.opts.URL).Msg("listing containers")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProbeFailed, "build request for %s", c.opts.URL)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProbeFailed, "query %s", c.opts.URL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.ErrHTTPStatus, "container API returned %s", resp.Status).
			WithDetail("status", resp.StatusCode)
	}

	var list []container
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "decode container list")
	}
	return list, nil
}
