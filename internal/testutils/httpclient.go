package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type Response struct {
	StatusCode int
}

// ResponseCheck inspects the response before DoTestRequest closes its body.
type ResponseCheck func(tb testing.TB, resp *http.Response)

func MustBindJSON(v any) ResponseCheck {
	return func(tb testing.TB, resp *http.Response) {
		tb.Helper()
		require.NoError(tb, json.NewDecoder(resp.Body).Decode(v), "response is not valid json")
	}
}

func MustHaveNoBody() ResponseCheck {
	return func(tb testing.TB, resp *http.Response) {
		tb.Helper()
		body, err := io.ReadAll(resp.Body)
		require.NoError(tb, err)
		require.Empty(tb, body)
	}
}

func DoTestRequest(
	tb testing.TB,
	ts *httptest.Server,
	method, path string,
	body io.Reader,
	checks ...ResponseCheck,
) Response {
	tb.Helper()

	req, err := http.NewRequestWithContext(tb.Context(), method, ts.URL+path, body)
	require.NoError(tb, err)

	client := ts.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	resp, err := client.Do(req)
	require.NoError(tb, err)
	defer resp.Body.Close() // nolint: errcheck

	for _, check := range checks {
		check(tb, resp)
	}

	return Response{StatusCode: resp.StatusCode}
}
