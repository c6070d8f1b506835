package e2etest

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// getJSON requests path from the server under test and decodes the body into out.
// The response is returned with its body already consumed.
func getJSON(t *testing.T, env *TestEnv, path string, out interface{}) *http.Response {
	t.Helper()

	resp, err := http.Get(env.ServerBaseURL + path)
	require.NoError(t, err, "Should be able to make a request to %s", path)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Should be able to read response body")

	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), "Response should be valid JSON: %s", string(body))
	}

	return resp
}

// getBody requests path and returns the response with its body as a string
func getBody(t *testing.T, env *TestEnv, path string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(env.ServerBaseURL + path)
	require.NoError(t, err, "Should be able to make a request to %s", path)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Should be able to read response body")

	return resp, string(body)
}
