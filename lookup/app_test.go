package lookup_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/alovak/paystatus/lookup"
)

func TestApp_HealthAndCORS(t *testing.T) {
	cfg := lookup.DefaultConfig()
	cfg.HTTPAddr = "localhost:0"

	app := lookup.NewApp(slog.New(slog.NewTextHandler(io.Discard)), cfg)
	require.NoError(t, app.Start())
	t.Cleanup(app.Shutdown)

	base := "http://" + app.Addr

	resp, err := http.Get(base + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true,"service":"paystatus-proxy"}`, string(body))

	// browser preflight is answered by the middleware itself
	preflight, _ := http.NewRequest(http.MethodOptions, base+"/bulk-status", nil)
	presp, err := http.DefaultClient.Do(preflight)
	require.NoError(t, err)
	defer presp.Body.Close()

	require.Equal(t, http.StatusNoContent, presp.StatusCode)
	require.Equal(t, "GET, POST, OPTIONS", presp.Header.Get("Access-Control-Allow-Methods"))
}
