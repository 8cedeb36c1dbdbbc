package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/cmdkit/internal/infrastructure/cli/commands"
	configinfra "github.com/doeshing/cmdkit/internal/infrastructure/config"
)

// isolate points HOME and the config file at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(configinfra.EnvConfigPath, filepath.Join(home, "config.yaml"))
	return home
}

// execute runs one cmdkit invocation and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root, err := NewRootCmd(context.Background(), Options{In: strings.NewReader(stdin)})
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestAssembleAndSplit(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "", "assemble", " ls ", "", "-la")
	require.NoError(t, err)
	assert.Equal(t, "ls -la\n", out)

	out, _, err = execute(t, "", "split", "ls  -la")
	require.NoError(t, err)
	assert.Equal(t, "ls\n\n-la\n", out)
}

func TestCSVLifecycle(t *testing.T) {
	home := isolate(t)
	file := filepath.Join(home, "commands.csv")

	_, _, err := execute(t, "", "csv", "add", "--file", file, "--name", "list", "--note", "all files", "ls", "-la")
	require.NoError(t, err)
	_, _, err = execute(t, "", "csv", "add", "--file", file, "--name", "disk", "df", "-h")
	require.NoError(t, err)

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "\"list\",\"ls -la\",\"all files\"\n\"disk\",\"df -h\",\"\"", string(raw))

	out, _, err := execute(t, "", "csv", "list", "--file", file, "--search", "df")
	require.NoError(t, err)
	assert.Contains(t, out, "[1] disk")
	assert.NotContains(t, out, "list")

	out, _, err = execute(t, "", "csv", "show", "--file", file, "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: list")
	assert.Contains(t, out, "[0] ls")
	assert.Contains(t, out, "[1] -la")

	out, _, err = execute(t, "n\n", "csv", "delete", "--file", file, "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete cancelled")

	_, _, err = execute(t, "", "csv", "delete", "--file", file, "--yes", "0")
	require.NoError(t, err)
	raw, err = os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, `"disk","df -h",""`, string(raw))

	_, _, err = execute(t, "", "csv", "delete", "--file", file, "--yes", "5")
	require.Error(t, err)
	assert.Equal(t, "No saved command at that position", err.Error())
}

func TestCSVAddRejectsMissingName(t *testing.T) {
	home := isolate(t)
	file := filepath.Join(home, "commands.csv")

	_, _, err := execute(t, "", "csv", "add", "--file", file, "ls")
	require.Error(t, err)
	var noticeErr *commands.NoticeError
	require.ErrorAs(t, err, &noticeErr)
	_, statErr := os.Stat(file)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAIConfigAndGenerate(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/models":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"object":"list","data":[]}`))
		case "/v1/chat/completions":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4",` +
				`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"ls -la"}}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	_, _, err := execute(t, "", "ai", "test")
	require.Error(t, err)
	assert.Equal(t, "Please fill in the API configuration first", err.Error())

	out, _, err := execute(t, "", "ai", "set", "--key", "sk-secret-1234", "--host", srv.URL+"/v1/", "--model", "gpt-4")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration saved")

	out, _, err = execute(t, "", "ai", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "**********1234")
	assert.Contains(t, out, "Model:    gpt-4")
	assert.NotContains(t, out, "sk-secret")

	out, _, err = execute(t, "", "ai", "test")
	require.NoError(t, err)
	assert.Contains(t, out, "Connection successful")

	out, errOut, err := execute(t, "", "generate", "list", "all", "files")
	require.NoError(t, err)
	assert.Equal(t, "ls -la\n", out)
	assert.Contains(t, errOut, "Command loaded into the editor")
}

func TestGenerateReportsRemoteError(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	t.Cleanup(srv.Close)

	_, _, err := execute(t, "", "ai", "set", "--key", "bad", "--host", srv.URL+"/v1/")
	require.NoError(t, err)

	_, _, err = execute(t, "", "generate", "list files")
	require.Error(t, err)
	assert.Equal(t, "Error: Incorrect API key provided", err.Error())

	_, _, err = execute(t, "", "ai", "test")
	require.Error(t, err)
	assert.Equal(t, "Connection failed: 401", err.Error())
}

func TestConfigCommands(t *testing.T) {
	home := isolate(t)

	out, _, err := execute(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml")+"\n", out)

	out, _, err = execute(t, "", "config", "diff")
	require.NoError(t, err)
	assert.Equal(t, commands.MsgNoDifferencesFromDefault+"\n", out)

	out, _, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "default_model: gpt-3.5-turbo")

	out, _, err = execute(t, "", "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, commands.MsgConfigurationValid)
}

func TestDoctorWithoutAIConfigOnlyWarns(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "", "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] Config file")
	assert.Contains(t, out, "[OK] Storage")
	assert.Contains(t, out, "[WARN] AI config")
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cmdkit version dev")
}

func TestNoArgsRunsSession(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "load git status\nshow\nquit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Command: git status")
}
