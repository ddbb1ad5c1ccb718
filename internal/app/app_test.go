package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/augur-config/internal/builder"
	"github.com/MKhiriev/augur-config/internal/config"
	"github.com/MKhiriev/augur-config/internal/credentials"
	"github.com/MKhiriev/augur-config/internal/document"
	"github.com/MKhiriev/augur-config/internal/logger"
	"github.com/MKhiriev/augur-config/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const credentialsJSON = `{
	"database": "augur",
	"host": "localhost",
	"port": 5432,
	"user": "augur",
	"password": "secret",
	"key": "api-key",
	"zombie_id": "22"
}`

type testEnv struct {
	settings *config.Settings
	prompter *mock.MockPrompter
	console  *bytes.Buffer
	app      *App
}

func newTestEnv(t *testing.T, creds string) *testEnv {
	t.Helper()
	dir := t.TempDir()

	credsPath := filepath.Join(dir, "temp.config.json")
	require.NoError(t, os.WriteFile(credsPath, []byte(creds), 0o600))

	settings := &config.Settings{
		OutputPath:      filepath.Join(dir, "augur.config.json"),
		CredentialsPath: credsPath,
	}

	ctrl := gomock.NewController(t)
	prompter := mock.NewMockPrompter(ctrl)
	console := &bytes.Buffer{}
	log := logger.Nop()

	a, err := NewApp(settings, builder.New(console, prompter, log), prompter, console, log)
	require.NoError(t, err)

	return &testEnv{settings: settings, prompter: prompter, console: console, app: a}
}

func readOutput(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestNewApp_NilDependency(t *testing.T) {
	log := logger.Nop()
	console := &bytes.Buffer{}
	prompter := mock.NewMockPrompter(gomock.NewController(t))
	b := builder.New(console, prompter, log)

	_, err := NewApp(nil, b, prompter, console, log)
	assert.ErrorIs(t, err, ErrNilDependency)

	_, err = NewApp(&config.Settings{}, nil, prompter, console, log)
	assert.ErrorIs(t, err, ErrNilDependency)

	_, err = NewApp(&config.Settings{}, b, prompter, console, nil)
	assert.ErrorIs(t, err, ErrNilDependency)
}

// TestApp_Run_FreshFile verifies a run without optional sections.
func TestApp_Run_FreshFile(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)

	require.NoError(t, env.app.Run(context.Background()))

	out := readOutput(t, env.settings.OutputPath)
	assert.Len(t, out, 10)
	assert.Equal(t, "augur_data", out["Database"].(map[string]any)["schema"])
	assert.Equal(t, float64(5432), out["Database"].(map[string]any)["port"])
	assert.Equal(t, map[string]any{"apikey": "GITHUB_API_KEY"}, out["GitHub"])
	assert.Len(t, out["Facade"].(map[string]any), 14)

	console := env.console.String()
	assert.Contains(t, console, "Beginning 'augur.config.json' creation process...\n\n")
	assert.Contains(t, console, "augur.config.json successfully created\n")
	assert.NotContains(t, console, "already exists")

	info, err := os.Stat(env.settings.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

// TestApp_Run_KeyOrder verifies the section order of the written file.
func TestApp_Run_KeyOrder(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	require.NoError(t, env.app.Run(context.Background()))

	data, err := os.ReadFile(env.settings.OutputPath)
	require.NoError(t, err)

	dec := json.NewDecoder(bytes.NewReader(data))
	_, err = dec.Token()
	require.NoError(t, err)

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}

	assert.Equal(t, []string{
		"Cache", "Database", "GitHub", "Server",
		"Facade", "GHTorrent", "Development", "Plugins", "Housekeeper", "Workers",
	}, keys)
}

// TestApp_Run_OptionalSections verifies that GHTorrent is asked before
// Facade and that answers replace the defaults.
func TestApp_Run_OptionalSections(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	env.settings.Prompts.Facade = true
	env.settings.Prompts.GHTorrent = true

	fallback := func(_ context.Context, _ string, fallback string) (string, error) {
		return fallback, nil
	}
	gomock.InOrder(
		env.prompter.EXPECT().Ask(gomock.Any(), "Enter GHTorrent Host [Default: localhost]: ", "localhost").DoAndReturn(fallback),
		env.prompter.EXPECT().Ask(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fallback).Times(4),
		env.prompter.EXPECT().Ask(gomock.Any(), "Enter Facade DB Host [Default: localhost]: ", "localhost").DoAndReturn(fallback),
		env.prompter.EXPECT().Ask(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fallback).Times(4),
		env.prompter.EXPECT().Ask(gomock.Any(), "Enter Facade Projects: ", "").Return("repoA repoB", nil),
	)

	require.NoError(t, env.app.Run(context.Background()))

	out := readOutput(t, env.settings.OutputPath)
	facade := out["Facade"].(map[string]any)
	assert.Equal(t, []any{"repoA", "repoB"}, facade["projects"])
	assert.Equal(t, "facade", facade["name"])
	assert.NotContains(t, facade, "check_updates")
	assert.Equal(t, "ghtorrent", out["GHTorrent"].(map[string]any)["name"])
	assert.NotContains(t, env.console.String(), "Set default values for Facade")
}

// TestApp_Run_DeclineOverwrite verifies that a declined overwrite leaves the
// existing file byte-identical.
func TestApp_Run_DeclineOverwrite(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	original := []byte(`{"keep": "me"}`)
	require.NoError(t, os.WriteFile(env.settings.OutputPath, original, 0o644))

	env.prompter.EXPECT().Confirm(gomock.Any(), "Do you want to rewrite it? (Y/N): ").Return(false, nil)

	require.NoError(t, env.app.Run(context.Background()))

	data, err := os.ReadFile(env.settings.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, original, data)
	assert.Equal(t, "augur.config.json already exists!\nExiting...\n", env.console.String())
}

func TestApp_Run_AcceptOverwrite(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	require.NoError(t, os.WriteFile(env.settings.OutputPath, []byte(`{}`), 0o644))

	env.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true, nil)

	require.NoError(t, env.app.Run(context.Background()))
	assert.Len(t, readOutput(t, env.settings.OutputPath), 10)
}

// TestApp_Run_AssumeYes verifies that no question is asked with AssumeYes.
func TestApp_Run_AssumeYes(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	env.settings.AssumeYes = true
	require.NoError(t, os.WriteFile(env.settings.OutputPath, []byte(`{}`), 0o644))

	require.NoError(t, env.app.Run(context.Background()))

	assert.Len(t, readOutput(t, env.settings.OutputPath), 10)
	assert.Contains(t, env.console.String(), "augur.config.json already exists!\n")
}

func TestApp_Run_ConfirmError(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	require.NoError(t, os.WriteFile(env.settings.OutputPath, []byte(`{}`), 0o644))

	env.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false, assert.AnError)

	err := env.app.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

// TestApp_Run_MissingCredential verifies that the run aborts naming the
// field and writes nothing.
func TestApp_Run_MissingCredential(t *testing.T) {
	env := newTestEnv(t, `{"database": "augur", "host": "localhost", "port": 5432, "user": "augur", "password": "secret", "key": "k"}`)

	err := env.app.Run(context.Background())

	var missing *credentials.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "zombie_id", missing.Field)
	assert.ErrorIs(t, err, credentials.ErrMissingCredentialField)
	assert.NoFileExists(t, env.settings.OutputPath)
}

func TestApp_Run_CredentialsNotFound(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	env.settings.CredentialsPath = filepath.Join(t.TempDir(), "missing.json")

	err := env.app.Run(context.Background())

	assert.ErrorIs(t, err, credentials.ErrReadCredentials)
	assert.NoFileExists(t, env.settings.OutputPath)
}

// TestApp_Run_WriteFailure verifies that a write failure is reported but not
// returned by default.
func TestApp_Run_WriteFailure(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	env.settings.OutputPath = filepath.Join(t.TempDir(), "no-such-dir", "augur.config.json")

	require.NoError(t, env.app.Run(context.Background()))

	assert.Contains(t, env.console.String(), "Error writing augur.config.json ")
	assert.NotContains(t, env.console.String(), "successfully created")
}

func TestApp_Run_WriteFailureStrict(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	env.settings.OutputPath = filepath.Join(t.TempDir(), "no-such-dir", "augur.config.json")
	env.settings.StrictWrite = true

	err := env.app.Run(context.Background())

	assert.ErrorIs(t, err, document.ErrWriteDocument)
	assert.Contains(t, env.console.String(), "Error writing augur.config.json ")
}

// TestApp_Run_PromptAborted verifies that a failed prompt stops the run
// before anything is written.
func TestApp_Run_PromptAborted(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	env.settings.Prompts.Facade = true

	env.prompter.EXPECT().Ask(gomock.Any(), gomock.Any(), gomock.Any()).Return("", context.Canceled)

	err := env.app.Run(context.Background())

	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, env.settings.OutputPath)
}

// TestApp_Run_StatError verifies that an output path that cannot be inspected
// stops the run before any question.
func TestApp_Run_StatError(t *testing.T) {
	env := newTestEnv(t, credentialsJSON)
	env.settings.OutputPath = filepath.Join(env.settings.CredentialsPath, "augur.config.json")

	err := env.app.Run(context.Background())

	assert.ErrorIs(t, err, ErrStatOutputFile)
	assert.Empty(t, env.console.String())
}

func TestNewApp_NilDependencyNamesArgument(t *testing.T) {
	log := logger.Nop()
	console := &bytes.Buffer{}
	prompter := mock.NewMockPrompter(gomock.NewController(t))

	_, err := NewApp(&config.Settings{}, builder.New(console, prompter, log), nil, console, log)

	assert.ErrorIs(t, err, ErrNilDependency)
	assert.ErrorContains(t, err, "prompter")
}
