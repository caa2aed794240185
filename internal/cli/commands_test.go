package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/gearbox/internal/version"
	"github.com/arthur-debert/gearbox/pkg/errors"
	"github.com/arthur-debert/gearbox/pkg/registry"
	"github.com/arthur-debert/gearbox/pkg/triggers"
	"github.com/arthur-debert/gearbox/pkg/ui"
)

// Honk is registered a second time so the strict flag has something to reject
func init() {
	registry.RegisterSimple[triggers.Honk]()
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCmd_Text(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Transitions (")
	assert.Contains(t, out, "github.com/arthur-debert/gearbox/pkg/triggers.Honk [simple]")
	assert.Contains(t, out, "github.com/arthur-debert/gearbox/pkg/triggers.DoorOpened [full]")
}

func TestListCmd_JSON(t *testing.T) {
	out, err := run(t, "list", "--format", "json")
	require.NoError(t, err)

	var list ui.TransitionList
	require.NoError(t, json.Unmarshal([]byte(out), &list))

	kinds := map[string]string{}
	for _, row := range list.Transitions {
		kinds[row.Name] = row.Kind
	}
	assert.Equal(t, "simple", kinds["github.com/arthur-debert/gearbox/pkg/triggers.Tick"])
	assert.Equal(t, "full", kinds["github.com/arthur-debert/gearbox/pkg/triggers.AlarmTripped"])
}

func TestDispatchCmd(t *testing.T) {
	t.Run("simple_has_no_sub_events", func(t *testing.T) {
		out, err := run(t, "dispatch", "triggers.Honk")
		require.NoError(t, err)
		assert.Contains(t, out, "[simple]")
		assert.Contains(t, out, "no sub-events")
	})

	t.Run("full_prints_effect", func(t *testing.T) {
		out, err := run(t, "dispatch", "DoorOpened", "-f", "json")
		require.NoError(t, err)

		var view ui.DispatchView
		require.NoError(t, json.Unmarshal([]byte(out), &view))
		assert.Equal(t, "full", view.Kind)
		require.Len(t, view.Phases, 1)
		assert.Equal(t, "effect", view.Phases[0].Phase)
		assert.Equal(t, "door", view.Phases[0].Value)
	})

	t.Run("unknown_type", func(t *testing.T) {
		_, err := run(t, "dispatch", "Nope")
		assert.True(t, errors.IsErrorCode(err, errors.ErrTransitionNotRegistered))
	})

	t.Run("requires_one_arg", func(t *testing.T) {
		_, err := run(t, "dispatch")
		assert.Error(t, err)
	})
}

func TestConfigCmd(t *testing.T) {
	out, err := run(t, "config", "-vv", "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "[registry]")
	assert.Regexp(t, `strict = false`, out)
	assert.Regexp(t, `verbosity = 2`, out)
	assert.Regexp(t, `format = ['"]yaml['"]`, out)
}

func TestStrictFlag(t *testing.T) {
	t.Run("lenient_by_default", func(t *testing.T) {
		out, err := run(t, "list")
		require.NoError(t, err)
		assert.Contains(t, out, "triggers.Honk [simple]")
	})

	t.Run("flag_rejects_duplicates", func(t *testing.T) {
		_, err := run(t, "list", "--strict")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateRegistration))
		assert.Equal(t, []string{"github.com/arthur-debert/gearbox/pkg/triggers.Honk"},
			errors.GetErrorDetails(err)["types"])
	})

	t.Run("explicit_false_overrides_env", func(t *testing.T) {
		t.Setenv("GEARBOX_REGISTRY_STRICT", "true")
		_, err := run(t, "list", "--strict=false")
		assert.NoError(t, err)
	})

	t.Run("env_rejects_duplicates", func(t *testing.T) {
		t.Setenv("GEARBOX_REGISTRY_STRICT", "true")
		_, err := run(t, "list")
		assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateRegistration))
	})
}

// captureStderr collects what the logger writes to the process stderr
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	original := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = original }()

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	fn()
	require.NoError(t, w.Close())
	return <-done
}

func TestQuietByDefault(t *testing.T) {
	var out string
	var err error
	stderr := captureStderr(t, func() {
		out, err = run(t, "list")
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Transitions (")

	assert.NotContains(t, stderr, "Operation started")
	assert.NotContains(t, stderr, "installed transition")
	assert.NotContains(t, stderr, "dispatch table materialized")
	assert.NotContains(t, stderr, "Core initialization completed")
	assert.Empty(t, stderr)
}

func TestVerboseLogsMaterialization(t *testing.T) {
	stderr := captureStderr(t, func() {
		_, err := run(t, "list", "-vvv")
		require.NoError(t, err)
	})
	assert.Contains(t, stderr, "installed transition")
	assert.Contains(t, stderr, "dispatch table materialized")
}

func TestConfigCmd_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"yaml\"\n"), 0644))

	out, err := run(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Regexp(t, `format = ['"]yaml['"]`, out)
}

func TestInvalidFormatFlag(t *testing.T) {
	_, err := run(t, "list", "--format", "xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gearbox version "+version.Version)
}
