package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskify/internal/config"
	"github.com/riordanpawley/taskify/internal/domain"
	"github.com/riordanpawley/taskify/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopRunner(tea.Model) error { return nil }

// execute runs the root command with args and returns its stdout
func execute(t *testing.T, run ProgramRunner, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("1.2.3", run)
	var out bytes.Buffer
	root.Command().SetOut(&out)
	root.Command().SetErr(&out)
	root.Command().SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, noopRunner, "version")
	require.NoError(t, err)
	assert.Equal(t, "taskify 1.2.3\n", out)
}

func TestConfigCommand_PrintsEffectiveConfig(t *testing.T) {
	path := writeConfigFile(t, "[ui]\ndefault_priority = \"High\"\n")

	out, err := execute(t, noopRunner, "config", "--config", path, "--log-level", "debug")
	require.NoError(t, err)

	var cfg config.Config
	_, err = toml.Decode(out, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "High", cfg.UI.DefaultPriority)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.UI.ToastSeconds)
}

func TestInvalidLogLevelFlag(t *testing.T) {
	path := writeConfigFile(t, "")

	_, err := execute(t, noopRunner, "config", "--config", path, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, noopRunner, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, noopRunner, "unexpected")
	assert.Error(t, err)
}

func TestRun_DemoAndLogFile(t *testing.T) {
	path := writeConfigFile(t, "")
	logFile := filepath.Join(t.TempDir(), "logs", "taskify.log")

	var view string
	runner := func(model tea.Model) error {
		m, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
		view = m.View()
		return nil
	}

	_, err := execute(t, runner, "--config", path, "--log-file", logFile, "--demo")
	require.NoError(t, err)

	assert.Contains(t, view, "Review pull request")
	assert.Contains(t, view, "5 tasks")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting")
	assert.Contains(t, string(data), "task added")
}

func TestRun_PropagatesProgramError(t *testing.T) {
	path := writeConfigFile(t, "")
	boom := errors.New("boom")

	_, err := execute(t, func(tea.Model) error { return boom }, "--config", path)
	assert.ErrorIs(t, err, boom)
}

func TestSeedDemo(t *testing.T) {
	st := store.New(nil)
	require.NoError(t, SeedDemo(st))

	tasks := st.Tasks()
	require.Len(t, tasks, len(demoTasks))
	for i := 1; i < len(tasks); i++ {
		assert.False(t, domain.Less(tasks[i], tasks[i-1]), "tasks out of order at %d", i)
	}
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, "Review pull request", tasks[0].Name)
}
