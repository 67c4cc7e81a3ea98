package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const declarations = `
models:
  - name: user
    display_name: User
    attributes: [id, name, email, password]
serializers:
  - name: UserSerializer
    model: user
    accepted_parameters: [fields]
    exclude_fields: [password]
  - name: ContactSerializer
    model: user
    fields: [name, email]
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "serializers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCheck_AllSerializers(t *testing.T) {
	out, err := execute(t, "check", "--config", writeFile(t, declarations))
	require.NoError(t, err)

	assert.Equal(t,
		"ok   ContactSerializer: name, email\n"+
			"ok   UserSerializer: id, name, email\n",
		out)
}

func TestCheck_NamedSerializerWithFields(t *testing.T) {
	out, err := execute(t, "check", "-c", writeFile(t, declarations), "--fields", "email,id", "UserSerializer")
	require.NoError(t, err)

	assert.Equal(t, "ok   UserSerializer: email, id\n", out)
}

func TestCheck_Failures(t *testing.T) {
	path := writeFile(t, declarations)

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "unknown serializer",
			args:     []string{"check", "-c", path, "GhostSerializer"},
			contains: "FAIL GhostSerializer",
		},
		{
			name:     "fields not accepted",
			args:     []string{"check", "-c", path, "--fields", "id", "ContactSerializer"},
			contains: `FAIL ContactSerializer: parameter "fields" is not accepted in ContactSerializer`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)

			require.ErrorIs(t, err, errCheckFailed)
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestCheck_LoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing file",
			args: []string{"check", "-c", filepath.Join(t.TempDir(), "missing.yaml")},
		},
		{
			name: "unknown key in strict mode",
			args: []string{"check", "--strict", "-c", writeFile(t, "models: []\nowner: me\n")},
		},
		{
			name: "schema mismatch",
			args: []string{"check", "-c", writeFile(t, `
models:
  - name: user
    attributes: [id, email]
serializers:
  - name: UserSerializer
    model: user
    fields: [emial]
`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)

			require.Error(t, err)
			assert.NotErrorIs(t, err, errCheckFailed)
		})
	}
}

func TestCheck_ConfigFromEnv(t *testing.T) {
	t.Setenv("HJARTA_CONFIG", writeFile(t, declarations))

	out, err := execute(t, "check", "ContactSerializer")
	require.NoError(t, err)

	assert.Equal(t, "ok   ContactSerializer: name, email\n", out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Equal(t, "serializer-lint dev (compiled unknown)\n", out)
}

func TestBindFlags(t *testing.T) {
	flags := pflag.NewFlagSet("check", pflag.ContinueOnError)
	flags.String("config", "serializers.yaml", "")
	flags.Bool("strict", false, "")

	require.NoError(t, flags.Parse([]string{"--strict"}))

	v := viper.New()
	require.NoError(t, bindFlags(v, flags))

	assert.Equal(t, "serializers.yaml", v.GetString("config"))
	assert.True(t, v.GetBool("strict"))
}

func TestCheck_LogFlagsFromParent(t *testing.T) {
	out, err := execute(t, "--log-level", "error", "check", "-c", writeFile(t, declarations), "ContactSerializer")
	require.NoError(t, err)

	assert.Equal(t, "ok   ContactSerializer: name, email\n", out)
}
