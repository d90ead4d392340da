package adapters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hkgbuild/internal/ports"
)

func TestPrompterAsk(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field ports.Field
		want  string
	}{
		{name: "typed value", input: "haskell-mtl\n", field: ports.Field{Name: "pkgname", Message: "Enter package name", Default: "x"}, want: "haskell-mtl"},
		{name: "default on empty", input: "\n", field: ports.Field{Name: "pkgname", Message: "Enter package name", Default: "haskell-mtl"}, want: "haskell-mtl"},
		{name: "optional empty", input: "\n", field: ports.Field{Name: "groups", Message: "Enter group(s) (optional)"}, want: ""},
		{name: "last line without newline", input: "2.1.2", field: ports.Field{Name: "pkgver", Message: "Enter package version"}, want: "2.1.2"},
		{name: "too long re-prompts", input: strings.Repeat("a", 129) + "\nshort\n", field: ports.Field{Name: "pkgdesc", Message: "Enter package description"}, want: "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			prompter := NewPrompterAdapter(strings.NewReader(tt.input), &out, false)
			got, err := prompter.Ask(tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompterAskShowsDefaultAndErrors(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompterAdapter(strings.NewReader(strings.Repeat("x", 200)+"\nok\n"), &out, false)
	_, err := prompter.Ask(ports.Field{Name: "pkgdesc", Message: "Enter package description", Default: "old", Hints: []string{"Previous description: old"}})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Previous description: old")
	assert.Contains(t, out.String(), "Enter package description [old]: ")
	assert.Contains(t, out.String(), "ERROR pkgdesc must have at least 0 and at most 128 characters")
}

func TestPrompterRequiredEmptyCancels(t *testing.T) {
	prompter := NewPrompterAdapter(strings.NewReader("\n"), &bytes.Buffer{}, false)
	_, err := prompter.Ask(ports.Field{Name: "repository", Message: "Enter repository", Required: true})
	require.ErrorIs(t, err, ports.ErrCancelled)
}

func TestPrompterEOFCancels(t *testing.T) {
	prompter := NewPrompterAdapter(strings.NewReader(""), &bytes.Buffer{}, false)
	_, err := prompter.Ask(ports.Field{Name: "pkgdesc", Message: "Enter package description", Default: "x"})
	require.ErrorIs(t, err, ports.ErrCancelled)
}

func TestPrompterChoose(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompterAdapter(strings.NewReader("abc\n7\n2\n"), &out, false)
	index, err := prompter.Choose("Select architecture(s)", []string{"x86_64 and i686", "x86_64", "i686", "Any"})
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Contains(t, out.String(), "    4) Any\n")
	assert.Contains(t, out.String(), "Not in range")
}

func TestPrompterConfirm(t *testing.T) {
	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{input: "\n", defaultYes: true, want: true},
		{input: "\n", defaultYes: false, want: false},
		{input: "YES\n", defaultYes: false, want: true},
		{input: "nope\n", defaultYes: true, want: false},
	}
	for _, tt := range tests {
		prompter := NewPrompterAdapter(strings.NewReader(tt.input), &bytes.Buffer{}, false)
		got, err := prompter.Confirm("Create another?", tt.defaultYes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestPrompterNonInteractive(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompterAdapter(strings.NewReader("ignored\n"), &out, true)

	got, err := prompter.Ask(ports.Field{Name: "pkgver", Message: "Enter package version", Default: "2.1.2", Required: true})
	require.NoError(t, err)
	assert.Equal(t, "2.1.2", got)

	got, err = prompter.Ask(ports.Field{Name: "groups", Message: "Enter group(s) (optional)"})
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = prompter.Ask(ports.Field{Name: "pkgdesc", Message: "Enter package description", Required: true})
	require.ErrorIs(t, err, ports.ErrCancelled)

	index, err := prompter.Choose("Select architecture(s)", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 0, index)
}
