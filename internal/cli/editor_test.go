package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/bizdir/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useEditor points EDITOR at command for the duration of the test.
func useEditor(t *testing.T, command string) {
	t.Helper()
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", command)
}

// writeScript creates an executable shell script and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func TestGetEditor(t *testing.T) {
	// VISUAL takes precedence
	t.Setenv("VISUAL", "code --wait")
	t.Setenv("EDITOR", "vim")
	assert.Equal(t, "code --wait", getEditor())

	// EDITOR is used when VISUAL is empty
	t.Setenv("VISUAL", "")
	assert.Equal(t, "vim", getEditor())

	// Empty when both are unset
	t.Setenv("EDITOR", "")
	assert.Equal(t, "", getEditor())
}

func TestEditInEditorNoEditor(t *testing.T) {
	useEditor(t, "")

	_, err := EditInEditor([]byte("test"), ".yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EDITOR not set")
}

func TestEditInEditorWithTrueCommand(t *testing.T) {
	// 'true' exits 0 without touching the file
	useEditor(t, "true")

	content := []byte("test content")
	result, err := EditInEditor(content, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, content, result)
}

func TestEditInEditorNonZeroExit(t *testing.T) {
	useEditor(t, "false")

	_, err := EditInEditor([]byte("test"), ".yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor exited with status")
}

func TestEditInEditorContentModified(t *testing.T) {
	useEditor(t, writeScript(t, "echo 'modified' > \"$1\"\n"))

	result, err := EditInEditor([]byte("original"), ".yaml")
	require.NoError(t, err)
	assert.Equal(t, "modified\n", string(result))
}

func TestRunEditorEmptyCommand(t *testing.T) {
	err := runEditor("", "/tmp/test.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty editor command")
}

func TestRunEditorNonExistentCommand(t *testing.T) {
	err := runEditor("nonexistent-editor-command-12345", "/tmp/test.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run editor")
}

func TestEditInput(t *testing.T) {
	t.Run("returns edited payload", func(t *testing.T) {
		useEditor(t, writeScript(t, `cat > "$1" <<'YAML'
name: Noodle Bar
category: restaurant
location: 9 Broth Rd
description: Hand-pulled noodles.
phone: ""
website: https://noodles.example.com
YAML
`))

		in, err := EditInput(model.BusinessInput{Category: model.CategoryRestaurant})
		require.NoError(t, err)
		assert.Equal(t, "Noodle Bar", in.Name)
		assert.Equal(t, model.CategoryRestaurant, in.Category)
		assert.Equal(t, "9 Broth Rd", in.Location)
		assert.Equal(t, "Hand-pulled noodles.", in.Description)
		require.NotNil(t, in.Phone)
		assert.Equal(t, "", *in.Phone, "blank optional fields are normalized by the store, not the editor")
		require.NotNil(t, in.Website)
		assert.Equal(t, "https://noodles.example.com", *in.Website)
	})

	t.Run("unchanged template cancels", func(t *testing.T) {
		useEditor(t, "true")

		_, err := EditInput(model.BusinessInput{Category: model.CategoryRetail})
		assert.ErrorIs(t, err, ErrEditCancelled)
	})

	t.Run("template lists every field", func(t *testing.T) {
		dump := filepath.Join(t.TempDir(), "template.yaml")
		useEditor(t, writeScript(t, "cp \"$1\" "+dump+"\necho 'name: x' > \"$1\"\n"))

		_, err := EditInput(model.BusinessInput{Category: model.CategoryService})
		require.NoError(t, err)

		template, err := os.ReadFile(dump)
		require.NoError(t, err)
		for _, key := range []string{"name:", "category: Service", "location:", "description:", "phone:", "website:"} {
			assert.Contains(t, string(template), key)
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		useEditor(t, writeScript(t, "echo 'name: [oops' > \"$1\"\n"))

		_, err := EditInput(model.BusinessInput{Category: model.CategoryRetail})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid YAML")
	})
}
