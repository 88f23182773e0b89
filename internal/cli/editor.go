package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jacksmith/bizdir/internal/model"
)

// ErrEditCancelled is returned by EditInput when the template comes back unchanged.
var ErrEditCancelled = errors.New("add cancelled: template was not changed")

// editHeader is prepended to the add template.
const editHeader = `# New business
# Fill in name, location and description. phone and website are optional.
# category is one of: Restaurant, Retail, Service
# Save and close the editor to add. Exit without saving to cancel.

`

// EditInput opens a YAML template for in in $EDITOR and returns the edited
// payload. Returns ErrEditCancelled if the file is saved unchanged.
func EditInput(in model.BusinessInput) (model.BusinessInput, error) {
	body, err := model.EncodeInput(&in)
	if err != nil {
		return model.BusinessInput{}, err
	}
	if in.Phone == nil {
		body = append(body, "phone: \"\"\n"...)
	}
	if in.Website == nil {
		body = append(body, "website: \"\"\n"...)
	}
	content := append([]byte(editHeader), body...)

	edited, err := EditInEditor(content, ".yaml")
	if err != nil {
		return model.BusinessInput{}, err
	}
	if bytes.Equal(edited, content) {
		return model.BusinessInput{}, ErrEditCancelled
	}

	return model.DecodeInput(edited)
}

// EditInEditor opens content in $EDITOR and returns modified content.
// The suffix is used for the temporary file (e.g., ".yaml" for syntax highlighting).
// Returns error if EDITOR/VISUAL not set or editor exits non-zero.
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or use --name/--location/--description instead of -i")
	}

	tmpFile, err := os.CreateTemp("", "bizdir-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}

	return result, nil
}

// getEditor returns the editor command from environment.
// Checks VISUAL first (for graphical editors), then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
func runEditor(editor, path string) error {
	// Split editor into command and args (e.g., "code --wait")
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}
