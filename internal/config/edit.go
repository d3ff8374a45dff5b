package config

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/xdg/coderun/internal/clog"
)

// Edit opens the configuration file at path (or Path() when empty) in the
// user's editor, creating the default file first if needed.
// The editor is $VISUAL, then $EDITOR, falling back to "vi".
// After the editor exits the file is loaded again. Validation errors are
// logged as a warning and returned so the caller can report them; the
// edited file is left in place.
func Edit(path string) error {
	if path == "" {
		path = Path()
	}

	if _, err := WriteDefault(path); err != nil {
		return fmt.Errorf("create default config: %w", err)
	}

	if err := openEditor(path); err != nil {
		return err
	}

	if _, err := Load(path); err != nil {
		clog.Warn("config %s has errors after edit: %v", path, err)
		return err
	}
	return nil
}

// editorCommand returns the editor to launch.
func editorCommand() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if e := os.Getenv(env); e != "" {
			return e
		}
	}
	return "vi"
}

func openEditor(path string) error {
	editor := editorCommand()

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", editor, err)
	}
	return nil
}
