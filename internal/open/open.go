package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/index"
)

// Message opens the transcript at path in $EDITOR, positioned on the line
// where message hitID starts.
func Message(db *index.DB, path string, hitID int) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	lineNum := 1
	if hitID >= 0 {
		row, err := db.Get(hitID)
		if err != nil {
			return fmt.Errorf("get message: %w", err)
		}
		if row == nil {
			return fmt.Errorf("message not found: %d", hitID)
		}
		lineNum = max(row.Line, 1)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	cmd := Command(editor, path, lineNum)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Command builds the editor invocation that jumps to lineNum.
func Command(editor, path string, lineNum int) *exec.Cmd {
	switch {
	case strings.Contains(editor, "vim"), strings.Contains(editor, "less"),
		strings.Contains(editor, "nano"), strings.Contains(editor, "emacs"):
		return exec.Command(editor, "+"+strconv.Itoa(lineNum), path)
	case strings.Contains(editor, "code"):
		return exec.Command(editor, "--goto", path+":"+strconv.Itoa(lineNum))
	case strings.Contains(editor, "subl"):
		return exec.Command(editor, path+":"+strconv.Itoa(lineNum))
	default:
		return exec.Command(editor, path)
	}
}
