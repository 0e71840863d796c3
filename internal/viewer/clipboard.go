package viewer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// ErrClipboardUnavailable is returned when no clipboard can be written
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard writes text to a system clipboard
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// CopyResult is the outcome of a clipboard write
type CopyResult struct {
	Text string
	Err  error
}

// OK reports whether the text reached the clipboard
func (r CopyResult) OK() bool {
	return r.Err == nil
}

// CopyShareLink writes link to clip. Failures, including a panicking
// clipboard, are logged and reported in the result; they never propagate.
func CopyShareLink(ctx context.Context, clip Clipboard, link string, logger *zap.Logger) (res CopyResult) {
	if logger == nil {
		logger = zap.NewNop()
	}
	res.Text = link

	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("clipboard panicked: %v", p)
		}
		if res.Err != nil {
			logger.Warn("failed to copy share link", zap.String("link", link), zap.Error(res.Err))
		}
	}()

	if clip == nil {
		res.Err = ErrClipboardUnavailable
		return res
	}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	if err := clip.WriteText(ctx, link); err != nil {
		res.Err = fmt.Errorf("copy share link: %w", err)
	}
	return res
}

// OSC52Clipboard sets the terminal clipboard with an OSC 52 escape sequence
type OSC52Clipboard struct {
	W         io.Writer
	Available bool
}

// NewTerminalClipboard targets f, which must be a terminal for writes to succeed
func NewTerminalClipboard(f *os.File) OSC52Clipboard {
	fd := f.Fd()
	return OSC52Clipboard{
		W:         f,
		Available: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (c OSC52Clipboard) WriteText(ctx context.Context, text string) error {
	if !c.Available || c.W == nil {
		return ErrClipboardUnavailable
	}
	_, err := fmt.Fprintf(c.W, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}
