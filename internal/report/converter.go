package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Converter превращает HTML в PDF
type Converter interface {
	Convert(ctx context.Context, html []byte) ([]byte, error)
}

// ChromeConverter печатает HTML в PDF через headless Chromium
type ChromeConverter struct {
	binary  string
	timeout time.Duration
	tempDir string
}

func NewChromeConverter(binary string, timeout time.Duration) *ChromeConverter {
	return &ChromeConverter{
		binary:  binary,
		timeout: timeout,
		tempDir: os.TempDir(),
	}
}

func (c *ChromeConverter) Convert(ctx context.Context, html []byte) ([]byte, error) {
	dir, err := os.MkdirTemp(c.tempDir, "incident-report-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "report.html")
	out := filepath.Join(dir, "report.pdf")
	if err := os.WriteFile(in, html, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write report html: %w", err)
	}

	args := []string{
		"--headless",
		"--disable-gpu",
		"--no-sandbox",
		"--no-pdf-header-footer",
		"--run-all-compositor-stages-before-draw",
		"--virtual-time-budget=1200",
		"--print-to-pdf=" + out,
		"file://" + in,
	}
	if err := c.run(ctx, args...); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("failed to read converted pdf: %w", err)
	}
	return data, nil
}

func (c *ChromeConverter) run(ctx context.Context, args ...string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, c.binary, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("converter timeout")
		}
		return fmt.Errorf("%s failed: %v: %s", filepath.Base(c.binary), err, string(out))
	}
	return nil
}
