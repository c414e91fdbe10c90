package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"jobtracker/internal/config"
	"jobtracker/pkg/scanstream"
)

var (
	watchStageDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	watchStageCurrent = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	watchStagePending = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	watchLineInfo    = lipgloss.NewStyle()
	watchLineSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	watchLineWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	watchLineError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	watchHeader = lipgloss.NewStyle().Bold(true).Underline(true)
)

func watchLineStyle(severity scanstream.Severity) lipgloss.Style {
	switch severity {
	case scanstream.SeveritySuccess:
		return watchLineSuccess
	case scanstream.SeverityWarning:
		return watchLineWarning
	case scanstream.SeverityError:
		return watchLineError
	default:
		return watchLineInfo
	}
}

// lineCursor tracks the newest rendered log line by its ID. IDs are
// monotonic, so the cursor keeps working after the bounded buffer starts
// evicting old lines and positions shift.
type lineCursor struct {
	lastID int64
}

// next returns the lines not yet rendered, oldest first, and advances the
// cursor past them.
func (c *lineCursor) next(lines []scanstream.LogLine) []scanstream.LogLine {
	start := len(lines)
	for start > 0 && lines[start-1].ID > c.lastID {
		start--
	}

	fresh := lines[start:]
	if len(fresh) > 0 {
		c.lastID = fresh[len(fresh)-1].ID
	}

	return fresh
}

// renderStages draws the pipeline as one line: completed stages green,
// the active stage highlighted, the rest dimmed.
func renderStages(snap scanstream.Snapshot) string {
	completed := make(map[string]bool, len(snap.CompletedStages))
	for _, name := range snap.CompletedStages {
		completed[name] = true
	}

	parts := make([]string, 0, len(scanstream.Stages()))
	for _, name := range scanstream.Stages() {
		switch {
		case completed[name]:
			parts = append(parts, watchStageDone.Render("✓ "+name))
		case name == snap.CurrentStage:
			parts = append(parts, watchStageCurrent.Render("▶ "+name))
		default:
			parts = append(parts, watchStagePending.Render("· "+name))
		}
	}

	return strings.Join(parts, "  ")
}

// watchCommand constructs the 'watch' subcommand that attaches to a running
// server's progress stream and renders it live in the terminal.
func watchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Runs a scan and renders its progress stream",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			url, _ := cmd.Flags().GetString("url")
			if url == "" {
				base, _ := cmd.Flags().GetString("base-url")
				url = strings.TrimSuffix(base, "/") + "/v1/scan/progress"
			}
			capacity, _ := cmd.Flags().GetInt("capacity")
			if capacity <= 0 {
				capacity = cfg.Scanner.LogBufferCapacity
			}

			done := make(chan scanstream.Outcome, 1)
			var cursor lineCursor

			session := scanstream.NewSession(scanstream.Options{
				URL:            url,
				BufferCapacity: capacity,
				IdleTimeout:    cfg.Scanner.StreamHeartbeat * 2,
				Hooks: scanstream.Hooks{
					OnUpdate: func(snap scanstream.Snapshot) {
						for _, line := range cursor.next(snap.Lines) {
							fmt.Println(watchLineStyle(line.Severity).Render(line.Text)) //nolint: forbidigo
						}
						if snap.State == scanstream.StateOpen {
							fmt.Println(renderStages(snap)) //nolint: forbidigo
						}
					},
					OnFinish: func(outcome scanstream.Outcome) {
						done <- outcome
					},
				},
			})

			fmt.Println(watchHeader.Render("Scanning inbox")) //nolint: forbidigo
			if err := session.Start(ctx); err != nil {
				fmt.Fprintln(os.Stderr, watchLineError.Render("could not connect: "+err.Error()))
				os.Exit(1)
			}

			select {
			case outcome := <-done:
				if outcome.Failed {
					fmt.Fprintln(os.Stderr, watchLineError.Render(outcome.Summary()))
					os.Exit(1)
				}
				fmt.Println(watchLineSuccess.Render(outcome.Summary())) //nolint: forbidigo
			case <-ctx.Done():
				session.Stop()
				fmt.Fprintln(os.Stderr, "interrupted")
			}
		},
	}

	cmd.Flags().String("url", "", "Full progress stream URL")
	cmd.Flags().String("base-url", "http://localhost:8080", "Server base URL")
	cmd.Flags().Int("capacity", 0, "Log buffer capacity (defaults to config)")

	return cmd
}
