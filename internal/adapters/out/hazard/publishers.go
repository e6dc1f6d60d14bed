// Package hazard delivers container hazard notices to the operator.
package hazard

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/ports"

	"github.com/labstack/gommon/color"
)

var (
	_ ports.HazardPublisher = (*LoggerPublisher)(nil)
	_ ports.HazardPublisher = (*ConsolePublisher)(nil)
	_ ports.HazardPublisher = MultiPublisher(nil)
)

// LoggerPublisher writes every notice as a WARN record.
type LoggerPublisher struct {
	logger *slog.Logger
}

func NewLoggerPublisher(logger *slog.Logger) *LoggerPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggerPublisher{logger: logger.With("component", "hazard")}
}

func (p *LoggerPublisher) Publish(ctx context.Context, notice container.HazardNotice) {
	p.logger.WarnContext(ctx, "container hazard",
		"serial", notice.Serial.String(),
		"message", notice.Message,
	)
}

// ConsolePublisher prints notices for the person at the menu as
// "[HAZARD] <serial>: <message>". Color is applied only when enabled and the
// writer is a terminal.
type ConsolePublisher struct {
	out   io.Writer
	color *color.Color
}

func NewConsolePublisher(out io.Writer, colored bool) *ConsolePublisher {
	c := color.New()
	c.SetOutput(out)
	if !colored {
		c.Disable()
	}
	return &ConsolePublisher{out: out, color: c}
}

func (p *ConsolePublisher) Publish(_ context.Context, notice container.HazardNotice) {
	_, _ = fmt.Fprintf(p.out, "%s %s: %s\n",
		p.color.Red("[HAZARD]"),
		p.color.Yellow(notice.Serial.String()),
		notice.Message,
	)
}

// MultiPublisher fans a notice out to every publisher in order.
type MultiPublisher []ports.HazardPublisher

func (m MultiPublisher) Publish(ctx context.Context, notice container.HazardNotice) {
	for _, p := range m {
		if p != nil {
			p.Publish(ctx, notice)
		}
	}
}
