package transport

import (
	"context"
	"fmt"
	"log/slog"

	"herald/contract"
	"herald/domain/message"
)

var _ contract.Transport = (*LogTransport)(nil)

// LogTransport is the transport used for local runs and the probe tool:
// it writes the send to the log and always succeeds. The real email/SMS
// channel is supplied by the surrounding platform.
type LogTransport struct {
	log *slog.Logger
}

func NewLogTransport(log *slog.Logger) *LogTransport {
	return &LogTransport{log: log}
}

func (t *LogTransport) Send(ctx context.Context, recipient message.Recipient, subject, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.log.Info(fmt.Sprintf("Send to %s: %q (%d bytes)", recipient.Address, subject, len(content)))
	return nil
}
