// Manual probe for the messaging core: creates a message against a local
// store and pushes it through the full resolve/dispatch/track pipeline
// with the log transport. Handy for poking at filter behaviour without
// the surrounding platform.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"

	"herald/domain/message"
	"herald/infrastructure/transport"
	"herald/internal"
	"herald/repositories"
	"herald/services"
)

func main() {
	eventID := flag.String("event", "", "Target event UUID")
	organizerID := flag.String("organizer", "", "Organizer UUID (must own the event)")
	messageType := flag.String("type", string(message.TypeBroadcast), "INDIVIDUAL | BROADCAST | FILTERED")
	subject := flag.String("subject", "Probe message", "Message subject")
	content := flag.String("content", "Hello from the probe.", "Message body")
	filters := flag.String("filters", "", `Filter JSON, e.g. [{"attribute":"tier","op":"eq","value":"VIP"}]`)
	flag.Parse()

	config, err := LoadConfig()
	if err != nil {
		log.Fatal("Config error: ", err)
	}

	eventUUID, err := uuid.Parse(*eventID)
	if err != nil {
		log.Fatal("Invalid -event: ", err)
	}
	organizerUUID, err := uuid.Parse(*organizerID)
	if err != nil {
		log.Fatal("Invalid -organizer: ", err)
	}

	logger := internal.LoggerFromString("DEBUG")
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	messageRepo := repositories.NewMessageRepository(db, logger)
	eventRepo := repositories.NewEventRepository(db, logger)
	ticketRepo := repositories.NewTicketRepository(db, logger)

	svc := services.NewMessageService(
		messageRepo,
		eventRepo,
		services.NewResolverService(ticketRepo, logger),
		services.NewDispatchEngine(
			transport.NewLogTransport(logger),
			logger,
			config.DispatchWorkers,
			config.MaxSendAttempts,
			config.RetryBackoff,
			config.SendTimeout,
		),
		services.NewDeliveryTracker(messageRepo, logger),
		logger,
	)

	msg, err := svc.Create(services.CreateMessageRequest{
		EventID:     eventUUID,
		OrganizerID: organizerUUID,
		Subject:     *subject,
		Content:     *content,
		Type:        message.MessageType(*messageType),
		Filters:     *filters,
	})
	if err != nil {
		fail(config, "Create failed: %v", err)
	}
	step(config, "Created message %s in %s", msg.ID, msg.State)

	counts, err := svc.Send(context.Background(), msg.ID)
	if err != nil {
		fail(config, "Send failed: %v", err)
	}
	step(config, "Sent: total=%d successful=%d failed=%d", counts.Total, counts.Successful, counts.Failed)
}

func step(config Config, format string, args ...any) {
	line := fmt.Sprintf("  ====== "+format+" ======", args...)
	if config.Colours {
		line = color.New(color.BgBlack, color.FgGreen).Render(line)
	}
	fmt.Println(line)
}

func fail(config Config, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if config.Colours {
		line = color.New(color.BgBlack, color.FgRed).Render(line)
	}
	fmt.Fprintln(os.Stderr, line)
	os.Exit(1)
}
