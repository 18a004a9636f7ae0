// Seeds a local badger store with a demo event, ticket holders and
// tickets so the probe has something to resolve against.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"herald/domain/message"
	"herald/internal"
	"herald/repositories"
)

func main() {
	dbPath := flag.String("db", "/tmp/herald", "Path to badger DB")
	holders := flag.Int("holders", 10, "Number of ticket holders to create")
	flag.Parse()

	logger := internal.LoggerFromString("INFO")
	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	eventRepo := repositories.NewEventRepository(db, logger)
	ticketRepo := repositories.NewTicketRepository(db, logger)

	organizerID := uuid.New()
	event := repositories.Event{
		ID:          uuid.New(),
		OrganizerID: organizerID,
		Name:        "Demo Conference",
	}
	if err := eventRepo.Put(event); err != nil {
		log.Fatal("Seeding event: ", err)
	}

	tiers := []string{"VIP", "GA"}
	for i := 0; i < *holders; i++ {
		holder := message.Holder{
			ID:      uuid.New(),
			Address: fmt.Sprintf("holder%02d@example.com", i),
			// Every fifth holder has opted out of communications
			OptedOut: i%5 == 4,
		}
		if err := ticketRepo.PutHolder(holder); err != nil {
			log.Fatal("Seeding holder: ", err)
		}
		ticket := message.Ticket{
			ID:          uuid.New(),
			HolderID:    holder.ID,
			Tier:        tiers[i%len(tiers)],
			PurchasedAt: time.Now().UTC().AddDate(0, 0, -i),
			CheckedIn:   i%3 == 0,
		}
		if err := ticketRepo.PutTicket(event.ID, ticket); err != nil {
			log.Fatal("Seeding ticket: ", err)
		}
	}

	fmt.Printf("Seeded event %s (organizer %s) with %d holders\n", event.ID, organizerID, *holders)
}
