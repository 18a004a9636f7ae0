// Ad-hoc inspector: dumps the message records of a badger store as a
// table. Useful when checking counters after a manual probe run.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"herald/domain/message"
)

func main() {
	dbPath := flag.String("db", "/tmp/herald", "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Event", "Type", "State", "Total", "OK", "KO", "Sent At"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			// Skip secondary indexes, they carry no payload worth showing
			if strings.HasPrefix(string(item.Key()), "idx:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				var msg message.EventMessage
				if err := json.Unmarshal(v, &msg); err != nil {
					// Log and keep scanning instead of aborting the dump
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				sentAt := "-"
				if msg.SentAt != nil {
					sentAt = msg.SentAt.Format("2006-01-02 15:04:05")
				}
				table.Append([]string{
					msg.ID.String(),
					msg.EventID.String(),
					string(msg.Type),
					string(msg.State),
					fmt.Sprintf("%d", msg.TotalRecipients),
					fmt.Sprintf("%d", msg.SuccessfulSends),
					fmt.Sprintf("%d", msg.FailedSends),
					sentAt,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
}
