// Command dnsquery sends a single question to a server and prints the reply.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net"
	"os"
	"strings"
	"time"

	"github.com/sidharth1507/DNS-Server/pkg/dnswire"
)

var typesByName = map[string]dnswire.Type{
	"A":     dnswire.TYPE_A,
	"NS":    dnswire.TYPE_NS,
	"CNAME": dnswire.TYPE_CNAME,
	"SOA":   dnswire.TYPE_SOA,
	"PTR":   dnswire.TYPE_PTR,
	"MX":    dnswire.TYPE_MX,
	"TXT":   dnswire.TYPE_TXT,
	"AAAA":  dnswire.TYPE_AAAA,
}

func main() {
	server := flag.String("server", "127.0.0.1:2053", "Server address to query")
	qtype := flag.String("type", "A", "Record type (A, NS, CNAME, SOA, PTR, MX, TXT, AAAA)")
	timeout := flag.Duration("timeout", 3*time.Second, "Exchange timeout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <name>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	name := flag.Arg(0)

	recordType, ok := typesByName[strings.ToUpper(*qtype)]
	if !ok {
		log.Fatalf("Unknown record type: %s", *qtype)
	}

	query := dnswire.NewQuery(uint16(rand.Intn(0x10000)), name, recordType, dnswire.CLASS_IN)

	response, err := exchange(*server, query.Pack(), *timeout)
	if err != nil {
		log.Fatalf("Exchange with %s failed: %v", *server, err)
	}

	printResponse(response)
}

func exchange(server string, query []byte, timeout time.Duration) (*dnswire.Message, error) {
	conn, err := net.Dial("udp", server)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}

	if _, err := conn.Write(query); err != nil {
		return nil, err
	}

	buf := make([]byte, 4096)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, err
	}

	return dnswire.Unpack(buf[:n])
}

func printResponse(m *dnswire.Message) {
	h := m.Header
	fmt.Printf("id=%d opcode=%s rcode=%s qr=%v aa=%v tc=%v rd=%v ra=%v\n",
		h.ID, h.Flags.Opcode(), h.Flags.RCode(),
		h.Flags.QR(), h.Flags.AA(), h.Flags.TC(), h.Flags.RD(), h.Flags.RA())
	fmt.Printf("questions=%d answers=%d\n", h.QDCount, h.ANCount)

	for _, q := range m.Questions {
		fmt.Printf(";; %s %s %s\n", q.Name, q.Class, q.Type)
	}

	for _, r := range m.Answers {
		fmt.Printf("%s\t%d\t%s\t%s\t%s\n", r.Name, r.TTL, r.Class, r.Type, formatData(r))
	}
}

// formatData renders 4-byte A data as a dotted quad and anything else as hex
func formatData(r dnswire.Record) string {
	if r.Type == dnswire.TYPE_A && len(r.Data) == 4 {
		return net.IP(r.Data).String()
	}
	return hex.EncodeToString(r.Data)
}
