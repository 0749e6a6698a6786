// Command pgpdump inspects OpenPGP packet streams. It lists the packets in
// a binary or armored input and converts between the two encodings.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pgpkit/pgpwire"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: pgpdump <list|armor|dearmor> [args]")
	}

	switch os.Args[1] {
	case "list":
		listPackets(readInput(argOr(2, "-")))
	case "armor":
		if len(os.Args) < 3 {
			fatal("usage: pgpdump armor <block-type> [file]")
		}
		os.Stdout.Write(pgpwire.Armor(os.Args[2], nil, readInput(argOr(3, "-"))))
	case "dearmor":
		block, err := pgpwire.Unarmor(readInput(argOr(2, "-")))
		if err != nil {
			fatal("dearmor: %v", err)
		}
		os.Stdout.Write(block.Data)
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func listPackets(input []byte) {
	// Accept armored input transparently.
	if block, err := pgpwire.Unarmor(input); err == nil {
		fmt.Printf("armor: %s\n", block.Type)
		input = block.Data
	}

	offset := 0
	for len(input) > 0 {
		p, n, err := pgpwire.Parse(input)
		if err != nil {
			fatal("parse at offset %d: %v", offset, err)
		}
		describe(p, offset, n)
		input = input[n:]
		offset += n
	}
}

func describe(p pgpwire.Packet, offset, size int) {
	fmt.Printf("off=%d len=%d %s", offset, size, p.Tag())
	switch p := p.(type) {
	case *pgpwire.PublicKeyPacket:
		fmt.Printf(" v%d %s keyid %X", p.Version, p.Algorithm, p.KeyID())
	case *pgpwire.SecretKeyPacket:
		fmt.Printf(" v%d %s keyid %X", p.Version, p.Algorithm, p.KeyID())
	case *pgpwire.SignaturePacket:
		fmt.Printf(" v%d type 0x%02X %s %s", p.Version, p.SignatureType, p.PubKeyAlgo, p.HashAlgorithm)
		if crit := p.CriticalUnknown(); len(crit) > 0 {
			fmt.Printf(" (%d critical unknown subpackets)", len(crit))
		}
	case *pgpwire.UserIDPacket:
		fmt.Printf(" %q", p.ID)
	case *pgpwire.LiteralDataPacket:
		fmt.Printf(" format %q name %q %d bytes", p.Format, p.FileName, len(p.Data))
	case *pgpwire.CompressedDataPacket:
		fmt.Printf(" %s %d bytes", p.Algorithm, len(p.Data))
	case *pgpwire.UnknownPacket:
		fmt.Printf(" raw tag %d, %d bytes", p.RawTag, len(p.Data))
	}
	fmt.Println()
}

func readInput(path string) []byte {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fatal("read %s: %v", path, err)
	}
	return data
}

func argOr(i int, def string) string {
	if len(os.Args) > i {
		return os.Args[i]
	}
	return def
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
