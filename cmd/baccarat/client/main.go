package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

func printMenu() {
	pterm.DefaultSection.Println("Commands")
	pterm.Println("  login <username> <balance>")
	pterm.Println("  bet <amount> <username>")
	pterm.Println("  deal <B|P|D> <amount> <username>")
	pterm.Println("  exit")
	pterm.Println()
}

func main() {
	addr := flag.String("addr", "localhost:9090", "server address host:port")
	flag.Parse()

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("accarat", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		pterm.Error.Printfln("Failed to connect to %s: %v", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()
	pterm.Success.Printfln("Connected to %s", *addr)

	// Server responses are printed as they arrive
	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			pterm.Info.Printfln("SERVER: %s", scanner.Text())
		}
	}()

	printMenu()

	stdin := bufio.NewScanner(os.Stdin)
	writer := bufio.NewWriter(conn)
	for {
		fmt.Print(">>> ")
		if !stdin.Scan() {
			break
		}
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			continue
		}

		// The wire protocol is pipe-delimited
		command := strings.ReplaceAll(line, " ", "|")
		writer.WriteString(command)
		writer.WriteString("\n")
		if err := writer.Flush(); err != nil {
			pterm.Error.Printfln("Failed to send command: %v", err)
			break
		}

		if strings.EqualFold(strings.SplitN(command, "|", 2)[0], "exit") {
			<-done
			break
		}
	}

	pterm.Println()
	pterm.Info.Println("Goodbye!")
}
