package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"TurtleTrace/internal/command"
	"TurtleTrace/internal/export"
	livenet "TurtleTrace/internal/net"
	"TurtleTrace/internal/session"
	"TurtleTrace/internal/ui"
)

func main() {
	svgOut := flag.String("svg", "", "write the final drawing to this SVG file")
	pdfOut := flag.String("pdf", "", "write the final drawing to this PDF file")
	serve := flag.Bool("serve", false, "serve a live websocket view and keep reading commands from stdin")
	port := flag.Int("port", 8787, "port for the live view server")
	announce := flag.Bool("mdns", false, "advertise the live view on the local network")
	view := flag.Bool("view", false, "open a desktop viewer on the final drawing")
	flag.Parse()

	sess := session.New()
	disp := command.New(sess)
	log.Printf("[session] %s started", sess.ID)

	var srv *livenet.Server
	if *serve {
		srv = livenet.NewServer(sess.Canvas.Export)
		go func() {
			if err := srv.ListenAndServe(*port); err != nil {
				log.Fatalf("[live] server failed: %v", err)
			}
		}()
		log.Printf("[live] view at ws://%s:%d/live", livenet.OutgoingIP(), *port)

		if *announce {
			mdnsServer, err := livenet.Advertise(*port)
			if err != nil {
				log.Printf("[live] mDNS advertise failed: %v", err)
			} else {
				defer mdnsServer.Shutdown()
			}
		}
	}

	if script := flag.Arg(0); script != "" {
		f, err := os.Open(script)
		if err != nil {
			log.Fatalf("[run] %v", err)
		}
		runCommands(f, disp, srv)
		f.Close()
	}

	// With no script, or when serving, commands come from stdin.
	if flag.Arg(0) == "" || *serve {
		runCommands(os.Stdin, disp, srv)
	}

	drawing := sess.Canvas.Export()
	if *svgOut != "" {
		if err := export.ExportSVG(*svgOut, drawing); err != nil {
			log.Fatalf("[export] svg: %v", err)
		}
		log.Printf("[export] wrote %s", *svgOut)
	}
	if *pdfOut != "" {
		if err := export.ExportPDF(*pdfOut, drawing); err != nil {
			log.Fatalf("[export] pdf: %v", err)
		}
		log.Printf("[export] wrote %s", *pdfOut)
	}

	if *view {
		ui.RunViewer(drawing)
	}
}

// runCommands feeds a stream of command lines to the dispatcher. Blank lines
// and comments are skipped; a failing line is reported and execution moves
// on. Each applied line refreshes connected live viewers.
func runCommands(r io.Reader, disp *command.Dispatcher, srv *livenet.Server) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		result, err := disp.Dispatch(line)
		if err != nil {
			log.Printf("[run] line %d: %v", lineNo, err)
			continue
		}
		if result != "" {
			fmt.Println(result)
		}
		if srv != nil {
			srv.Broadcast()
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[run] read failed after line %d: %v", lineNo, err)
	}
}
