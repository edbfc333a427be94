package main

// Sends a single datagram and prints every datagram forwarded back to the
// socket until interrupted.

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/spacewar/pkg/game/types"
	"github.com/cbodonnell/spacewar/pkg/messages"
)

func main() {
	serverAddr := flag.String("server", "127.0.0.1:5656", "Server address (host:port)")
	op := flag.String("op", "join", "Datagram to send: join or update")
	localPort := flag.Int("local-port", 0, "Local datagram port, use the one that was registered")
	senderIP := flag.String("ip", "127.0.0.1", "Sender address written into the datagram")
	x := flag.Int("x", 100, "Ship x")
	y := flag.Int("y", 100, "Ship y")
	heading := flag.Int("heading", 0, "Ship heading in degrees")
	flag.Parse()

	opCode := messages.OpCodeJoin
	switch *op {
	case "join":
	case "update":
		opCode = messages.OpCodeUpdateShip
	default:
		fmt.Println("Unknown datagram:", *op)
		os.Exit(2)
	}

	udpAddr, err := net.ResolveUDPAddr("udp4", *serverAddr)
	if err != nil {
		fmt.Println("Error resolving UDP address:", err)
		return
	}

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: *localPort})
	if err != nil {
		fmt.Println("Error opening UDP socket:", err)
		return
	}
	defer conn.Close()

	sender := types.NewClientIdentity(net.ParseIP(*senderIP), conn.LocalAddr().(*net.UDPAddr).Port)
	payload := messages.SerializeDatagram(&messages.Datagram{
		Sender:  sender,
		OpCode:  opCode,
		X:       int32(*x),
		Y:       int32(*y),
		Heading: int32(*heading),
	})
	if _, err := conn.WriteToUDP(payload, udpAddr); err != nil {
		fmt.Println("Error sending message to UDP server:", err)
		return
	}
	fmt.Printf("Sent %s as %s\n", opCode, sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func(conn *net.UDPConn, ctx context.Context) {
		buffer := make([]byte, 1024)

		for {
			n, _, err := conn.ReadFromUDP(buffer)
			if err != nil {
				// If the context is Done, then an error is expected
				if ctx.Err() != nil {
					return
				}
				fmt.Println("Error reading UDP message:", err)
				return
			}

			d, err := messages.DeserializeDatagram(buffer[:n])
			if err != nil {
				fmt.Println("Dropping datagram:", err)
				continue
			}
			fmt.Printf("Received %s from %s at (%d, %d) heading %d\n", d.OpCode, d.Sender, d.X, d.Y, d.Heading)
		}
	}(conn, ctx)

	// Gracefully handle Ctrl+C to stop the program
	stopSignal := make(chan os.Signal, 1)
	signal.Notify(stopSignal, os.Interrupt, syscall.SIGTERM)

	<-stopSignal
	fmt.Println("Received stop signal, exiting.")
}
