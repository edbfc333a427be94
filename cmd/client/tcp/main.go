package main

// Sends a single reliable request and prints what the server sends back.
// A register request keeps the connection open and prints removal notices
// until interrupted.

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/spacewar/pkg/messages"
)

func main() {
	serverAddr := flag.String("server", "127.0.0.1:5656", "Server address (host:port)")
	op := flag.String("op", "register", "Request to send: register, launch or exit")
	port := flag.Int("port", 0, "Datagram port of the sender")
	x := flag.Int("x", 0, "Launch x")
	y := flag.Int("y", 0, "Launch y")
	heading := flag.Int("heading", 0, "Launch heading in degrees")
	flag.Parse()

	req := &messages.Request{Port: int32(*port)}
	switch *op {
	case "register":
		req.OpCode = messages.OpCodeRegister
	case "launch":
		req.OpCode = messages.OpCodeLaunchTorpedo
		req.X, req.Y, req.Heading = int32(*x), int32(*y), int32(*heading)
	case "exit":
		req.OpCode = messages.OpCodeExit
	default:
		fmt.Println("Unknown request:", *op)
		os.Exit(2)
	}

	conn, err := net.Dial("tcp4", *serverAddr)
	if err != nil {
		fmt.Println("Error connecting to TCP server:", err)
		return
	}
	defer conn.Close()

	if _, err := conn.Write(messages.SerializeRequest(req)); err != nil {
		fmt.Println("Error sending request to TCP server:", err)
		return
	}
	fmt.Printf("Sent %s for port %d\n", req.OpCode, req.Port)
	if req.OpCode != messages.OpCodeRegister {
		return
	}

	obstacles, err := messages.ReadObstacles(conn)
	if err != nil {
		fmt.Println("Error reading obstacles:", err)
		return
	}
	fmt.Printf("Registered as %s, %d obstacles\n", conn.LocalAddr(), len(obstacles))
	for _, o := range obstacles {
		fmt.Printf("  obstacle (%d, %d)\n", o.X, o.Y)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func(conn net.Conn, cancel context.CancelFunc) {
		for {
			removal, err := messages.ReadRemoval(conn)
			if err != nil {
				fmt.Println("TCP server disconnected:", err)
				cancel()
				return
			}
			fmt.Println("Removed:", removal)
		}
	}(conn, cancel)

	// Gracefully handle Ctrl+C to stop the program
	stopSignal := make(chan os.Signal, 1)
	signal.Notify(stopSignal, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stopSignal:
		fmt.Println("Received stop signal, exiting.")
	case <-ctx.Done():
	}
}
