// Terminal staff dashboard: subscribes to a course's realtime order stream
// and prints new-order alerts the way the web dashboard shows them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/feed"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/ws"
)

func main() {
	var (
		baseURL  = flag.String("url", "ws://localhost:8000", "server websocket base URL")
		courseID = flag.Uint("course", 1, "course id to watch")
		token    = flag.String("token", "", "staff JWT")
	)
	flag.Parse()

	if *token == "" {
		log.Fatal("missing -token (staff JWT)")
	}

	f := feed.New()
	client, err := feed.Dial(*baseURL, uint(*courseID), *token)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	defer client.Close()

	go func() {
		err := client.Listen(f, func(ev ws.OrderEvent) {
			printEvent(f, ev)
		})
		// no backfill on reconnect: operator restarts and re-fetches
		log.Fatalf("stream closed: %v (restart to resubscribe and refresh)", err)
	}()

	fmt.Printf("watching course %d — %d unread\n", *courseID, f.Unread())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("bye")
}

func printEvent(f *feed.Feed, ev ws.OrderEvent) {
	if ev.Order == nil {
		return
	}
	switch ev.Type {
	case ws.EventInsert:
		hole := "clubhouse"
		if ev.Order.HoleNumber != nil {
			hole = fmt.Sprintf("hole #%d", *ev.Order.HoleNumber)
		}
		fmt.Printf("[%s] NEW ORDER #%d — %s — %d unread\n",
			time.Now().Format("15:04:05"), ev.Order.ID, hole, f.Unread())
		// emulate tap-to-dismiss: show, then advance the queue
		if cur := f.Overlay(); cur != nil {
			fmt.Printf("  alert: order #%d (enter to dismiss)\n", cur.ID)
		}
	case ws.EventUpdate:
		fmt.Printf("[%s] order #%d → %s\n",
			time.Now().Format("15:04:05"), ev.Order.ID, ev.Order.FulfillmentStatus)
	}
}
