//go:build ignore

// Publishes a detour evaluation request and waits for the result.
//
//	go run scripts/test_publish.go -redis localhost:6379 -cap 1
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type stop struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RealStop bool    `json:"realStop"`
}

type evaluateEvent struct {
	RequestID uuid.UUID  `json:"request_id"`
	LineID    *uuid.UUID `json:"line_id,omitempty"`
	Stops     []stop     `json:"stops,omitempty"`
	Cap       int        `json:"cap"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	lineID := flag.String("line", "", "evaluate a stored line instead of the sample stops")
	detourCap := flag.Int("cap", 1, "cap of the evaluation")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := evaluateEvent{
		RequestID: uuid.New(),
		Cap:       *detourCap,
	}
	if *lineID != "" {
		id, err := uuid.Parse(*lineID)
		if err != nil {
			log.Fatalf("Invalid line ID: %v", err)
		}
		event.LineID = &id
	} else {
		// Würzburg, tram line 1 (excerpt)
		event.Stops = []stop{
			{Name: "Grombühl", Lat: 49.80530, Lng: 9.94820, RealStop: true},
			{Name: "Wagnerplatz", Lat: 49.80210, Lng: 9.94270, RealStop: true},
			{Lat: 49.80120, Lng: 9.93850},
			{Name: "Hauptbahnhof", Lat: 49.80150, Lng: 9.93560, RealStop: true},
			{Name: "Juliuspromenade", Lat: 49.79790, Lng: 9.93270, RealStop: true},
			{Name: "Dom", Lat: 49.79330, Lng: 9.93090, RealStop: true},
			{Name: "Sanderring", Lat: 49.78760, Lng: 9.93470, RealStop: true},
		}
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:detour:evaluate",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: stream:detour:evaluate\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Stops: %d, cap: %d\n", len(event.Stops), event.Cap)

	fmt.Printf("\nWaiting for response in stream:detour:done...\n")

	timeout := time.After(60 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:detour:done", "0"},
				Count:   100,
				Block:   -1,
			}).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if id, ok := response["request_id"].(string); ok && id == event.RequestID.String() {
						fmt.Printf("\nResponse received\n")
						prettyJSON, _ := json.MarshalIndent(response, "", "  ")
						fmt.Printf("%s\n", prettyJSON)
						return
					}
				}
			}
		}
	}
}
