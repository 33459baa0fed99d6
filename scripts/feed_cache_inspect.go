// +build ignore

// Утилита для просмотра и очистки кеша фида в Redis.
//
// Примеры:
//
//	go run scripts/feed_cache_inspect.go -addr localhost:6379
//	go run scripts/feed_cache_inspect.go -addr localhost:6379 -flush
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

func main() {
	addr := flag.String("addr", "localhost:6379", "Redis address")
	password := flag.String("password", "", "Redis password")
	db := flag.Int("db", 0, "Redis database")
	flush := flag.Bool("flush", false, "Delete all cached feeds")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr:     *addr,
		Password: *password,
		DB:       *db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	keys, err := client.Keys(ctx, "feed:*").Result()
	if err != nil {
		log.Fatalf("Failed to list feed keys: %v", err)
	}

	if *flush {
		if len(keys) == 0 {
			fmt.Println("No cached feeds to delete")
			return
		}
		deleted, err := client.Del(ctx, keys...).Result()
		if err != nil {
			log.Fatalf("Failed to delete feed keys: %v", err)
		}
		fmt.Printf("Deleted %d cached feeds\n", deleted)
		return
	}

	fmt.Printf("Cached feeds: %d\n", len(keys))
	for _, key := range keys {
		ttl, _ := client.TTL(ctx, key).Result()

		raw, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("  %s (ttl=%s) read error: %v\n", key, ttl, err)
			continue
		}

		var feed struct {
			Popular     []json.RawMessage `json:"popular"`
			Recommended []json.RawMessage `json:"recommended"`
		}
		if err := json.Unmarshal(raw, &feed); err != nil {
			fmt.Printf("  %s (ttl=%s) decode error: %v\n", key, ttl, err)
			continue
		}

		fmt.Printf("  %s (ttl=%s) popular=%d recommended=%d\n",
			key, ttl, len(feed.Popular), len(feed.Recommended))
	}
}
