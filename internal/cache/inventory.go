package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix   = "user:%d"
	BrowseKeyPrefix = "users:browse:%s"
	BroadcastsKey   = "broadcasts:active"
)

const (
	UserTTL       = 5 * time.Minute
	BrowseTTL     = 2 * time.Minute
	BroadcastsTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// BrowseKey identifies a cached browse-users listing; filter is the
// skill-name substring filter ("" for the unfiltered listing).
func BrowseKey(filter string) string {
	return fmt.Sprintf(BrowseKeyPrefix, filter)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateBrowse drops every cached browse listing. Filtered listings share
// the common prefix so a SCAN walks them all.
func InvalidateBrowse(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "users:browse:*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

func InvalidateBroadcasts(ctx context.Context) {
	Invalidate(ctx, BroadcastsKey)
}
