package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

const (
	leaderboardKey      = "dalilscan:leaderboard"
	leaderboardNamesKey = "dalilscan:leaderboard:names"
)

// LeaderboardService ranks users by gamification points in a Redis sorted
// set. Score writes follow the session-store rule: best-effort, logged,
// never surfaced.
type LeaderboardService struct {
	rdb *redis.Client
}

func NewLeaderboardService(rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{rdb: rdb}
}

// SetScore records the user's current points and display name.
func (s *LeaderboardService) SetScore(ctx context.Context, userID uuid.UUID, name string, points int) {
	if s == nil || s.rdb == nil {
		return
	}
	member := userID.String()
	if err := s.rdb.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(points), Member: member}).Err(); err != nil {
		log.Printf("[Leaderboard] Failed to record score for %s: %v", userID, err)
		return
	}
	if err := s.rdb.HSet(ctx, leaderboardNamesKey, member, name).Err(); err != nil {
		log.Printf("[Leaderboard] Failed to record name for %s: %v", userID, err)
	}
}

// Top returns the highest-scoring users, best first.
func (s *LeaderboardService) Top(ctx context.Context, n int64) ([]types.LeaderboardEntry, error) {
	if s == nil || s.rdb == nil {
		return []types.LeaderboardEntry{}, nil
	}

	scores, err := s.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]types.LeaderboardEntry, 0, len(scores))
	for i, z := range scores {
		member, _ := z.Member.(string)
		name, err := s.rdb.HGet(ctx, leaderboardNamesKey, member).Result()
		if err != nil && err != redis.Nil {
			return nil, fmt.Errorf("failed to resolve leaderboard name: %w", err)
		}
		entries = append(entries, types.LeaderboardEntry{
			Rank:   i + 1,
			Name:   name,
			Points: int(z.Score),
		})
	}
	return entries, nil
}
