// File: database/repository/session/queries.go
package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"tutorbase/models"

	"go.mongodb.org/mongo-driver/bson"
)

// dayRange returns the [midnight, next-midnight) bounds for a calendar day.
func dayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// List returns every session record.
func (r *mongoSessionRepo) List(ctx context.Context) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

// ListByDate returns every session falling on the given calendar day.
func (r *mongoSessionRepo) ListByDate(ctx context.Context, day time.Time) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start, end := dayRange(day)
	cursor, err := r.coll.Find(ctx, bson.M{"date": bson.M{"$gte": start, "$lt": end}})
	if err != nil {
		return nil, fmt.Errorf("error listing sessions for %s: %w", start.Format("2006-01-02"), err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

// ListByTrainerAndDate returns a trainer's sessions on the given day.
func (r *mongoSessionRepo) ListByTrainerAndDate(ctx context.Context, trainerID string, day time.Time) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start, end := dayRange(day)
	filter := bson.M{
		"trainerId": trainerID,
		"date":      bson.M{"$gte": start, "$lt": end},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions for trainer %s: %w", trainerID, err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding sessions: %w", err)
	}
	return sessions, nil
}

// CountByKind aggregates non-cancelled session counts per kind for one
// calendar day. The generator uses these to honor per-kind caps across
// repeated runs.
func (r *mongoSessionRepo) CountByKind(ctx context.Context, day time.Time) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start, end := dayRange(day)
	pipeline := []bson.M{
		{"$match": bson.M{
			"date":   bson.M{"$gte": start, "$lt": end},
			"status": bson.M{"$ne": models.SessionCancelled},
		}},
		{"$group": bson.M{
			"_id":   "$sessionType",
			"count": bson.M{"$sum": 1},
		}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error counting sessions by kind: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Kind  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding kind counts: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}
	return counts, nil
}
