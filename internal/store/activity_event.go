package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lingua/ent"
	"github.com/abhisek/lingua/ent/activityevent"
)

func (r *eventRepo) AppendActivityEvent(ctx context.Context, data ActivityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetKind(data.Kind).
		SetModuleID(data.ModuleID).
		SetItemID(data.ItemID).
		SetTitle(data.Title).
		SetMinutes(data.Minutes)

	if data.Score != nil {
		builder = builder.SetScore(*data.Score)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryActivityEvents(ctx context.Context, opts QueryOpts) ([]ActivityEventRecord, error) {
	query := r.client.ActivityEvent.Query().
		Order(ent.Desc(activityevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(activityevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(activityevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(activityevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(activityevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}

	records := make([]ActivityEventRecord, len(events))
	for i, e := range events {
		records[i] = ActivityEventRecord{
			ActivityEventData: ActivityEventData{
				Kind:     e.Kind,
				ModuleID: e.ModuleID,
				ItemID:   e.ItemID,
				Title:    e.Title,
				Score:    e.Score,
				Minutes:  e.Minutes,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) ActivityByDay(ctx context.Context, days int) ([]DayCount, error) {
	if days <= 0 {
		return nil, nil
	}

	today := midnight(time.Now())
	from := today.AddDate(0, 0, -(days - 1))

	events, err := r.client.ActivityEvent.Query().
		Where(activityevent.TimestampGTE(from)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity by day: %w", err)
	}

	// Keyed by formatted date, not time.Time: stored timestamps come back
	// from SQLite in UTC while the buckets are built in local time, and ==
	// on time.Time distinguishes locations that Equal does not.
	byDay := make(map[string]*DayCount, days)
	counts := make([]DayCount, days)
	for i := range counts {
		counts[i].Day = from.AddDate(0, 0, i)
		byDay[counts[i].Day.Format(time.DateOnly)] = &counts[i]
	}

	for _, e := range events {
		dc := byDay[e.Timestamp.In(time.Local).Format(time.DateOnly)]
		if dc == nil {
			continue
		}
		switch e.Kind {
		case ActivityLesson:
			dc.Lessons++
		case ActivityQuiz:
			dc.Quizzes++
		}
	}
	return counts, nil
}

// midnight truncates t to the start of its calendar day in local time.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
