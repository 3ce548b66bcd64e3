package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type EventRepository interface {
	StoreEvent(ctx context.Context, event Event) error
	GetEvent(ctx context.Context, eventId string) (*Event, error)
	GetAllEvents(ctx context.Context) ([]Event, error)
	UpdateEvent(ctx context.Context, event Event) (bool, error)
	DeleteEvent(ctx context.Context, eventId string) (bool, error)
}

type EventRepositoryImpl struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepositoryImpl {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) StoreEvent(ctx context.Context, event Event) error {
	query := `INSERT INTO calendar_event (
                            uid,
                            title,
                            description,
                            location,
                            category,
                            event_date,
                            start_time,
                            end_time,
                            repeat_type,
                            repeat_interval,
                            notification_time
						) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.Category,
		event.Date,
		event.StartTime,
		event.EndTime,
		string(event.Repeat.Type),
		event.Repeat.Interval,
		event.NotificationTime,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}

	return nil
}

func (r *EventRepositoryImpl) GetEvent(ctx context.Context, eventId string) (*Event, error) {
	query := `SELECT uid, title, description, location, category, event_date, start_time, end_time,
                     repeat_type, repeat_interval, notification_time
              FROM calendar_event
              WHERE uid = ?`

	row := r.db.QueryRowContext(ctx, query, eventId)
	event, err := scanEvent(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		err := fmt.Errorf("could not scan row: %w", err)
		log.Error(err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) GetAllEvents(ctx context.Context) ([]Event, error) {
	query := `SELECT uid, title, description, location, category, event_date, start_time, end_time,
                     repeat_type, repeat_interval, notification_time
              FROM calendar_event
              ORDER BY event_date, start_time, uid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query calendar events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0, 10)
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) UpdateEvent(ctx context.Context, event Event) (bool, error) {
	query := `UPDATE calendar_event
              SET title = ?, description = ?, location = ?, category = ?, event_date = ?,
                  start_time = ?, end_time = ?, repeat_type = ?, repeat_interval = ?, notification_time = ?
              WHERE uid = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx,
		event.Title,
		event.Description,
		event.Location,
		event.Category,
		event.Date,
		event.StartTime,
		event.EndTime,
		string(event.Repeat.Type),
		event.Repeat.Interval,
		event.NotificationTime,
		event.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (r *EventRepositoryImpl) DeleteEvent(ctx context.Context, eventId string) (bool, error) {
	query := `DELETE FROM calendar_event WHERE uid = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, eventId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}
	return affected > 0, nil
}

func scanEvent(scan func(dest ...any) error) (Event, error) {
	var event Event
	var repeatType string
	err := scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.Category,
		&event.Date,
		&event.StartTime,
		&event.EndTime,
		&repeatType,
		&event.Repeat.Interval,
		&event.NotificationTime,
	)
	if err != nil {
		return Event{}, err
	}
	event.Repeat.Type = RepeatType(repeatType)
	return event, nil
}
