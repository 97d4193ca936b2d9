package repository

import (
	"context"
	"time"

	"github.com/guttosm/trace-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogEntryDocument is the stored form of a request or audit log entry.
type LogEntryDocument struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty"`
	Timestamp   time.Time              `bson:"timestamp"`
	Level       string                 `bson:"level"`
	Message     string                 `bson:"message"`
	RequestID   string                 `bson:"request_id,omitempty"`
	Method      string                 `bson:"method,omitempty"`
	Path        string                 `bson:"path,omitempty"`
	StatusCode  int                    `bson:"status_code,omitempty"`
	Duration    int64                  `bson:"duration_ms,omitempty"`
	IP          string                 `bson:"ip,omitempty"`
	UserAgent   string                 `bson:"user_agent,omitempty"`
	Error       string                 `bson:"error,omitempty"`
	Actor       string                 `bson:"actor,omitempty"`
	Action      string                 `bson:"action,omitempty"`
	OrderNumber string                 `bson:"order_number,omitempty"`
	Fields      map[string]interface{} `bson:"fields,omitempty"`
}

// NewLogEntryDocument converts a domain log entry for storage.
func NewLogEntryDocument(e *model.LogEntry) *LogEntryDocument {
	return &LogEntryDocument{
		Timestamp:   e.Timestamp,
		Level:       e.Level,
		Message:     e.Message,
		RequestID:   e.RequestID,
		Method:      e.Method,
		Path:        e.Path,
		StatusCode:  e.StatusCode,
		Duration:    e.Duration,
		IP:          e.IP,
		UserAgent:   e.UserAgent,
		Error:       e.Error,
		Actor:       e.Actor,
		Action:      e.Action,
		OrderNumber: e.OrderNumber,
		Fields:      e.Fields,
	}
}

// ToModel converts the document to the domain type.
func (d *LogEntryDocument) ToModel() *model.LogEntry {
	return &model.LogEntry{
		ID:          d.ID.Hex(),
		Timestamp:   d.Timestamp,
		Level:       d.Level,
		Message:     d.Message,
		RequestID:   d.RequestID,
		Method:      d.Method,
		Path:        d.Path,
		StatusCode:  d.StatusCode,
		Duration:    d.Duration,
		IP:          d.IP,
		UserAgent:   d.UserAgent,
		Error:       d.Error,
		Actor:       d.Actor,
		Action:      d.Action,
		OrderNumber: d.OrderNumber,
		Fields:      d.Fields,
	}
}

// LogsRepository stores log entries in MongoDB.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{
		collection: db.Logs,
	}
}

func prepare(entry *LogEntryDocument) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}

// Create inserts a new log entry document.
func (r *LogsRepository) Create(ctx context.Context, entry *LogEntryDocument) error {
	prepare(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts multiple log entry documents in bulk.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		prepare(entry)
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func logFilter(opts model.LogQueryOptions) bson.M {
	filter := bson.M{}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if opts.Action != "" {
		filter["action"] = opts.Action
	}
	if opts.OrderNumber != "" {
		filter["order_number"] = opts.OrderNumber
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}

// Query returns entries matching opts, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts model.LogQueryOptions) ([]*LogEntryDocument, error) {
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, logFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*LogEntryDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of entries matching opts.
func (r *LogsRepository) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, logFilter(opts))
}
