// Package mongostore provides a MongoDB-backed agenda storage implementation.
//
// Agendas live in the agendas collection keyed by a numeric _id handed out
// by the counters collection, with a unique index on name.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	apperrors "github.com/pestebani/tonic-server/internal/platform/errors"
	"github.com/pestebani/tonic-server/internal/platform/grpc/pagination"
	"github.com/pestebani/tonic-server/internal/platform/timeouts"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage"
)

const (
	// DefaultURL is used when no database URL is configured.
	DefaultURL = "mongodb://localhost:27017/agenda"
	// DefaultDatabase is used when the URL names no database.
	DefaultDatabase = "agenda"

	colCounters = "counters"
)

// Store persists agenda records in MongoDB.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

type agendaDocument struct {
	ID    int64  `bson:"_id"`
	Name  string `bson:"name"`
	Email string `bson:"email"`
	Phone string `bson:"phone"`
}

type counterDocument struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// Open connects to uri and uses the database named in its path.
func Open(uri string) (*Store, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		uri = DefaultURL
	}
	database, err := databaseName(uri)
	if err != nil {
		return nil, err
	}
	return OpenDatabase(uri, database)
}

// OpenDatabase connects to uri and uses database. The driver connects
// lazily; Initialize verifies reachability.
func OpenDatabase(uri, database string) (*Store, error) {
	if strings.TrimSpace(database) == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return &Store{client: client, db: client.Database(database)}, nil
}

func databaseName(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse mongo url: %w", err)
	}
	name := strings.Trim(parsed.Path, "/")
	if name == "" {
		return DefaultDatabase, nil
	}
	return name, nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) agendas() *mongo.Collection {
	return s.db.Collection(storage.TableName)
}

// Initialize pings the server and ensures the unique name index exists.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := s.client.Ping(ctx, nil); err != nil {
		return wrapError(err, "")
	}
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(storage.NameUniqueConstraint),
	}
	if _, err := s.agendas().Indexes().CreateOne(ctx, model); err != nil {
		return wrapError(err, "")
	}
	return nil
}

// GetAgenda returns one agenda by id.
func (s *Store) GetAgenda(ctx context.Context, id int64) (storage.Agenda, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Agenda{}, err
	}
	var doc agendaDocument
	if err := s.agendas().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return storage.Agenda{}, apperrors.NotFound(id)
		}
		return storage.Agenda{}, wrapError(err, "")
	}
	return doc.agenda(), nil
}

// ListAgendas returns one page of agendas ordered by id. The page and the
// collection total come from one aggregation.
func (s *Store) ListAgendas(ctx context.Context, page, pageSize int64) (storage.AgendaPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.AgendaPage{}, err
	}
	window := pagination.NewWindow(page, pageSize)
	if window.Unreachable {
		total, err := s.agendas().CountDocuments(ctx, bson.D{})
		if err != nil {
			return storage.AgendaPage{}, wrapError(err, "")
		}
		return storage.AgendaPage{Agendas: []storage.Agenda{}, Total: total}, nil
	}

	cursor, err := s.agendas().Aggregate(ctx, listPipeline(window))
	if err != nil {
		return storage.AgendaPage{}, wrapError(err, "")
	}
	defer cursor.Close(ctx)

	var facet pageFacet
	if cursor.Next(ctx) {
		if err := cursor.Decode(&facet); err != nil {
			return storage.AgendaPage{}, wrapError(err, "")
		}
	}
	if err := cursor.Err(); err != nil {
		return storage.AgendaPage{}, wrapError(err, "")
	}

	result := storage.AgendaPage{Agendas: make([]storage.Agenda, 0, len(facet.Agendas))}
	for _, doc := range facet.Agendas {
		result.Agendas = append(result.Agendas, doc.agenda())
	}
	if len(facet.Total) > 0 {
		result.Total = facet.Total[0].Count
	}
	result.NextPage = window.NextPage(result.Total)
	return result, nil
}

// pageFacet is the single document produced by listPipeline.
type pageFacet struct {
	Total   []facetCount     `bson:"total"`
	Agendas []agendaDocument `bson:"agendas"`
}

type facetCount struct {
	Count int64 `bson:"count"`
}

// listPipeline counts the collection and slices one window of it, ordered
// by _id, in a single $facet stage.
func listPipeline(window pagination.Window) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$facet", Value: bson.D{
			{Key: "total", Value: bson.A{
				bson.D{{Key: "$count", Value: "count"}},
			}},
			{Key: "agendas", Value: bson.A{
				bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
				bson.D{{Key: "$skip", Value: window.Offset}},
				bson.D{{Key: "$limit", Value: window.Size}},
			}},
		}}},
	}
}

// CreateAgenda stores agenda under the next counter value.
func (s *Store) CreateAgenda(ctx context.Context, agenda storage.Agenda) (storage.Agenda, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Agenda{}, err
	}
	id, err := s.nextID(ctx)
	if err != nil {
		return storage.Agenda{}, err
	}
	doc := agendaDocument{ID: id, Name: agenda.Name, Email: agenda.Email, Phone: agenda.Phone}
	if _, err := s.agendas().InsertOne(ctx, doc); err != nil {
		return storage.Agenda{}, wrapError(err, agenda.Name)
	}
	return doc.agenda(), nil
}

// UpdateAgenda replaces the fields of agenda id and returns the stored record.
func (s *Store) UpdateAgenda(ctx context.Context, id int64, agenda storage.Agenda) (storage.Agenda, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Agenda{}, err
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: agenda.Name},
		{Key: "email", Value: agenda.Email},
		{Key: "phone", Value: agenda.Phone},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc agendaDocument
	err := s.agendas().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return storage.Agenda{}, apperrors.NotFound(id)
		}
		return storage.Agenda{}, wrapError(err, agenda.Name)
	}
	return doc.agenda(), nil
}

// DeleteAgenda removes agenda id.
func (s *Store) DeleteAgenda(ctx context.Context, id int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	res, err := s.agendas().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return wrapError(err, "")
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFound(id)
	}
	return nil
}

func (s *Store) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var counter counterDocument
	err := s.db.Collection(colCounters).FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: storage.TableName}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, wrapError(err, "")
	}
	return counter.Seq, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Unknown(err)
	}
	if s == nil || s.client == nil || s.db == nil {
		return apperrors.Unknown(errors.New("storage is not configured"))
	}
	return nil
}

func (d agendaDocument) agenda() storage.Agenda {
	return storage.Agenda{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone}
}

// wrapError converts a driver error into the taxonomy. name is the agenda
// name involved in a write.
func wrapError(err error, name string) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		if strings.Contains(err.Error(), storage.NameUniqueConstraint) {
			return apperrors.NameAlreadyExists(name, err)
		}
		return apperrors.AlreadyExists(err.Error(), err)
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return apperrors.Connection(err)
	}
	return apperrors.Unknown(err)
}

var _ storage.AgendaStore = (*Store)(nil)
