package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"calchistory/internal/domain"
	"calchistory/internal/ports"
)

var (
	_ ports.ICalculationStore = (*CalculationStore)(nil)
	_ ports.IPinger           = (*CalculationStore)(nil)
)

const counterID = "calculations"

// calculationDoc - документ в коллекции calculations. _id - числовой ID из счётчика.
type calculationDoc struct {
	ID        int64      `bson:"_id"`
	Left      float64    `bson:"left"`
	Right     float64    `bson:"right"`
	Operation string     `bson:"operation"`
	Result    float64    `bson:"result"`
	CreatedAt time.Time  `bson:"created_at"`
	UserID    string     `bson:"user_id"`
	IsActive  bool       `bson:"is_active"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty"`
}

type counterDoc struct {
	Seq int64 `bson:"seq"`
}

// CalculationStore реализует ports.ICalculationStore для MongoDB.
type CalculationStore struct {
	client *Client
	log    *slog.Logger
}

// NewCalculationStore возвращает хранилище вычислений.
func NewCalculationStore(client *Client, log *slog.Logger) *CalculationStore {
	return &CalculationStore{client: client, log: log}
}

// Save берёт следующий ID из счётчика и вставляет документ.
func (s *CalculationStore) Save(ctx context.Context, calc domain.Calculation) (domain.Calculation, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		s.log.Debug("Save next id failed", "error", err)
		return domain.Calculation{}, unavailable("next id", err)
	}
	calc.ID = id
	if _, err := s.client.Coll().InsertOne(ctx, toDoc(calc)); err != nil {
		s.log.Debug("Save failed", "error", err)
		return domain.Calculation{}, unavailable("save", err)
	}
	return calc, nil
}

// LoadAll выбирает документы по фильтру, порядок - по ID.
func (s *CalculationStore) LoadAll(ctx context.Context, filter domain.Filter) ([]domain.Calculation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.client.Coll().Find(ctx, filterDoc(filter), opts)
	if err != nil {
		s.log.Debug("LoadAll failed", "error", err)
		return nil, unavailable("load", err)
	}
	defer cursor.Close(ctx)

	var docs []calculationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, unavailable("load", err)
	}
	list := make([]domain.Calculation, 0, len(docs))
	for _, d := range docs {
		c, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (s *CalculationStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *CalculationStore) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var c counterDoc
	err := s.client.CountersColl().
		FindOneAndUpdate(ctx, bson.M{"_id": counterID}, bson.M{"$inc": bson.M{"seq": int64(1)}}, opts).
		Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.Seq, nil
}

// filterDoc переводит domain.Filter в запрос MongoDB.
func filterDoc(f domain.Filter) bson.D {
	q := bson.D{}
	if f.ActiveOnly {
		q = append(q, bson.E{Key: "is_active", Value: true})
	}
	if f.Operation != nil {
		q = append(q, bson.E{Key: "operation", Value: f.Operation.String()})
	}
	if r := f.ResultRange; r != nil {
		q = append(q, bson.E{Key: "result", Value: bson.D{{Key: "$gte", Value: r.Min}, {Key: "$lte", Value: r.Max}}})
	}
	if f.Operand != nil {
		q = append(q, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "left", Value: *f.Operand}},
			bson.D{{Key: "right", Value: *f.Operand}},
		}})
	}
	if f.UserID != "" {
		q = append(q, bson.E{Key: "user_id", Value: f.UserID})
	}
	return q
}

func toDoc(c domain.Calculation) calculationDoc {
	return calculationDoc{
		ID:        c.ID,
		Left:      c.Left,
		Right:     c.Right,
		Operation: c.Operation.String(),
		Result:    c.Result,
		CreatedAt: c.CreatedAt.UTC(),
		UserID:    c.UserID,
		IsActive:  c.IsActive,
		DeletedAt: c.DeletedAt,
	}
}

func (d calculationDoc) toDomain() (domain.Calculation, error) {
	op, err := domain.ParseOperation(d.Operation)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("calculation %d: %w", d.ID, err)
	}
	return domain.Calculation{
		ID:        d.ID,
		Left:      d.Left,
		Right:     d.Right,
		Operation: op,
		Result:    d.Result,
		CreatedAt: d.CreatedAt.UTC(),
		UserID:    d.UserID,
		IsActive:  d.IsActive,
		DeletedAt: d.DeletedAt,
	}, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: mongo %s: %v", domain.ErrStorageUnavailable, op, err)
}
