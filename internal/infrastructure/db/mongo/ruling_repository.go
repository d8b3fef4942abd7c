package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/resolvia/dispute-portal/internal/core/domain"
	"github.com/resolvia/dispute-portal/internal/core/ports"
)

const rulingCollection = "rulings"

// Only final decisions are published; interim orders stay internal.
const finalDecisionType = "final_decision"

type MongoRulingRepository struct {
	coll *mongo.Collection
}

func NewRulingRepository(db *mongo.Database) *MongoRulingRepository {
	return &MongoRulingRepository{coll: db.Collection(rulingCollection)}
}

type mongoRuling struct {
	OrderNumber          string    `bson:"order_number"`
	OrderType            string    `bson:"order_type"`
	CaseNumber           string    `bson:"case_number"`
	Category             string    `bson:"category,omitempty"`
	Status               string    `bson:"status"`
	FiledDate            time.Time `bson:"filed_date"`
	IssuedDate           time.Time `bson:"issued_date"`
	ClaimAmount          float64   `bson:"claim_amount,omitempty"`
	CaseDescription      string    `bson:"case_description,omitempty"`
	Content              string    `bson:"content"`
	PDFPath              string    `bson:"pdf_path,omitempty"`
	AdjudicatorFirstName string    `bson:"adjudicator_first_name,omitempty"`
	AdjudicatorLastName  string    `bson:"adjudicator_last_name,omitempty"`
}

func (r *MongoRulingRepository) List(ctx context.Context, q ports.RulingQuery) ([]domain.Ruling, int64, error) {
	filter := bson.M{"order_type": finalDecisionType}
	if q.Category != "" {
		filter["category"] = q.Category
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, &domain.StorageError{Op: "count rulings", Err: err}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "issued_date", Value: -1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, &domain.StorageError{Op: "list rulings", Err: err}
	}
	defer cur.Close(ctx)

	var rulings []domain.Ruling
	for cur.Next(ctx) {
		var mr mongoRuling
		if err := cur.Decode(&mr); err != nil {
			return nil, 0, &domain.StorageError{Op: "decode ruling", Err: err}
		}
		rulings = append(rulings, toDomainRuling(&mr))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, &domain.StorageError{Op: "iterate rulings", Err: err}
	}
	return rulings, total, nil
}

func (r *MongoRulingRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Ruling, error) {
	var mr mongoRuling
	filter := bson.M{"order_number": orderNumber, "order_type": finalDecisionType}
	if err := r.coll.FindOne(ctx, filter).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRulingNotFound
		}
		return nil, &domain.StorageError{Op: "find ruling", Err: err}
	}
	ruling := toDomainRuling(&mr)
	return &ruling, nil
}

func toDomainRuling(mr *mongoRuling) domain.Ruling {
	return domain.Ruling{
		OrderNumber:          mr.OrderNumber,
		CaseNumber:           mr.CaseNumber,
		Category:             mr.Category,
		Status:               mr.Status,
		FiledDate:            mr.FiledDate.UTC(),
		IssuedDate:           mr.IssuedDate.UTC(),
		ClaimAmount:          mr.ClaimAmount,
		CaseDescription:      mr.CaseDescription,
		Content:              mr.Content,
		PDFPath:              mr.PDFPath,
		AdjudicatorFirstName: mr.AdjudicatorFirstName,
		AdjudicatorLastName:  mr.AdjudicatorLastName,
	}
}
