package repository

import (
	"context"
	"errors"
	"time"

	"wheelworks/internal/domain/entities"
	"wheelworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type wheelDetailsItem struct {
	Size       string `dynamodbav:"size,omitempty"`
	PaintColor string `dynamodbav:"paint_color,omitempty"`
}

type tyreDetailsItem struct {
	VehicleType     string `dynamodbav:"vehicle_type,omitempty"`
	TyreCount       int    `dynamodbav:"tyre_count,omitempty"`
	TyreSize        string `dynamodbav:"tyre_size,omitempty"`
	WheelsOnly      bool   `dynamodbav:"wheels_only"`
	CurrentTyres    string `dynamodbav:"current_tyres,omitempty"`
	PreferredBrands string `dynamodbav:"preferred_brands,omitempty"`
}

// Timestamps are stored as RFC3339Nano strings so lexicographic comparison in
// filter expressions matches chronological order.
type quoteItem struct {
	ID               string            `dynamodbav:"id"`
	Name             string            `dynamodbav:"name"`
	Email            string            `dynamodbav:"email"`
	Phone            string            `dynamodbav:"phone"`
	Location         string            `dynamodbav:"location"`
	Distance         *float64          `dynamodbav:"distance,omitempty"`
	PreferredContact string            `dynamodbav:"preferred_contact,omitempty"`
	Service          string            `dynamodbav:"service"`
	ServiceTypes     []string          `dynamodbav:"service_types"`
	WheelCount       *int              `dynamodbav:"wheel_count,omitempty"`
	WheelDetails     *wheelDetailsItem `dynamodbav:"wheel_details,omitempty"`
	TyreDetails      *tyreDetailsItem  `dynamodbav:"tyre_details,omitempty"`
	HasPhotos        bool              `dynamodbav:"has_photos"`
	PhotoCount       int               `dynamodbav:"photo_count"`
	Notes            string            `dynamodbav:"notes,omitempty"`
	SubmittedAt      string            `dynamodbav:"submitted_at,omitempty"`
	CreatedAt        string            `dynamodbav:"created_at"`
	Status           string            `dynamodbav:"status"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Reads for the dashboard scan the whole collection; the business sees a few
// dozen quotes a month, so a scan stays well under a single page.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	return r.scan(ctx, nil)
}

func (r *QuoteDynamoRepository) ListCreatedSince(ctx context.Context, cutoff time.Time) ([]entities.Quote, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		FilterExpression: aws.String("#created_at >= :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cutoff": &types.AttributeValueMemberS{Value: cutoff.UTC().Format(time.RFC3339Nano)},
		},
	})
}

func (r *QuoteDynamoRepository) scan(ctx context.Context, template *dynamodb.ScanInput) ([]entities.Quote, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if template != nil {
		input.FilterExpression = template.FilterExpression
		input.ExpressionAttributeNames = template.ExpressionAttributeNames
		input.ExpressionAttributeValues = template.ExpressionAttributeValues
	}

	var quotes []entities.Quote
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}

		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

// UpdateStatusByID is a single unconditional field write apart from the
// item-existence check; concurrent dashboard sessions last-write-wins.
func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:               q.ID,
		Name:             q.Name,
		Email:            q.Email,
		Phone:            q.Phone,
		Location:         q.Location,
		Distance:         q.Distance,
		PreferredContact: q.PreferredContact,
		Service:          q.Service,
		ServiceTypes:     q.ServiceTypes,
		WheelCount:       q.WheelCount,
		HasPhotos:        q.HasPhotos,
		PhotoCount:       q.PhotoCount,
		Notes:            q.Notes,
		CreatedAt:        q.CreatedAt.UTC().Format(time.RFC3339Nano),
		Status:           string(q.Status),
	}
	if q.SubmittedAt != nil {
		it.SubmittedAt = q.SubmittedAt.UTC().Format(time.RFC3339Nano)
	}
	if q.WheelDetails != nil {
		it.WheelDetails = &wheelDetailsItem{
			Size:       q.WheelDetails.Size,
			PaintColor: q.WheelDetails.PaintColor,
		}
	}
	if q.TyreDetails != nil {
		it.TyreDetails = &tyreDetailsItem{
			VehicleType:     q.TyreDetails.VehicleType,
			TyreCount:       q.TyreDetails.TyreCount,
			TyreSize:        q.TyreDetails.TyreSize,
			WheelsOnly:      q.TyreDetails.WheelsOnly,
			CurrentTyres:    q.TyreDetails.CurrentTyres,
			PreferredBrands: q.TyreDetails.PreferredBrands,
		}
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	q := entities.Quote{
		ID:               it.ID,
		Name:             it.Name,
		Email:            it.Email,
		Phone:            it.Phone,
		Location:         it.Location,
		Distance:         it.Distance,
		PreferredContact: it.PreferredContact,
		Service:          it.Service,
		ServiceTypes:     it.ServiceTypes,
		WheelCount:       it.WheelCount,
		HasPhotos:        it.HasPhotos,
		PhotoCount:       it.PhotoCount,
		Notes:            it.Notes,
		CreatedAt:        createdAt,
		Status:           entities.QuoteStatus(it.Status),
	}
	if it.SubmittedAt != "" {
		if submittedAt, err := time.Parse(time.RFC3339Nano, it.SubmittedAt); err == nil {
			q.SubmittedAt = &submittedAt
		}
	}
	if it.WheelDetails != nil {
		q.WheelDetails = &entities.WheelDetails{
			Size:       it.WheelDetails.Size,
			PaintColor: it.WheelDetails.PaintColor,
		}
	}
	if it.TyreDetails != nil {
		q.TyreDetails = &entities.TyreDetails{
			VehicleType:     it.TyreDetails.VehicleType,
			TyreCount:       it.TyreDetails.TyreCount,
			TyreSize:        it.TyreDetails.TyreSize,
			WheelsOnly:      it.TyreDetails.WheelsOnly,
			CurrentTyres:    it.TyreDetails.CurrentTyres,
			PreferredBrands: it.TyreDetails.PreferredBrands,
		}
	}
	return q
}
