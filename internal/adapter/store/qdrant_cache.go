package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"halalassist-core/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// scoreThreshold is deliberately strict: a wrong cached verdict is worse
// than a slow fresh one.
const scoreThreshold = float32(0.90)

// QdrantCache is a semantic answer cache for the analyzer. Entries expire by
// a 24h freshness filter rather than deletion; this is a transient cache, not
// a certification record store.
type QdrantCache struct {
	client         *qdrant.Client
	collectionName string
}

func NewQdrantCache(client *qdrant.Client, collectionName string) *QdrantCache {
	return &QdrantCache{
		client:         client,
		collectionName: collectionName,
	}
}

func (s *QdrantCache) InitCollection(ctx context.Context, dim uint64) error {
	_, err := s.client.GetCollectionInfo(ctx, s.collectionName)
	if err != nil {
		st, ok := status.FromError(err)
		if ok && st.Code() == codes.NotFound {
			err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
				CollectionName: s.collectionName,
				VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
					Size:     dim,
					Distance: qdrant.Distance_Cosine,
				}),
			})
			if err != nil {
				return fmt.Errorf("failed to create collection: %w", err)
			}
		} else {
			return err
		}
	}

	// Payload index so the freshness range filter stays fast.
	_, err = s.client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
		CollectionName: s.collectionName,
		FieldName:      "created_at",
		FieldType:      qdrant.FieldType_FieldTypeInteger.Enum(),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		log.Printf("[QDRANT] Warning: Could not create created_at index (might already exist): %v", err)
	}

	return nil
}

func (s *QdrantCache) Lookup(ctx context.Context, vector []float32, mode entity.AnalysisMode) (*entity.AnalysisResult, error) {
	threshold := scoreThreshold

	mustConditions := []*qdrant.Condition{
		qdrant.NewMatch("mode", string(mode)),
		{
			ConditionOneOf: &qdrant.Condition_Field{
				Field: &qdrant.FieldCondition{
					Key: "created_at",
					Range: &qdrant.Range{
						Gte: qdrant.PtrOf(float64(time.Now().Add(-24 * time.Hour).Unix())),
					},
				},
			},
		},
	}

	res, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Filter:         &qdrant.Filter{Must: mustConditions},
		Limit:          qdrant.PtrOf(uint64(1)),
		WithPayload:    qdrant.NewWithPayload(true),
		ScoreThreshold: &threshold,
	})
	if err != nil || len(res) == 0 {
		return nil, err
	}

	var result entity.AnalysisResult
	if err := json.Unmarshal([]byte(res[0].Payload["result"].GetStringValue()), &result); err != nil {
		return nil, nil // Unreadable payload is treated as a miss
	}
	return &result, nil
}

func (s *QdrantCache) Save(ctx context.Context, query string, mode entity.AnalysisMode, res *entity.AnalysisResult, vector []float32) error {
	encoded, err := json.Marshal(res)
	if err != nil {
		return err
	}

	payload := map[string]any{
		"query":      query,
		"mode":       string(mode),
		"result":     string(encoded),
		"created_at": time.Now().Unix(),
	}

	_, err = s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewIDUUID(uuid.NewString()),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(payload),
			},
		},
	})
	return err
}
