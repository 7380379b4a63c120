package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	firestorepb "cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/interfaces"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
)

const (
	portfoliosCollection = "portfolios"

	countAlias = "count"
)

type portfolioRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.PortfolioRepository = &portfolioRepository{}

func newPortfolioRepository(client *firestore.Client) *portfolioRepository {
	return &portfolioRepository{
		client: client,
	}
}

// portfolioDoc is the Firestore persistence model. The document ID is
// the normalized handle, which is what enforces handle uniqueness.
type portfolioDoc struct {
	ID        string    `firestore:"id"`
	Handle    string    `firestore:"handle"`
	Name      string    `firestore:"name"`
	AvatarURL string    `firestore:"avatar_url"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (r *portfolioRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + portfoliosCollection)
	}
	return r.client.Collection(portfoliosCollection)
}

func (r *portfolioRepository) fromDoc(doc *portfolioDoc) *model.Portfolio {
	return &model.Portfolio{
		ID:        types.RecordID(doc.ID),
		Handle:    types.Handle(doc.Handle),
		Name:      doc.Name,
		AvatarURL: doc.AvatarURL,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// Upsert runs in a Firestore transaction so that concurrent calls for
// the same handle serialize on the document instead of racing a
// check-then-write.
func (r *portfolioRepository) Upsert(ctx context.Context, handle types.Handle, name, avatarURL string) (types.RecordID, error) {
	if err := handle.Validate(); err != nil {
		return "", goerr.Wrap(err, "invalid handle for upsert")
	}

	ref := r.collection().Doc(handle.String())
	var recordID types.RecordID

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now().UTC()

		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return goerr.Wrap(err, "failed to get portfolio", goerr.V("handle", handle))
			}

			recordID = types.NewRecordID()
			doc := &portfolioDoc{
				ID:        recordID.String(),
				Handle:    handle.String(),
				Name:      name,
				AvatarURL: avatarURL,
				CreatedAt: now,
				UpdatedAt: now,
			}
			return tx.Set(ref, doc)
		}

		var doc portfolioDoc
		if err := snap.DataTo(&doc); err != nil {
			return goerr.Wrap(err, "failed to unmarshal portfolio", goerr.V("handle", handle))
		}
		recordID = types.RecordID(doc.ID)

		// Only overwrite fields the caller actually supplied
		updates := []firestore.Update{
			{Path: "updated_at", Value: now},
		}
		if name != "" {
			updates = append(updates, firestore.Update{Path: "name", Value: name})
		}
		if avatarURL != "" {
			updates = append(updates, firestore.Update{Path: "avatar_url", Value: avatarURL})
		}
		return tx.Update(ref, updates)
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to upsert portfolio", goerr.V("handle", handle))
	}

	return recordID, nil
}

// Count uses a server-side aggregation so the document bodies never
// leave Firestore.
func (r *portfolioRepository) Count(ctx context.Context) (int64, error) {
	result, err := r.collection().NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count portfolios")
	}

	value, ok := result[countAlias]
	if !ok {
		return 0, goerr.New("count aggregation returned no value")
	}
	countValue, ok := value.(*firestorepb.Value)
	if !ok {
		return 0, goerr.New("unexpected count aggregation type")
	}

	return countValue.GetIntegerValue(), nil
}

func (r *portfolioRepository) Recent(ctx context.Context, limit int) ([]*model.Portfolio, error) {
	if limit <= 0 {
		return []*model.Portfolio{}, nil
	}

	iter := r.collection().
		OrderBy("created_at", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	result := make([]*model.Portfolio, 0, limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate portfolios")
		}

		var doc portfolioDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal portfolio", goerr.V("docID", snap.Ref.ID))
		}
		result = append(result, r.fromDoc(&doc))
	}

	return result, nil
}
