package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
)

// Document is one stored resource value.
type Document struct {
	Lang    string `bson:"lang"`
	Section string `bson:"section"`
	Key     string `bson:"key"`
	Value   string `bson:"value"`
}

// Finder is the subset of *mongo.Collection the adapter reads through.
type Finder interface {
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
}

// Adapter loads resources from a collection of Documents.
type Adapter struct {
	coll Finder
}

// NewAdapter creates a resource adapter over coll, usually a *mongo.Collection.
func NewAdapter(coll Finder) *Adapter {
	return &Adapter{coll: coll}
}

// Load implements i18n.TranslationAdapter.
func (a *Adapter) Load(ctx context.Context) (i18n.Resources, error) {
	cursor, err := a.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadResources, err)
	}

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Join(ErrFailedToLoadResources, err)
	}

	res, err := Assemble(docs)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadResources, err)
	}
	return res, nil
}

// Assemble groups documents into resources. Documents missing a language,
// section or key are rejected; later duplicates win.
func Assemble(docs []Document) (i18n.Resources, error) {
	res := make(i18n.Resources)
	for i, doc := range docs {
		if doc.Lang == "" || doc.Section == "" || doc.Key == "" {
			return nil, fmt.Errorf("%w: #%d %+v", ErrInvalidDocument, i, doc)
		}
		res.Set(doc.Lang, doc.Section, doc.Key, doc.Value)
	}
	return res, nil
}

// Writer is the subset of *mongo.Collection used by Store.
type Writer interface {
	BulkWrite(ctx context.Context, models []mongo.WriteModel, opts ...options.Lister[options.BulkWriteOptions]) (*mongo.BulkWriteResult, error)
}

// Store upserts every value of res in one unordered bulk write, keyed by
// language, section and key. Values not in res are left untouched.
func Store(ctx context.Context, coll Writer, res i18n.Resources) error {
	models := make([]mongo.WriteModel, 0, res.Len())
	for lang, sections := range res {
		for section, keys := range sections {
			for key, value := range keys {
				models = append(models, mongo.NewUpdateOneModel().
					SetFilter(bson.D{{Key: "lang", Value: lang}, {Key: "section", Value: section}, {Key: "key", Value: key}}).
					SetUpdate(bson.D{{Key: "$set", Value: bson.D{{Key: "value", Value: value}}}}).
					SetUpsert(true))
			}
		}
	}
	if len(models) == 0 {
		return nil
	}

	if _, err := coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return errors.Join(ErrFailedToStoreResources, err)
	}
	return nil
}
