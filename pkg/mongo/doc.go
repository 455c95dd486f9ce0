// Package mongo connects to MongoDB and serves validation resources from a
// collection with one document per language, section and key:
//
//	{ "lang": "en", "section": "account", "key": "NameMinLength", "value": "2" }
//
// # Usage
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(ctx)
//
//	tr, err := i18n.NewTranslator(ctx, mongo.NewAdapter(mongo.Collection(client, cfg)))
//
// Healthcheck returns a ping probe for readiness endpoints. Connection and load
// failures wrap the driver error with a package sentinel via errors.Join.
package mongo
