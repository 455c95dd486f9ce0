// Package s3store keeps localized resources as section files in an S3 bucket
// or any S3-compatible service such as MinIO.
//
// Each object under the configured prefix is one section, parsed with the
// same JSON and YAML parsers as the local file adapters:
//
//	client, err := s3store.NewClient(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	tr, err := i18n.NewTranslator(ctx, s3store.NewAdapter(client, cfg))
//
// SDK failures are reported through the package sentinels, e.g. ErrAccessDenied
// or ErrBucketNotFound, joined with ErrFailedToLoadResources.
package s3store
