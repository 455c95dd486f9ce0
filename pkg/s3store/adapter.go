package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
)

// Adapter loads section files stored as objects under a key prefix.
// Objects follow the same layout as files read by i18n.FSAdapter:
// "resources/account.yaml" holds section "account", and nested keys such
// as "resources/account/profile.json" become "account-profile".
type Adapter struct {
	client Client
	bucket string
	prefix string
}

// NewAdapter returns an i18n.TranslationAdapter over bucket/prefix.
func NewAdapter(client Client, cfg Config) *Adapter {
	return &Adapter{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}
}

// Load lists every object under the prefix and parses those with a known
// extension. One unparsable object fails the whole load.
func (a *Adapter) Load(ctx context.Context) (i18n.Resources, error) {
	keys, err := a.list(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadResources, err)
	}

	all := make(i18n.Resources)
	for _, key := range keys {
		res, err := a.loadObject(ctx, key)
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadResources, err)
		}
		all.Merge(res)
	}
	return all, nil
}

func (a *Adapter) list(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(a.bucket)}
	if a.prefix != "" {
		input.Prefix = aws.String(a.prefix + "/")
	}

	var keys []string
	for {
		out, err := a.client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, classifyError(err, "list objects")
		}
		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			if i18n.NewParserForFile(key) != nil {
				keys = append(keys, key)
			}
		}
		if !aws.ToBool(out.IsTruncated) || out.NextContinuationToken == nil {
			return keys, nil
		}
		input.ContinuationToken = out.NextContinuationToken
	}
}

func (a *Adapter) loadObject(ctx context.Context, key string) (i18n.Resources, error) {
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyError(err, "get object")
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	root := a.prefix
	if root == "" {
		root = "."
	}
	return i18n.ParseSectionFile(ctx, i18n.SectionName(root, key), key, content)
}

// Store writes one YAML object per section, laid out as lang => key.
// Existing objects for the same sections are overwritten.
func (a *Adapter) Store(ctx context.Context, res i18n.Resources) error {
	docs := make(map[string]map[string]map[string]string)
	for lang, sections := range res {
		for section, entries := range sections {
			if docs[section] == nil {
				docs[section] = make(map[string]map[string]string)
			}
			docs[section][lang] = entries
		}
	}

	for section, doc := range docs {
		body, err := yaml.Marshal(doc)
		if err != nil {
			return errors.Join(ErrFailedToStoreResources, err)
		}
		_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(a.bucket),
			Key:         aws.String(a.objectKey(section)),
			Body:        bytes.NewReader(body),
			ContentType: aws.String("application/yaml"),
		})
		if err != nil {
			return errors.Join(ErrFailedToStoreResources, classifyError(err, "put object"))
		}
	}
	return nil
}

func (a *Adapter) objectKey(section string) string {
	return path.Join(a.prefix, section+".yaml")
}
