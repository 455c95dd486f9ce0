package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// TranslationAdapter loads the complete resource set from a source.
// Implementations return a fresh Resources value on every call.
type TranslationAdapter interface {
	Load(ctx context.Context) (Resources, error)
}

// AdapterFunc adapts an ordinary function to TranslationAdapter.
type AdapterFunc func(ctx context.Context) (Resources, error)

// Load implements TranslationAdapter.
func (f AdapterFunc) Load(ctx context.Context) (Resources, error) {
	return f(ctx)
}

// MapAdapter is a simple adapter that uses an in-memory map as the source.
type MapAdapter struct {
	Data Resources
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (Resources, error) {
	if a.Data == nil {
		return make(Resources), nil
	}
	return a.Data.Clone(), nil
}

// FileAdapter reads a single file laid out as lang => section => key.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
// A nil parser is chosen from the file extension.
// Returns nil if path is empty or no parser fits.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if path == "" {
		return nil
	}
	if parser == nil {
		parser = NewParserForFile(path)
	}
	if parser == nil {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (Resources, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: resource file '%s' is empty", ErrFailedToParseFile, a.path)
	}

	doc, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}

	res, err := sectionDocument(doc)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", a.path, err))
	}
	return res, nil
}

// FSAdapter reads a tree of section files from a file system, one section per file.
// Each file is laid out as lang => key. The section name is the file path
// relative to the root without its extension, with "/" replaced by "-",
// so "account/profile.yaml" becomes section "account-profile".
type FSAdapter struct {
	fsys fs.FS
	root string
}

// NewFSAdapter creates an adapter over fsys rooted at root ("." for the whole tree).
// Works with os.DirFS and embed.FS alike. Returns nil if fsys is nil.
func NewFSAdapter(fsys fs.FS, root string) *FSAdapter {
	if fsys == nil {
		return nil
	}
	if root == "" {
		root = "."
	}
	return &FSAdapter{fsys: fsys, root: root}
}

// NewDirectoryAdapter is NewFSAdapter over a directory on disk.
func NewDirectoryAdapter(dir string) *FSAdapter {
	if dir == "" {
		return nil
	}
	return NewFSAdapter(os.DirFS(dir), ".")
}

// Load implements the TranslationAdapter interface.
// Files whose extension has no parser are skipped.
func (a *FSAdapter) Load(ctx context.Context) (Resources, error) {
	all := make(Resources)
	files := 0

	err := fs.WalkDir(a.fsys, a.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Join(ErrFailedToReadDirectory, err)
		}
		if d.IsDir() {
			return nil
		}
		if ctx.Err() != nil {
			return errors.Join(ErrContextCancelledDuringProcessing, ctx.Err())
		}

		parser := NewParserForFile(d.Name())
		if parser == nil {
			return nil
		}

		res, err := a.loadFile(ctx, parser, p)
		if err != nil {
			return err
		}
		all.Merge(res)
		files++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if files == 0 {
		return nil, fmt.Errorf("%w in '%s'", ErrNoResourceFiles, a.root)
	}
	return all, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, parser Parser, p string) (Resources, error) {
	content, err := fs.ReadFile(a.fsys, p)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseSection(ctx, parser, SectionName(a.root, p), p, content)
}

// ParseSectionFile parses the content of a single lang => key resource file
// into the given section. The format is chosen by the extension of name.
// Remote stores that keep one object per section (S3 and the like) use it
// to share the file layout with FSAdapter.
func ParseSectionFile(ctx context.Context, section, name string, content []byte) (Resources, error) {
	parser := NewParserForFile(name)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return parseSection(ctx, parser, section, name, content)
}

func parseSection(ctx context.Context, parser Parser, section, name string, content []byte) (Resources, error) {
	doc, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}

	res, err := keyDocument(section, doc)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return res, nil
}

// SectionName derives a section name from a resource file path relative to root.
func SectionName(root, p string) string {
	rel := strings.TrimPrefix(p, strings.TrimSuffix(root, "/")+"/")
	if root == "." || root == "" {
		rel = p
	}
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	return strings.ReplaceAll(rel, "/", "-")
}
