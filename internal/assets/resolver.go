package assets

import "errors"

// AssetResolver looks assets up in a theme directory first and in the
// built-in theme second. Only not-found errors fall through; a theme file
// that exists but cannot be read or parsed is reported as is.
type AssetResolver struct {
	chain []AssetLoader
}

// NewAssetResolver returns a resolver over the built-in theme, layered
// under themeDir when it is not empty.
func NewAssetResolver(themeDir string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if themeDir != "" {
		dir, err := NewFilesystemLoader(themeDir)
		if err != nil {
			return nil, err
		}
		r.chain = append(r.chain, dir)
	}
	r.chain = append(r.chain, NewEmbeddedLoader())
	return r, nil
}

// LoadStyle implements AssetLoader.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return firstFound(r.chain, func(l AssetLoader) (string, error) {
		return l.LoadStyle(name)
	})
}

// LoadTemplateSet implements AssetLoader.
func (r *AssetResolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	return firstFound(r.chain, func(l AssetLoader) (*TemplateSet, error) {
		return l.LoadTemplateSet(name)
	})
}

// Templates loads and parses the named template set.
func (r *AssetResolver) Templates(name string) (*Templates, error) {
	ts, err := r.LoadTemplateSet(name)
	if err != nil {
		return nil, err
	}
	return ts.Parse()
}

// HasCustomLoader reports whether a theme directory is layered on top.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.chain) > 1
}

func firstFound[T any](chain []AssetLoader, load func(AssetLoader) (T, error)) (T, error) {
	var (
		v   T
		err error
	)
	for _, l := range chain {
		v, err = load(l)
		if err == nil || !isNotFoundError(err) {
			return v, err
		}
	}
	return v, err
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateSetNotFound)
}

var _ AssetLoader = (*AssetResolver)(nil)
