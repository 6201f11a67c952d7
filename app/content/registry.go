package content

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultContentTypes is the built-in set synced when no file overrides it.
var DefaultContentTypes = []ContentType{
	{Name: "podcasts", Prefix: "/podcast/"},
	{Name: "posts", Prefix: "/blog/", CategoryField: "main_category"},
	{Name: "pages", Prefix: "/"},
	{Name: "case-studies", Prefix: "/case-studies/"},
}

type registryFile struct {
	ContentTypes []ContentType `yaml:"content_types"`
}

// Registry resolves content type names to their URL configuration.
type Registry struct {
	types map[string]ContentType
	order []string
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]ContentType)}
}

// DefaultRegistry returns a registry seeded with DefaultContentTypes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, ct := range DefaultContentTypes {
		// built-ins are valid by construction
		_ = r.Register(ct)
	}
	return r
}

// Register adds ct, replacing any content type with the same name.
func (r *Registry) Register(ct ContentType) error {
	if err := validateContentType(ct); err != nil {
		return err
	}
	if _, exists := r.types[ct.Name]; !exists {
		r.order = append(r.order, ct.Name)
	}
	r.types[ct.Name] = ct
	return nil
}

func (r *Registry) Lookup(name string) (ContentType, error) {
	ct, ok := r.types[name]
	if !ok {
		return ContentType{}, fmt.Errorf("%w: %s", ErrUnknownContentType, name)
	}
	return ct, nil
}

// Names returns registered content type names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// LoadFile merges the content types declared in a YAML file into the registry.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	seen := make(map[string]bool, len(file.ContentTypes))
	for i := range file.ContentTypes {
		file.ContentTypes[i].Name = strings.TrimSpace(file.ContentTypes[i].Name)
		ct := file.ContentTypes[i]
		if seen[ct.Name] {
			return fmt.Errorf("duplicate content type at index %d: %s", i, ct.Name)
		}
		seen[ct.Name] = true

		if err := validateContentType(ct); err != nil {
			return fmt.Errorf("invalid content type at index %d: %w", i, err)
		}
	}

	for _, ct := range file.ContentTypes {
		_, overridden := r.types[ct.Name]
		_ = r.Register(ct)
		slog.Debug("Content type loaded", "content_type", ct.Name, "prefix", ct.Prefix, "overridden", overridden)
	}

	return nil
}

func validateContentType(ct ContentType) error {
	if ct.Name == "" {
		return fmt.Errorf("content type name is required")
	}
	if !strings.HasPrefix(ct.Prefix, "/") || !strings.HasSuffix(ct.Prefix, "/") {
		return fmt.Errorf("prefix for %s must start and end with '/', got %q", ct.Name, ct.Prefix)
	}
	return nil
}
