// Package content is the blog's compiled-in content store.
//
// Projects are authored in projects.yaml, embedded into the binary and
// decoded once at start-up. After construction a Store never changes, so a
// single instance is shared by all requests without locking.
package content

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/project-blog/internal/domain"
)

// CheckName is the name the store reports to the health registry.
const CheckName = "content"

//go:embed projects.yaml
var defaultContent []byte

// urlSafePattern matches RFC 3986 unreserved characters only.
var urlSafePattern = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)

var validate = newValidator()

// newValidator builds a validator with the project rules attached to
// domain.Project, which carries no struct tags of its own.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("urlsafe", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return urlSafePattern.MatchString(s) && s != "." && s != ".."
	})

	v.RegisterStructValidationMapRules(map[string]string{
		"ID":    "required,urlsafe",
		"Title": "required",
		"Date":  "required",
		"Tags":  "dive,required",
	}, domain.Project{})

	return v
}

// Store holds the projects in display order.
type Store struct {
	projects []domain.Project
}

// New validates records and returns a store holding copies of them.
// IDs must be present, URL-safe and unique; titles and dates must be set.
// An empty slice is accepted: the blog simply has nothing to list.
func New(records []domain.Project) (*Store, error) {
	projects := make([]domain.Project, 0, len(records))
	seen := make(map[string]int, len(records))

	for i, p := range records {
		if err := validateProject(i, p); err != nil {
			return nil, err
		}

		if first, dup := seen[p.ID]; dup {
			return nil, domain.NewConflictError(domain.EntityProject,
				fmt.Sprintf("id %q used by projects[%d] and projects[%d]", p.ID, first, i))
		}

		seen[p.ID] = i
		projects = append(projects, p.Clone())
	}

	return &Store{projects: projects}, nil
}

// Default returns the store built from the embedded projects.yaml.
func Default() (*Store, error) {
	records, err := Parse(defaultContent)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded content: %w", err)
	}

	return New(records)
}

// fileRecord is the YAML shape of one project.
type fileRecord struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

type file struct {
	Projects []fileRecord `yaml:"projects"`
}

// Parse decodes a content file. Unknown keys are rejected so typos in the
// content surface at start-up instead of silently dropping fields.
func Parse(data []byte) ([]domain.Project, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding content: %w", err)
	}

	projects := make([]domain.Project, 0, len(f.Projects))
	for _, r := range f.Projects {
		projects = append(projects, domain.Project{
			ID:          r.ID,
			Title:       r.Title,
			Date:        r.Date,
			Description: r.Description,
			Tags:        r.Tags,
		})
	}

	return projects, nil
}

// All returns every project in display order.
func (s *Store) All(_ context.Context) []domain.Project {
	out := make([]domain.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}

	return out
}

// FindByID scans the store for id. The second result is false when absent.
func (s *Store) FindByID(_ context.Context, id string) (domain.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}

	return domain.Project{}, false
}

// Len returns the number of projects.
func (s *Store) Len() int {
	return len(s.projects)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return CheckName
}

// Check implements ports.HealthChecker. An empty store is reported as
// unavailable so readiness probes catch a build shipped without content.
func (s *Store) Check(_ context.Context) error {
	if len(s.projects) == 0 {
		return domain.NewUnavailableError(CheckName, "no projects loaded")
	}

	return nil
}

// validateProject runs the registered rules against p and converts the
// first failure into a domain.ValidationError naming the offending field.
func validateProject(index int, p domain.Project) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validating projects[%d]: %w", index, err)
	}

	fe := fieldErrs[0]
	field := fmt.Sprintf("projects[%d].%s", index, fieldPath(fe.Namespace()))

	return domain.NewValidationError(field, ruleMessage(fe))
}

// fieldPath turns "Project.Tags[1]" into "tags[1]".
func fieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		rest = namespace
	}

	return strings.ToLower(rest)
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "urlsafe":
		return "must contain only letters, digits, '-', '.', '_' or '~'"
	default:
		return "failed rule " + fe.Tag()
	}
}
