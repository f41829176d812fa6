// Package seed populates the item and user stores from a YAML fixture so
// a fresh process starts with a usable collection.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openshelf/circulation/internal/domain"
)

// Fixture is the on-disk shape of a seed file.
type Fixture struct {
	Items []ItemFixture `yaml:"items"`
	Users []UserFixture `yaml:"users"`
}

// ItemFixture describes one catalog item. Kind is matched
// case-insensitively against the variant labels; Genre only applies to
// books.
type ItemFixture struct {
	Kind       string   `yaml:"kind"`
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Creators   []string `yaml:"creators,omitempty"`
	Tags       []string `yaml:"tags,omitempty"`
	CallNumber string   `yaml:"call_number,omitempty"`
	ISBN       string   `yaml:"isbn,omitempty"`
	Genre      string   `yaml:"genre,omitempty"`
}

// UserFixture describes one borrower.
type UserFixture struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

type itemStore interface {
	Create(ctx context.Context, item domain.Item) error
}

type userStore interface {
	Create(ctx context.Context, u domain.User) error
}

// Result reports how many records a load inserted.
type Result struct {
	Items int
	Users int
}

// Loader inserts fixture records into the item and user stores.
type Loader struct {
	log   *slog.Logger
	items itemStore
	users userStore
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger, items itemStore, users userStore) *Loader {
	return &Loader{
		log:   logger.With("component", "seed"),
		items: items,
		users: users,
	}
}

// Load inserts every fixture record, items first. It stops at the first
// bad record; the error names the record so the fixture can be fixed.
func (l *Loader) Load(ctx context.Context, fixture Fixture) (Result, error) {
	var res Result

	for _, f := range fixture.Items {
		item, err := buildItem(f)
		if err != nil {
			return res, fmt.Errorf("seed item %q: %w", f.ID, err)
		}
		if err := l.items.Create(ctx, item); err != nil {
			return res, fmt.Errorf("seed item %q: %w", f.ID, err)
		}
		res.Items++
	}

	for _, f := range fixture.Users {
		user, err := domain.NewUser(f.ID, f.Name, domain.ParseRole(f.Role))
		if err != nil {
			return res, fmt.Errorf("seed user %q: %w", f.ID, err)
		}
		if err := l.users.Create(ctx, user); err != nil {
			return res, fmt.Errorf("seed user %q: %w", f.ID, err)
		}
		res.Users++
	}

	l.log.InfoContext(ctx, "fixture loaded",
		slog.Int("items", res.Items),
		slog.Int("users", res.Users))

	return res, nil
}

// LoadFile reads a YAML fixture from disk and loads it.
func (l *Loader) LoadFile(ctx context.Context, path string) (Result, error) {
	fixture, err := ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return l.Load(ctx, fixture)
}

// ReadFile parses a YAML fixture file.
func ReadFile(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return fixture, nil
}

func buildItem(f ItemFixture) (domain.Item, error) {
	kind, err := domain.ParseItemKind(f.Kind)
	if err != nil {
		return nil, err
	}

	meta := domain.ItemMeta{
		ID:         f.ID,
		Title:      f.Title,
		Creators:   f.Creators,
		Tags:       f.Tags,
		CallNumber: f.CallNumber,
		ISBN:       f.ISBN,
	}
	if kind == domain.ItemKindBook {
		return domain.NewBook(meta, f.Genre)
	}
	return domain.NewItem(kind, meta)
}
