package domain

import (
	"fmt"
	"strings"
	"time"
)

// Loan periods in days. Books and Journals read the borrower's tier,
// DVDs lend for a flat week, EBooks are due the day they go out.
const (
	bookStandardDays    = 14
	bookExtendedDays    = 28
	journalStandardDays = 7
	journalExtendedDays = 14
	dvdDays             = 7
)

// Item is the capability contract every catalog item variant implements.
// There is no constructible base item: obtain one through a variant
// constructor or NewItem, which rejects unrecognized kinds.
type Item interface {
	// Meta returns the descriptive fields shared by all variants.
	Meta() ItemMeta
	// Kind returns the fixed variant label, stable for the item's lifetime.
	Kind() ItemKind
	// DueDate computes when a loan started at checkout falls due for a
	// borrower with the given role. Pure and deterministic.
	DueDate(checkout time.Time, role Role) time.Time
}

var (
	_ Item = (*Book)(nil)
	_ Item = (*Journal)(nil)
	_ Item = (*DVD)(nil)
	_ Item = (*EBook)(nil)
)

// ItemMeta holds the descriptive fields shared by every item variant.
// Creators are stored normalized, tags lowercased and deduplicated.
type ItemMeta struct {
	ID         string
	Title      string
	Creators   []string
	Tags       []string
	CallNumber string
	ISBN       string
}

// HasTag reports whether the item carries the given subject tag.
func (m ItemMeta) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (m ItemMeta) normalized() ItemMeta {
	out := m
	out.ID = strings.TrimSpace(m.ID)
	out.Title = strings.TrimSpace(m.Title)
	out.CallNumber = strings.TrimSpace(m.CallNumber)
	out.ISBN = strings.TrimSpace(m.ISBN)
	out.Creators = nil
	for _, c := range m.Creators {
		if n := NormalizeName(c); n != "" {
			out.Creators = append(out.Creators, n)
		}
	}
	out.Tags = normalizeTags(m.Tags)
	return out
}

func (m ItemMeta) validate() error {
	var errs []FieldError

	if m.ID == "" {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if m.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	}
	if m.ISBN != "" && !ValidISBN(m.ISBN) {
		errs = append(errs, FieldError{Field: "isbn", Message: fmt.Sprintf("invalid ISBN %q", m.ISBN)})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// NewItem constructs the variant named by kind. An unrecognized kind fails
// with ErrUnknownItemKind: the abstract capability cannot be instantiated
// without selecting a concrete variant.
func NewItem(kind ItemKind, meta ItemMeta) (Item, error) {
	switch kind {
	case ItemKindBook:
		return NewBook(meta, "")
	case ItemKindJournal:
		return NewJournal(meta)
	case ItemKindDVD:
		return NewDVD(meta)
	case ItemKindEBook:
		return NewEBook(meta)
	default:
		return nil, fmt.Errorf("item kind %q: %w", string(kind), ErrUnknownItemKind)
	}
}

// Book is a circulating monograph. Standard tier borrows for two weeks,
// extended tier for four.
type Book struct {
	ItemMeta
	Genre string
}

// NewBook validates and normalizes meta and returns a Book. Genre is
// optional descriptive data with no circulation effect.
func NewBook(meta ItemMeta, genre string) (*Book, error) {
	meta = meta.normalized()
	if err := meta.validate(); err != nil {
		return nil, err
	}
	return &Book{ItemMeta: meta, Genre: strings.TrimSpace(genre)}, nil
}

func (b *Book) Meta() ItemMeta { return b.ItemMeta }

func (b *Book) Kind() ItemKind { return ItemKindBook }

func (b *Book) DueDate(checkout time.Time, role Role) time.Time {
	if role.IsExtended() {
		return checkout.AddDate(0, 0, bookExtendedDays)
	}
	return checkout.AddDate(0, 0, bookStandardDays)
}

// Journal is a periodical with a shorter circulation window than a Book.
type Journal struct {
	ItemMeta
}

// NewJournal validates and normalizes meta and returns a Journal.
func NewJournal(meta ItemMeta) (*Journal, error) {
	meta = meta.normalized()
	if err := meta.validate(); err != nil {
		return nil, err
	}
	return &Journal{ItemMeta: meta}, nil
}

func (j *Journal) Meta() ItemMeta { return j.ItemMeta }

func (j *Journal) Kind() ItemKind { return ItemKindJournal }

func (j *Journal) DueDate(checkout time.Time, role Role) time.Time {
	if role.IsExtended() {
		return checkout.AddDate(0, 0, journalExtendedDays)
	}
	return checkout.AddDate(0, 0, journalStandardDays)
}

// DVD is a video item with a flat one-week checkout for every role.
type DVD struct {
	ItemMeta
}

// NewDVD validates and normalizes meta and returns a DVD.
func NewDVD(meta ItemMeta) (*DVD, error) {
	meta = meta.normalized()
	if err := meta.validate(); err != nil {
		return nil, err
	}
	return &DVD{ItemMeta: meta}, nil
}

func (d *DVD) Meta() ItemMeta { return d.ItemMeta }

func (d *DVD) Kind() ItemKind { return ItemKindDVD }

func (d *DVD) DueDate(checkout time.Time, _ Role) time.Time {
	return checkout.AddDate(0, 0, dvdDays)
}

// EBook is a licensed electronic item. Access is immediate: the loan is
// due the day it begins and is never reported overdue.
type EBook struct {
	ItemMeta
}

// NewEBook validates and normalizes meta and returns an EBook.
func NewEBook(meta ItemMeta) (*EBook, error) {
	meta = meta.normalized()
	if err := meta.validate(); err != nil {
		return nil, err
	}
	return &EBook{ItemMeta: meta}, nil
}

func (e *EBook) Meta() ItemMeta { return e.ItemMeta }

func (e *EBook) Kind() ItemKind { return ItemKindEBook }

func (e *EBook) DueDate(checkout time.Time, _ Role) time.Time {
	return checkout
}
