package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"qariee/internal/logging"
)

// Sentinel errors surfaced by catalog operations.
var (
	// ErrNoDocument indicates the db.json document does not exist yet.
	ErrNoDocument = errors.New("catalog document not found")
	// ErrDuplicateReciter indicates an add collided with an existing id.
	ErrDuplicateReciter = errors.New("reciter id already exists")
	// ErrReciterNotFound indicates a lookup for an unknown reciter id.
	ErrReciterNotFound = errors.New("reciter not found")
	// ErrInvalidID indicates a reciter id that is not kebab-case.
	ErrInvalidID = errors.New("reciter id must be kebab-case")
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateID checks that id is non-empty kebab-case: lowercase letters,
// digits, and single hyphen separators.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// AddReciter validates the entry, appends it to the document, bumps the patch
// version, and persists the result. The document on disk is untouched when
// any step fails.
func (s *Store) AddReciter(reciter Reciter) (*Document, error) {
	reciter.ID = strings.ToLower(strings.TrimSpace(reciter.ID))
	if err := ValidateID(reciter.ID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reciter.NameEN) == "" {
		return nil, errors.New("english name is required")
	}
	if strings.TrimSpace(reciter.NameAR) == "" {
		return nil, errors.New("arabic name is required")
	}

	var doc *Document
	err := s.withLock(func() error {
		var err error
		doc, err = s.Load()
		if err != nil {
			return err
		}
		for _, existing := range doc.Reciters {
			if existing.ID == reciter.ID {
				return fmt.Errorf("%w: %q", ErrDuplicateReciter, reciter.ID)
			}
		}

		bumped, err := bumpPatch(doc.Version)
		if err != nil {
			return err
		}
		doc.Reciters = append(doc.Reciters, reciter)
		doc.Version = bumped

		return s.Save(doc)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reciter added",
		logging.String("reciter_id", reciter.ID),
		logging.String("version", doc.Version))
	return doc, nil
}

// Reciter looks up a reciter by id.
func (s *Store) Reciter(id string) (Reciter, error) {
	doc, err := s.Load()
	if err != nil {
		return Reciter{}, err
	}
	for _, reciter := range doc.Reciters {
		if reciter.ID == id {
			return reciter, nil
		}
	}
	return Reciter{}, fmt.Errorf("%w: %q", ErrReciterNotFound, id)
}

// List returns all reciters in document order.
func (s *Store) List() ([]Reciter, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return doc.Reciters, nil
}

// bumpPatch increments the last dotted component: 1.0.0 -> 1.0.1.
func bumpPatch(version string) (string, error) {
	parts := strings.Split(version, ".")
	last := parts[len(parts)-1]
	patch, err := strconv.Atoi(last)
	if err != nil {
		return "", fmt.Errorf("catalog version %q has non-numeric patch component: %w", version, err)
	}
	parts[len(parts)-1] = strconv.Itoa(patch + 1)
	return strings.Join(parts, "."), nil
}
